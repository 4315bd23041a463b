package models

// SimulationConfig is the wire form of the simulation parameters.
// Missing delays fall back to 3 days; missing demand falls back to a
// flat 20 cars/day ("0,20").
type SimulationConfig struct {
	PerceptionDelay int    `json:"perception_delay,omitempty"`
	ResponseDelay   int    `json:"response_delay,omitempty"`
	DeliveryDelay   int    `json:"delivery_delay,omitempty"`
	Demand          string `json:"demand,omitempty"` // flat "day,level,..." list
}

// SimulateRequest is the body for POST /api/v1/simulate.
type SimulateRequest struct {
	Config  SimulationConfig `json:"config"`
	Options SimulateOptions  `json:"options,omitempty"`
}

// SimulateOptions contains optional batch-run parameters.
type SimulateOptions struct {
	Days          int  `json:"days,omitempty"`           // 0 = 100
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// StartRunRequest is the body for POST /api/v1/runs.
type StartRunRequest struct {
	Config     SimulationConfig `json:"config"`
	TickMillis int              `json:"tick_ms,omitempty"` // 0 = 100
	Window     int              `json:"window,omitempty"`  // 0 = 35
}

// RankRequest holds the query parameters for GET /api/v1/rank.
type RankRequest struct {
	Days     int    `form:"days"`
	Demand   string `form:"demand"`
	MinDelay int    `form:"min_delay"`
	MaxDelay int    `form:"max_delay"`
	Limit    int    `form:"limit"` // 0 = 10
}
