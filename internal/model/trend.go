package model

// Trend is a human-friendly flow direction for a simulated day.
// Keep these values stable; they are intended for CSV output.
type Trend string

const (
	TrendRestocking Trend = "RESTOCKING"
	TrendSteady     Trend = "STEADY"
	TrendDrawdown   Trend = "DRAWDOWN"
)

func TrendFromNetFlow(deliveries, demand int) Trend {
	switch {
	case deliveries > demand:
		return TrendRestocking
	case deliveries < demand:
		return TrendDrawdown
	default:
		return TrendSteady
	}
}
