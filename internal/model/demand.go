package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DemandStep is one step of the demand schedule: from Day onward, daily
// demand is Level, until a later step overrides it.
type DemandStep struct {
	Day   int `yaml:"day" json:"day"`
	Level int `yaml:"level" json:"level"`
}

// DemandSchedule is a step function from day to demand level. The first
// step must cover day 0 and days must not decrease. When two steps share
// a day the later one wins.
type DemandSchedule []DemandStep

func (s DemandSchedule) Validate() error {
	if len(s) == 0 {
		return errors.New("demand schedule is empty")
	}
	if s[0].Day != 0 {
		return fmt.Errorf("demand schedule must start at day 0, first step is day %d", s[0].Day)
	}
	for i := 1; i < len(s); i++ {
		if s[i].Day < s[i-1].Day {
			return fmt.Errorf("demand schedule days must not decrease (day %d after day %d)", s[i].Day, s[i-1].Day)
		}
	}
	return nil
}

// LevelAt returns the demand level active on the given day: the level of
// the most recent step with Day <= day. The schedule must be valid.
func (s DemandSchedule) LevelAt(day int) int {
	level := s[0].Level
	for _, st := range s {
		if st.Day > day {
			break
		}
		level = st.Level
	}
	return level
}

// ParseDemandSchedule parses the flat comma-separated form used by config
// files and the HTTP API: alternating day,level values, e.g. "0,20,25,22"
// for demand 20 from day 0 and 22 from day 25 onward.
func ParseDemandSchedule(raw string) (DemandSchedule, error) {
	values := make([]int, 0, 8)
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("demand schedule: %q is not a number", field)
		}
		values = append(values, n)
	}
	if len(values) == 0 {
		return nil, errors.New("demand schedule is empty")
	}
	if len(values)%2 != 0 {
		return nil, fmt.Errorf("demand schedule needs day,level pairs, got %d values", len(values))
	}
	sched := make(DemandSchedule, 0, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		sched = append(sched, DemandStep{Day: values[i], Level: values[i+1]})
	}
	if err := sched.Validate(); err != nil {
		return nil, err
	}
	return sched, nil
}

// String renders the schedule back into the flat comma-separated form.
func (s DemandSchedule) String() string {
	parts := make([]string, 0, len(s)*2)
	for _, st := range s {
		parts = append(parts, strconv.Itoa(st.Day), strconv.Itoa(st.Level))
	}
	return strings.Join(parts, ",")
}
