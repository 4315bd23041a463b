package model

import "testing"

func TestParseDemandSchedule(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DemandSchedule
		wantErr bool
	}{
		{
			name:  "single pair",
			input: "0,20",
			want:  DemandSchedule{{Day: 0, Level: 20}},
		},
		{
			name:  "two steps",
			input: "0,20,25,22",
			want:  DemandSchedule{{Day: 0, Level: 20}, {Day: 25, Level: 22}},
		},
		{
			name:  "whitespace tolerated",
			input: " 0 , 20 , 25 , 22 ",
			want:  DemandSchedule{{Day: 0, Level: 20}, {Day: 25, Level: 22}},
		},
		{
			name:    "odd length",
			input:   "0,20,25",
			wantErr: true,
		},
		{
			name:    "non-numeric token",
			input:   "0,20,abc,22",
			wantErr: true,
		},
		{
			name:    "missing day zero",
			input:   "5,20",
			wantErr: true,
		},
		{
			name:    "decreasing days",
			input:   "0,20,30,25,10,40",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDemandSchedule(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tt.input, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d steps, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("step %d: expected %+v, got %+v", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLevelAtStepFunction(t *testing.T) {
	sched, err := ParseDemandSchedule("0,20,25,22")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for day := 0; day < 25; day++ {
		if got := sched.LevelAt(day); got != 20 {
			t.Fatalf("day %d: expected 20, got %d", day, got)
		}
	}
	for _, day := range []int{25, 26, 100, 10000} {
		if got := sched.LevelAt(day); got != 22 {
			t.Fatalf("day %d: expected 22, got %d", day, got)
		}
	}
}

func TestLevelAtSameDayLastWins(t *testing.T) {
	sched := DemandSchedule{{Day: 0, Level: 20}, {Day: 10, Level: 30}, {Day: 10, Level: 40}}
	if err := sched.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := sched.LevelAt(10); got != 40 {
		t.Fatalf("expected the later step to win, got %d", got)
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	sched, err := ParseDemandSchedule("0,20,25,22")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := sched.String(); got != "0,20,25,22" {
		t.Fatalf("expected flat form back, got %q", got)
	}
}
