package model

import "testing"

func TestParamsValidate(t *testing.T) {
	valid := Params{PerceptionDelay: 3, ResponseDelay: 3, DeliveryDelay: 3}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid params, got %v", err)
	}

	bad := []Params{
		{PerceptionDelay: 0, ResponseDelay: 3, DeliveryDelay: 3},
		{PerceptionDelay: 3, ResponseDelay: 0, DeliveryDelay: 3},
		{PerceptionDelay: 3, ResponseDelay: 3, DeliveryDelay: 0},
		{PerceptionDelay: -1, ResponseDelay: 3, DeliveryDelay: 3},
		{PerceptionDelay: 3, ResponseDelay: -2, DeliveryDelay: 3},
	}
	for _, p := range bad {
		if err := p.Validate(); err == nil {
			t.Fatalf("expected error for %+v", p)
		}
	}
}

func TestTrendFromNetFlow(t *testing.T) {
	if got := TrendFromNetFlow(25, 20); got != TrendRestocking {
		t.Fatalf("expected RESTOCKING, got %s", got)
	}
	if got := TrendFromNetFlow(15, 20); got != TrendDrawdown {
		t.Fatalf("expected DRAWDOWN, got %s", got)
	}
	if got := TrendFromNetFlow(20, 20); got != TrendSteady {
		t.Fatalf("expected STEADY, got %s", got)
	}
}
