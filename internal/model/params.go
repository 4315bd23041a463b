package model

import "errors"

// Simulation constants. A fresh dealership opens with 200 cars on the lot
// and receives a flat 20 cars/day from the factory until its own ordering
// loop has enough history to take over.
const (
	InitialInventory = 200
	SeedDeliveries   = 20
	SeedDays         = 5

	// CoverageDays is the stocking horizon: the dealership always aims to
	// hold this many days of perceived sales.
	CoverageDays = 10
)

// Params defines the three control delays of the simulation.
// Units:
// - PerceptionDelay: days of recent sales averaged to estimate demand
// - ResponseDelay: days over which an inventory discrepancy is corrected
// - DeliveryDelay: days between placing an order and its arrival
// All must be positive integers.
type Params struct {
	PerceptionDelay int
	ResponseDelay   int
	DeliveryDelay   int
}

func (p Params) Validate() error {
	if p.PerceptionDelay < 1 {
		return errors.New("PerceptionDelay must be >= 1")
	}
	if p.ResponseDelay < 1 {
		return errors.New("ResponseDelay must be >= 1")
	}
	if p.DeliveryDelay < 1 {
		return errors.New("DeliveryDelay must be >= 1")
	}
	return nil
}
