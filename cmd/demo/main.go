package main

import (
	"flag"
	"fmt"

	"dealersim/internal/model"
	"dealersim/internal/sim"
)

// Demo:
// - Parse a demand schedule from the command line
// - Instantiate the engine with the classic 3/3/3 delays
// - Run a few simulated days to show how the pieces fit together
func main() {
	perception := flag.Int("perception", 3, "Perception delay in days")
	response := flag.Int("response", 3, "Response delay in days")
	delivery := flag.Int("delivery", 3, "Delivery delay in days")
	demand := flag.String("demand", "0,20,25,22", "Demand schedule as day,level pairs")
	n := flag.Int("n", 40, "Number of days to simulate")
	outCSV := flag.String("out", "", "Optional path to write ledger CSV (e.g. results/ledger.csv)")
	flag.Parse()

	schedule, err := model.ParseDemandSchedule(*demand)
	if err != nil {
		panic(err)
	}

	params := model.Params{
		PerceptionDelay: *perception,
		ResponseDelay:   *response,
		DeliveryDelay:   *delivery,
	}

	engine, err := sim.New(params, schedule)
	if err != nil {
		panic(err)
	}
	result, err := engine.Run(*n)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d days (perception=%d response=%d delivery=%d demand=%s)\n\n",
		*n, *perception, *response, *delivery, schedule.String())

	for _, r := range result.Ledger {
		fmt.Printf(
			"day %3d  deliv=%3d  demand=%3d  perceived=%6.2f  order=%3d  inv=%4d->%4d  %s\n",
			r.Day, r.Deliveries, r.Demand, r.PerceivedSales, r.Order,
			r.InventoryStart, r.InventoryEnd, r.Trend,
		)
	}

	if *outCSV != "" {
		if err := sim.WriteLedgerCSV(*outCSV, result.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Final inventory=%d  min=%d  max=%d  stockout days=%d\n",
		result.FinalInventory, result.MinInventory, result.MaxInventory, result.StockoutDays)
}
