package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dealersim/internal/sim"
)

func newSimulateCmd() *cobra.Command {
	var (
		days   int
		demand string
		outCSV string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation for a fixed number of days and print the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, demand)
			if err != nil {
				return err
			}
			schedule, err := cfg.Schedule()
			if err != nil {
				return err
			}

			engine, err := sim.New(cfg.Params(), schedule)
			if err != nil {
				return err
			}
			res, err := engine.Run(days)
			if err != nil {
				return err
			}

			fmt.Printf("delays: perception=%d response=%d delivery=%d  demand=%s\n\n",
				cfg.Simulation.PerceptionDelay,
				cfg.Simulation.ResponseDelay,
				cfg.Simulation.DeliveryDelay,
				cfg.Simulation.Demand,
			)
			fmt.Printf("%4s  %6s  %6s  %9s  %6s  %10s  %s\n",
				"day", "deliv", "demand", "perceived", "order", "inventory", "trend")
			for _, r := range res.Ledger {
				fmt.Printf("%4d  %6d  %6d  %9.2f  %6d  %10d  %s\n",
					r.Day, r.Deliveries, r.Demand, r.PerceivedSales, r.Order, r.InventoryEnd, r.Trend)
			}
			fmt.Printf("\nfinal=%d min=%d max=%d ordered=%d demand=%d stockout_days=%d\n",
				res.FinalInventory, res.MinInventory, res.MaxInventory,
				res.TotalOrdered, res.TotalDemand, res.StockoutDays)

			if outCSV != "" {
				if err := sim.WriteLedgerCSV(outCSV, res.Ledger); err != nil {
					return err
				}
				fmt.Printf("wrote CSV: %s\n", outCSV)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 50, "Number of days to simulate")
	cmd.Flags().StringVar(&demand, "demand", "", "Demand schedule override, e.g. \"0,20,25,22\"")
	cmd.Flags().StringVar(&outCSV, "out", "", "Optional path to write the ledger CSV")
	return cmd
}
