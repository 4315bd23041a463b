package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dealersim/internal/analysis"
)

func newRankCmd() *cobra.Command {
	var (
		days   int
		demand string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Sweep delay combinations and rank them by inventory stability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, demand)
			if err != nil {
				return err
			}
			schedule, err := cfg.Schedule()
			if err != nil {
				return err
			}

			results, err := analysis.Sweep(analysis.SweepOptions{
				Schedule: schedule,
				Days:     days,
			})
			if err != nil {
				return err
			}
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			fmt.Printf("demand=%s  horizon=%d days\n\n", cfg.Simulation.Demand, days)
			fmt.Printf("%4s  %4s %4s %4s  %9s  %6s  %6s  %8s  %7s\n",
				"rank", "perc", "resp", "delv", "amplitude", "min", "max", "stockout", "settled")
			for i, r := range results {
				settled := fmt.Sprintf("%d", r.SettlingDay)
				if r.SettlingDay < 0 {
					settled = "never"
				}
				fmt.Printf("%4d  %4d %4d %4d  %9.1f  %6d  %6d  %8d  %7s\n",
					i+1,
					r.Params.PerceptionDelay, r.Params.ResponseDelay, r.Params.DeliveryDelay,
					r.Amplitude, r.MinInventory, r.MaxInventory, r.StockoutDays, settled)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 200, "Horizon per combination")
	cmd.Flags().StringVar(&demand, "demand", "0,20,25,22", "Demand schedule, e.g. \"0,20,25,22\"")
	cmd.Flags().IntVar(&limit, "limit", 10, "Show the top N combinations (0=all)")
	return cmd
}
