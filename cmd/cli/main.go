package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dealersim/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dealersim",
		Short: "Car-dealership inventory control simulator",
		Long: `dealersim runs a discrete-time inventory-control simulation:
delayed deliveries, perceived demand and response-delay ordering, one
simulated day at a time.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to YAML config")

	rootCmd.AddCommand(
		newSimulateCmd(),
		newWatchCmd(),
		newRankCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the --config flag, falling back to defaults, then
// applies any per-command demand override.
func loadConfig(cmd *cobra.Command, demand string) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	if demand != "" {
		cfg.Simulation.Demand = demand
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
