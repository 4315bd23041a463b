package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"dealersim/internal/driver"
	"dealersim/internal/tui"
)

func newWatchCmd() *cobra.Command {
	var demand string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the simulation live as a rolling inventory chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, demand)
			if err != nil {
				return err
			}
			schedule, err := cfg.Schedule()
			if err != nil {
				return err
			}

			drvCfg := driver.Config{
				Params:       cfg.Params(),
				Schedule:     schedule,
				TickInterval: cfg.TickInterval(),
				Window:       cfg.Driver.Window,
			}

			drv := driver.New()
			if err := drv.Start(drvCfg); err != nil {
				return err
			}
			defer drv.Stop()

			p := tea.NewProgram(tui.NewModel(drv, drvCfg))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("watch: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&demand, "demand", "", "Demand schedule override, e.g. \"0,20,25,22\"")
	return cmd
}
