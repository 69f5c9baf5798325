package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"orrery/config"
	"orrery/input"
	"orrery/rendering/scene"
	"orrery/rendering/terminal"
)

var terminalFPS int

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Run the simulation in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configPath, variant)
		if err != nil {
			return err
		}

		screen, err := terminal.NewScreen()
		if err != nil {
			return err
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
		defer stop()

		r := terminal.NewRenderer(screen, settings.Scene.Segments)
		err = terminal.Run(ctx, r, settings.NewState(),
			input.NewHandler(settings.Simulation.ResetEnabled),
			scene.OptionsFrom(settings.Scene), terminalFPS)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func init() {
	terminalCmd.Flags().IntVar(&terminalFPS, "fps", 30, "frames per second")
	rootCmd.AddCommand(terminalCmd)
}
