package main

import (
	"github.com/spf13/cobra"

	"orrery/config"
	"orrery/rendering/scene"
	"orrery/rendering/snapshot"
)

var (
	snapshotOut     string
	snapshotSeconds float64
	snapshotWidth   int
	snapshotHeight  int
	snapshotCaption bool
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render one frame to a PNG without opening a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configPath, variant)
		if err != nil {
			return err
		}

		w, h := settings.Window.Width, settings.Window.Height
		if snapshotWidth > 0 {
			w = snapshotWidth
		}
		if snapshotHeight > 0 {
			h = snapshotHeight
		}

		state := settings.NewState()
		snapshot.Simulate(state, snapshotSeconds, 60)

		caption := ""
		if snapshotCaption {
			caption = scene.Caption(state)
		}
		r := snapshot.New(w, h, settings.Scene.Segments)
		return r.SavePNG(snapshotOut, scene.Build(state, scene.OptionsFrom(settings.Scene), w, h), caption)
	},
}

func init() {
	flags := snapshotCmd.Flags()
	flags.StringVarP(&snapshotOut, "out", "o", "orrery.png", "output PNG path")
	flags.Float64Var(&snapshotSeconds, "time", 0, "seconds of real time to simulate before drawing")
	flags.IntVar(&snapshotWidth, "width", 0, "image width (default: window width)")
	flags.IntVar(&snapshotHeight, "height", 0, "image height (default: window height)")
	flags.BoolVar(&snapshotCaption, "caption", true, "print clock, speed and zoom along the bottom")
	rootCmd.AddCommand(snapshotCmd)
}
