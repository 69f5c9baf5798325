// Command orbit_table prints the planet table of a settings file together
// with orbital periods and where every planet is after a stretch of real time.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"orrery/config"
)

func main() {
	path := flag.String("config", config.DefaultPath, "settings file")
	variant := flag.String("variant", "", "classic or refined (overrides the file)")
	seconds := flag.Float64("time", 60, "real seconds to advance before printing positions")
	flag.Parse()

	settings, err := config.Load(*path, *variant)
	if err != nil {
		slog.Error("failed to load settings", "err", err)
		os.Exit(1)
	}

	state := settings.NewState()
	fmt.Printf("=== Orbit table (%s, time speed %.3f) ===\n\n", settings.Variant, state.TimeSpeed)

	fmt.Printf("%-10s %8s %8s %8s %12s\n", "planet", "orbit", "radius", "speed", "period (s)")
	for _, p := range state.Planets {
		fmt.Printf("%-10s %8.3f %8.3f %8.3f %12.1f\n",
			p.Name, p.OrbitRadius, p.Radius, p.Speed, p.Period(state.TimeSpeed))
	}

	state.Advance(*seconds)

	fmt.Printf("\nAfter %.1f s (simulated clock %.3f):\n", *seconds, state.Clock)
	for _, p := range state.Planets {
		x, y := p.Position()
		fmt.Printf("  %-10s angle=%.4f rad  x=%+.4f y=%+.4f\n", p.Name, p.Angle, x, y)
	}
}
