package main

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-room/engine/config"
	"github.com/Carmen-Shannon/oxy-room/engine/room"
	"github.com/spf13/cobra"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [file]",
	Short: "Validate and summarise a room layout",
	Long:  "Parse a TOML room layout (or the built-in one when no file is given), validate it, and check that the spawn point is clear for the configured player radius.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(cmd *cobra.Command, args []string) error {
	tuning, err := config.Load()
	if err != nil {
		return err
	}
	layout, source, err := loadLayout(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Layout: %s\n", layout.Name)
	fmt.Fprintf(out, "Source: %s\n\n", source)

	fmt.Fprintln(out, "Poses:")
	for _, p := range []struct {
		name string
		spec room.PoseSpec
	}{
		{"intro", layout.Poses.Intro},
		{"spawn", layout.Poses.Spawn},
		{"board", layout.Poses.Board},
		{"map", layout.Poses.Map},
	} {
		fmt.Fprintf(out, "  %-6s %v -> %v\n", p.name, p.spec.Position, p.spec.Target)
	}

	fmt.Fprintf(out, "\nObstacles (%d):\n", len(layout.Furniture))
	for _, o := range layout.Obstacles() {
		fmt.Fprintf(out, "  %-16s x [%.2f, %.2f]  z [%.2f, %.2f]\n", o.Name, o.MinX, o.MaxX, o.MinZ, o.MaxZ)
	}

	fmt.Fprintf(out, "\nInteractables (%d):\n", len(layout.Tagged))
	for _, it := range layout.Tagged {
		fmt.Fprintf(out, "  %-8s %v .. %v\n", it.Tag, it.Min, it.Max)
	}

	if !layout.SpawnClear(tuning.CollisionRadius, tuning.CollisionPadding) {
		return fmt.Errorf("%w: spawn %v overlaps an obstacle at radius %.2f", room.ErrInvalidLayout,
			layout.Poses.Spawn.Position, tuning.CollisionRadius)
	}
	fmt.Fprintf(out, "\nSpawn is clear at radius %.2f (padding %.2f)\n", tuning.CollisionRadius, tuning.CollisionPadding)
	return nil
}

// loadLayout reads the layout named by args, or the built-in one.
func loadLayout(args []string) (*room.Layout, string, error) {
	if len(args) == 0 || args[0] == "" {
		return room.Default(), "built-in", nil
	}
	l, err := room.Load(args[0])
	if err != nil {
		return nil, "", err
	}
	return l, args[0], nil
}
