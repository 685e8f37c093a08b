package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/infrastructure/pointer"
	"github.com/bnema/edgedock/internal/ui/simulate"
)

var (
	simulateOrigin string
	simulateScreen string
	simulateTail   time.Duration
	simulateJSON   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <recording.jsonl>",
	Short: "Replay a pointer recording and print what the panel did",
	Long: `Replay a JSON-lines pointer recording through the visibility controller on
a virtual clock and print the resulting show/hide timeline. Nothing sleeps:
a ten minute recording replays instantly.

Each line is either a position or an availability change:
  {"x": 1919, "y": 540, "t_ms": 0}
  {"available": false, "t_ms": 1200}

The screen defaults to the configured fallback size so results do not depend
on the display the command runs on.

Examples:
  edgedock simulate moves.jsonl
  edgedock simulate moves.jsonl --screen 1440x900 --origin bottom-left
  edgedock simulate moves.jsonl --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().StringVar(&simulateOrigin, "origin", string(pointer.OriginTopLeft), "coordinate origin of the recording: top-left, bottom-left")
	simulateCmd.Flags().StringVar(&simulateScreen, "screen", "", "screen size WIDTHxHEIGHT (default from config)")
	simulateCmd.Flags().DurationVar(&simulateTail, "tail", 0, "keep the clock running this long after the last event (default: hide delay)")
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "output as JSON")
}

func runSimulate(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	settings, err := app.DockSettings()
	if err != nil {
		return err
	}
	cfg := app.Manager.Get()
	screen := cfg.FallbackScreen()
	if simulateScreen != "" {
		if screen, err = parseScreenSize(simulateScreen); err != nil {
			return err
		}
	}

	origin, err := pointer.ParseOrigin(simulateOrigin)
	if err != nil {
		return err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open recording: %w", err)
	}
	defer f.Close()

	recording, err := pointer.ParseRecording(f, origin, screen.Frame)
	if err != nil {
		return fmt.Errorf("parse recording %s: %w", args[0], err)
	}

	timeline, err := simulate.Run(ctx, simulate.Input{
		Settings:  settings,
		Items:     cfg.DockItems(),
		Screen:    screen,
		Recording: recording,
		Tail:      simulateTail,
	})
	if err != nil {
		return err
	}

	if simulateJSON {
		return printJSON(timelineJSON(timeline))
	}
	fmt.Println(app.Renderer.RenderTimeline(timeline))
	return nil
}

type jsonEvent struct {
	TMs   int64     `json:"t_ms"`
	Kind  string    `json:"kind"`
	Panel *jsonRect `json:"panel,omitempty"`
}

type jsonTimeline struct {
	Events      []jsonEvent `json:"events"`
	Final       string      `json:"final"`
	PendingHide bool        `json:"pending_hide"`
	DurationMs  int64       `json:"duration_ms"`
}

func timelineJSON(tl *simulate.Timeline) jsonTimeline {
	out := jsonTimeline{
		Events:      make([]jsonEvent, 0, len(tl.Events)),
		Final:       string(tl.Final.State),
		PendingHide: tl.Final.PendingHide,
		DurationMs:  tl.Duration.Milliseconds(),
	}
	for _, ev := range tl.Events {
		je := jsonEvent{TMs: ev.At.Milliseconds(), Kind: string(ev.Kind)}
		if ev.Kind == simulate.EventShown || ev.Kind == simulate.EventRepositioned {
			r := toJSONRect(ev.Geometry.Rect)
			je.Panel = &r
		}
		out.Events = append(out.Events, je)
	}
	return out
}
