package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/edgedock/internal/application/usecase"
	"github.com/bnema/edgedock/internal/domain/entity"
)

var (
	geometryEdge     string
	geometryOffset   float64
	geometryScreen   string
	geometryAllEdges bool
	geometryJSON     bool
)

var geometryCmd = &cobra.Command{
	Use:   "geometry",
	Short: "Show where the panel and its trigger strip sit",
	Long: `Compute the panel placement for the current configuration without running
the dock. Flags override the configured edge and offset. Settings the panel
cannot fully honour are listed as warnings.

Examples:
  edgedock geometry
  edgedock geometry --edge bottom --offset 12
  edgedock geometry --all-edges --screen 1920x1080`,
	RunE: runGeometry,
}

func init() {
	rootCmd.AddCommand(geometryCmd)
	geometryCmd.Flags().StringVar(&geometryEdge, "edge", "", "edge to lay out on: left, right, top, bottom")
	geometryCmd.Flags().Float64Var(&geometryOffset, "offset", 0, "gap between the panel and its edge")
	geometryCmd.Flags().StringVar(&geometryScreen, "screen", "", "screen size WIDTHxHEIGHT (default: current display)")
	geometryCmd.Flags().BoolVar(&geometryAllEdges, "all-edges", false, "lay the panel out on every edge")
	geometryCmd.Flags().BoolVar(&geometryJSON, "json", false, "output as JSON")
}

func runGeometry(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	settings, err := app.DockSettings()
	if err != nil {
		return err
	}
	if geometryEdge != "" {
		if settings.Edge, err = entity.ParseEdge(geometryEdge); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("offset") {
		settings.EdgeOffset = geometryOffset
	}

	var screen entity.Screen
	if geometryScreen != "" {
		screen, err = parseScreenSize(geometryScreen)
	} else {
		screen, err = app.Screen(ctx)
	}
	if err != nil {
		return err
	}

	out, err := app.GeometryUC.Execute(ctx, usecase.DescribeGeometryInput{
		Settings:  settings,
		ItemCount: len(app.Manager.Get().Items),
		Screen:    screen,
		AllEdges:  geometryAllEdges,
	})
	if err != nil {
		return err
	}

	if geometryJSON {
		return printJSON(geometryJSONOutput(screen, out.Layouts))
	}
	fmt.Println(app.Renderer.RenderGeometry(screen, settings.TriggerDistance, out.Layouts))
	return nil
}

type jsonLayout struct {
	Edge     string   `json:"edge"`
	AnchorX  float64  `json:"anchor_x"`
	AnchorY  float64  `json:"anchor_y"`
	Visible  jsonRect `json:"visible"`
	Hidden   jsonRect `json:"hidden"`
	Trigger  jsonRect `json:"trigger"`
	Warnings []string `json:"warnings,omitempty"`
}

type jsonGeometry struct {
	Screen  jsonRect     `json:"screen"`
	Layouts []jsonLayout `json:"layouts"`
}

func geometryJSONOutput(screen entity.Screen, layouts []usecase.EdgeLayout) jsonGeometry {
	out := jsonGeometry{Screen: toJSONRect(screen.Frame), Layouts: make([]jsonLayout, 0, len(layouts))}
	for _, l := range layouts {
		jl := jsonLayout{
			Edge:    string(l.Geometry.Edge),
			AnchorX: l.Geometry.Anchor.X,
			AnchorY: l.Geometry.Anchor.Y,
			Visible: toJSONRect(l.Geometry.Rect),
			Hidden:  toJSONRect(l.HiddenRect),
			Trigger: toJSONRect(l.TriggerZone),
		}
		for _, f := range l.Findings {
			jl.Warnings = append(jl.Warnings, f.Error())
		}
		out.Layouts = append(out.Layouts, jl)
	}
	return out
}
