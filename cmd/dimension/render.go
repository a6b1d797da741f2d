package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirstar13/dimension-prt/render"
	"github.com/mirstar13/dimension-prt/scenecfg"
	"github.com/mirstar13/dimension-prt/telemetry"
)

func newRenderCommand() *cobra.Command {
	var (
		scenePath string
		outPath   string
		logPath   string
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene file to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := telemetry.NewLogger(telemetry.Config{FilePath: logPath, Debug: debug})
			if err != nil {
				return fmt.Errorf("dimension render: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			profiler := telemetry.NewProfiler(logger)

			profiler.BeginBVHBuild()
			cfg, err := scenecfg.Load(scenePath, defaultObjects())
			profiler.EndBVHBuild()
			if err != nil {
				return fmt.Errorf("dimension render: %w", err)
			}

			canvas := render.NewCanvas(cfg.Region.Width, cfg.Region.Height)

			profiler.BeginTrace()
			future := render.Render(cfg.Scene, cfg.Camera, cfg.Region, canvas, cfg.NThreads)
			if err := future.Join(); err != nil {
				return fmt.Errorf("dimension render: %w", err)
			}
			profiler.EndTrace()
			for i := 0; i < canvas.Height; i++ {
				profiler.RecordRow(canvas.Width)
			}
			profiler.Report()

			if err := canvas.SavePNG(outPath); err != nil {
				return fmt.Errorf("dimension render: writing %s: %w", outPath, err)
			}

			fmt.Println(profiler.Stats().String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenePath, "scene", "s", "", "path to a TOML scene file (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "render.png", "output PNG path")
	cmd.Flags().StringVar(&logPath, "log", "", "optional rotating log file path")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug-level logging")
	cmd.MarkFlagRequired("scene") //nolint:errcheck

	return cmd
}
