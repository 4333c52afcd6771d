// Command gaugedemo renders a scene of radial gauges to a PNG file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/internal/config"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

var cfg *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gaugedemo",
	Short: "Render radial gauges to PNG",
	Long: `gaugedemo reads a scene of gauges from YAML (./gauges.yaml by default)
and renders them on a grid. Settings can be overridden with GAUGE_*
environment variables, e.g. GAUGE_CANVAS_WIDTH=1024.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Log.Level
		if override, _ := cmd.Flags().GetString("log-level"); override != "" {
			level = override
		}
		gauge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLevel(level),
		})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "scene file path (default: ./gauges.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(renderCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gaugedemo %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
	},
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the scene",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		if w, _ := cmd.Flags().GetInt("width"); w > 0 {
			cfg.Canvas.Width = w
		}
		if h, _ := cmd.Flags().GetInt("height"); h > 0 {
			cfg.Canvas.Height = h
		}

		if err := renderScene(cfg, output); err != nil {
			return err
		}
		fmt.Printf("Saved %d gauge(s) to %s (%dx%d)\n",
			len(cfg.Gauges), output, cfg.Canvas.Width, cfg.Canvas.Height)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringP("output", "o", "gauges.png", "output PNG file")
	renderCmd.Flags().Int("width", 0, "canvas width override")
	renderCmd.Flags().Int("height", 0, "canvas height override")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
