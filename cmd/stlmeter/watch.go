package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/stlmeter/internal/config"
	"github.com/philipparndt/stlmeter/pkg/analysis"
	"github.com/philipparndt/stlmeter/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-measure a file every time it changes",
	Long: `Print the print metrics of an STL or OpenSCAD file and print them again
whenever the file (or, for OpenSCAD, any used or included file) changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "Quiet period before re-measuring")
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	files, err := watchedFiles(filename)
	if err != nil {
		return fmt.Errorf("failed to resolve dependencies: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	fw, err := watcher.NewFileWatcher(watchDebounce, func(err error) {
		fmt.Fprintf(errOut, "Watcher error: %v\n", err)
	})
	if err != nil {
		return err
	}
	defer fw.Close()

	changes := make(chan string, 1)
	err = fw.Watch(files, func(changed string) {
		select {
		case changes <- changed:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch files: %w", err)
	}
	go fw.Run(ctx)

	fmt.Fprintf(w, "Watching %d file(s) for changes, press Ctrl+C to stop\n", len(files))
	measureOnce(ctx, w, errOut, cfg, filename)

	for {
		select {
		case <-ctx.Done():
			return nil
		case changed := <-changes:
			fmt.Fprintf(w, "\nFile changed: %s\n", changed)
			measureOnce(ctx, w, errOut, cfg, filename)
		}
	}
}

// measureOnce prints a one-line summary; failures are reported, not fatal
func measureOnce(ctx context.Context, w, errOut io.Writer, cfg *config.Config, filename string) {
	start := time.Now()
	data, err := readInput(ctx, filename)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return
	}
	m, err := analysis.AnalyzeBytesWith(cfg.Decoder(), data)
	if err != nil {
		fmt.Fprintf(errOut, "Error: could not read %s: %v\n", filename, err)
		return
	}
	fmt.Fprintf(w, "%s  %d triangles, %.2f x %.2f x %.2f mm, %.3f cm³, %.3f cm² (%.2fs)\n",
		time.Now().Format("15:04:05"), m.TriangleCount,
		m.Dimensions.X, m.Dimensions.Y, m.Dimensions.Z,
		m.Volume, m.SurfaceArea, time.Since(start).Seconds())
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
