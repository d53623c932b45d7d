package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/penwyp/go-apod-widget/internal/application/widget"
	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/data/intent"
	"github.com/penwyp/go-apod-widget/internal/presentation/formatter"
	"github.com/penwyp/go-apod-widget/internal/presentation/layout"
	"github.com/penwyp/go-apod-widget/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Output related
	outputFormat string
	previewSize  string
	renderWidth  int
	renderHeight int
)

var placeholderCmd = &cobra.Command{
	Use:   "placeholder",
	Short: "Print the entry shown while the first picture loads",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, func(ctx context.Context, p previewProvider, in model.Intent, size model.SizeClass) formatter.Report {
			return formatter.NewEntryReport("placeholder", p.Placeholder(), size)
		})
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the quick preview entry, honouring shouldShowText",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, func(ctx context.Context, p previewProvider, in model.Intent, size model.SizeClass) formatter.Report {
			return formatter.NewEntryReport("snapshot", p.Snapshot(in), size)
		})
	},
}

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Fetch the current picture once and print the resulting timeline",
	Long: `Fetch the current picture once and print the resulting timeline.

A failed fetch is not an error: the timeline then holds the connection error
entry and a shorter reload policy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, func(ctx context.Context, p previewProvider, in model.Intent, size model.SizeClass) formatter.Report {
			return formatter.NewTimelineReport(p.Timeline(ctx, in), size)
		})
	},
}

// previewProvider is the part of the timeline provider the one-shot commands use
type previewProvider interface {
	Placeholder() model.Entry
	Snapshot(intent model.Intent) model.Entry
	Timeline(ctx context.Context, intent model.Intent) model.Timeline
}

type reportBuilder func(ctx context.Context, p previewProvider, in model.Intent, size model.SizeClass) formatter.Report

func init() {
	for _, cmd := range []*cobra.Command{placeholderCmd, snapshotCmd, timelineCmd} {
		rootCmd.AddCommand(cmd)

		cmd.Flags().StringVarP(&outputFormat, "output", "o", "text",
			"Output format (text, json, render)")
		cmd.Flags().StringVar(&previewSize, "size", "",
			"Size class used to select the layout; empty derives it from the render area")
		cmd.Flags().IntVar(&renderWidth, "width", 0,
			"Render area width (0 = terminal width)")
		cmd.Flags().IntVar(&renderHeight, "height", 0,
			"Render area height (0 = terminal height)")
	}
}

func runPreview(cmd *cobra.Command, build reportBuilder) error {
	if err := initLogging(); err != nil {
		return err
	}
	defer util.CloseLogger()

	if err := util.InitializeTimeProvider(timezone); err != nil {
		return err
	}

	config := widgetConfig()
	provider, sourceName, err := widget.NewTimelineProvider(config)
	if err != nil {
		return err
	}
	util.LogDebugf("Preview using source %s", sourceName)

	store, err := intent.NewStore(config.IntentFile)
	if err != nil {
		return err
	}

	width, height := renderArea()
	size, err := resolveSize(previewSize, width, height)
	if err != nil {
		return err
	}

	f, err := formatter.GetFormatter(outputFormat, model.LayoutParam{
		Width:    width,
		Height:   height,
		Timezone: config.Timezone,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	report := build(ctx, provider, store.Load(), size)
	return f.Format(cmd.OutOrStdout(), report)
}

// renderArea returns the flag dimensions, falling back to the terminal size
func renderArea() (int, int) {
	width, height := renderWidth, renderHeight
	if width <= 0 || height <= 0 {
		termWidth, termHeight := layout.GetSizer().TerminalSize()
		if width <= 0 {
			width = termWidth
		}
		if height <= 0 {
			height = termHeight
		}
	}
	return width, height
}

// resolveSize parses a size flag; an empty name classifies the render area
func resolveSize(name string, width, height int) (model.SizeClass, error) {
	if name == "" {
		return layout.Classify(width, height), nil
	}
	size, ok := model.ParseSizeClass(name)
	if !ok {
		return model.SizeUnknown, fmt.Errorf("unknown size %q (use small, medium, large or unknown)", name)
	}
	return size, nil
}
