package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/penwyp/go-apod-widget/internal/application/widget"
	"github.com/penwyp/go-apod-widget/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Picture source
	source      string
	baseURL     string
	apiKey      string
	offlineMode bool
	cacheDir    string

	// Host configuration
	intentFile string
	timezone   string

	// Live widget display
	widgetSize       string
	timeFormat       string
	refreshPerSecond float64

	rootCmd = &cobra.Command{
		Use:   "go-apod-widget [flags]",
		Short: "Astronomy Picture of the Day terminal widget",
		Long: `go-apod-widget shows NASA's Astronomy Picture of the Day as a terminal widget.

The widget starts with a placeholder, fetches the current picture once and
reloads it on the schedule the timeline asks for. Caption text is shown when
shouldShowText is set in the configuration file.

Examples:
  go-apod-widget                                # Live widget with the APOD API
  go-apod-widget --source rss                   # Use the APOD RSS feed instead
  go-apod-widget --offline                      # Show the last cached picture
  go-apod-widget --size small                   # Force the small layout
  go-apod-widget config show-text true          # Turn captions on
  go-apod-widget timeline --output json         # Fetch once and print the timeline`,
		SilenceUsage: true,
		RunE:         runWidget,
	}
)

const (
	defaultLogFile    = "~/.go-apod-widget/logs/app.log"
	defaultCacheDir   = "~/.go-apod-widget/cache"
	defaultIntentFile = "~/.go-apod-widget/intent.toml"

	apiKeyEnv = "APOD_API_KEY"
)

func init() {
	// Picture source
	rootCmd.PersistentFlags().StringVar(&source, "source", "apod",
		"Picture source (apod, rss, static)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "",
		"Override the source endpoint (API base URL or feed URL)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "",
		"NASA API key (defaults to $"+apiKeyEnv+", then DEMO_KEY)")
	rootCmd.PersistentFlags().BoolVar(&offlineMode, "offline", false,
		"Serve the last cached picture before contacting the source")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", defaultCacheDir,
		"Directory for the picture cache")

	// Host configuration
	rootCmd.PersistentFlags().StringVar(&intentFile, "intent-file", defaultIntentFile,
		"Configuration file holding shouldShowText")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", defaultLogFile,
		"Log file path")

	// Live widget display
	rootCmd.Flags().StringVar(&widgetSize, "size", "",
		"Force a size class (small, medium, large, unknown); empty measures the terminal")
	rootCmd.Flags().StringVar(&timeFormat, "time-format", "24h",
		"Time format (12h or 24h)")
	rootCmd.Flags().Float64Var(&refreshPerSecond, "refresh-per-second", 1,
		"Display refresh rate (0.1-20 Hz)")
}

func runWidget(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	defer util.CloseLogger()

	// Validate refresh rate
	if refreshPerSecond < 0.1 || refreshPerSecond > 20 {
		return fmt.Errorf("refresh-per-second must be between 0.1 and 20")
	}

	// Validate time format
	if timeFormat != "12h" && timeFormat != "24h" {
		return fmt.Errorf("invalid time format '%s': must be either '12h' or '24h'", timeFormat)
	}

	config := widgetConfig()
	config.Size = widgetSize
	config.TimeFormat = timeFormat
	config.UIRefreshRate = refreshPerSecond

	orchestrator, err := widget.NewOrchestrator(config)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	return orchestrator.Run(ctx)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

// widgetConfig collects the flags shared by every command
func widgetConfig() *widget.WidgetConfig {
	key := apiKey
	if key == "" {
		key = os.Getenv(apiKeyEnv)
	}

	return &widget.WidgetConfig{
		Source:      source,
		BaseURL:     baseURL,
		APIKey:      key,
		OfflineMode: offlineMode,
		CacheDir:    expandPath(cacheDir),
		IntentFile:  expandPath(intentFile),
		Timezone:    timezone,
	}
}

func initLogging() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	path := expandPath(logFile)
	if err := ensureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	if err := util.InitLogger(logLevel, path, debug); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
