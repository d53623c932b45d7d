package commands

import (
	"fmt"
	"strconv"

	"github.com/penwyp/go-apod-widget/internal/data/intent"
	"github.com/penwyp/go-apod-widget/internal/util"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read or change the widget configuration file",
}

var showTextCmd = &cobra.Command{
	Use:   "show-text [true|false]",
	Short: "Print or set shouldShowText",
	Long: `Print or set shouldShowText.

A running widget watches the configuration file and reloads its timeline when
the value changes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShowText,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showTextCmd)
}

func runShowText(cmd *cobra.Command, args []string) error {
	if err := initLogging(); err != nil {
		return err
	}
	defer util.CloseLogger()

	store, err := intent.NewStore(expandPath(intentFile))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintf(out, "shouldShowText = %t (%s)\n", store.Load().ShouldShowText(), store.Path())
		return nil
	}

	show, err := strconv.ParseBool(args[0])
	if err != nil {
		return fmt.Errorf("invalid value %q: must be true or false", args[0])
	}
	if _, err := store.SetShowText(show); err != nil {
		return err
	}
	util.LogInfof("shouldShowText set to %t in %s", show, store.Path())
	fmt.Fprintf(out, "shouldShowText = %t (%s)\n", show, store.Path())
	return nil
}
