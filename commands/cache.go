package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/penwyp/go-apod-widget/internal/core/fetch"
	"github.com/penwyp/go-apod-widget/internal/util"
	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the picture cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the cached picture",
	Args:  cobra.NoArgs,
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the cached picture",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd, cacheClearCmd)
}

func openCache() (*fetch.CacheManager, error) {
	if err := initLogging(); err != nil {
		return nil, err
	}
	return fetch.NewCacheManager(expandPath(cacheDir))
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	manager, err := openCache()
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	out := cmd.OutOrStdout()
	cached, err := manager.LoadPicture()
	if errors.Is(err, fetch.ErrNoCachedPicture) {
		fmt.Fprintf(out, "No cached picture at %s\n", manager.Path())
		return nil
	}
	if err != nil {
		return err
	}

	age, err := manager.GetCacheAge()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "File:    %s\n", manager.Path())
	fmt.Fprintf(out, "Source:  %s\n", cached.Source)
	fmt.Fprintf(out, "Title:   %s\n", cached.Picture.Title)
	fmt.Fprintf(out, "Date:    %s\n", cached.Picture.Date)
	fmt.Fprintf(out, "Saved:   %s (%s ago)\n", cached.UpdatedAt.Format(time.RFC3339), util.FormatDuration(age))
	fmt.Fprintf(out, "Image:   %s\n", util.FormatBytes(int64(len(cached.ImageData))))
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	manager, err := openCache()
	if err != nil {
		return err
	}
	defer util.CloseLogger()

	if !manager.HasCache() {
		fmt.Fprintln(cmd.OutOrStdout(), "Cache is already empty")
		return nil
	}
	if err := manager.ClearCache(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	util.LogInfo("Cache cleared")
	fmt.Fprintln(cmd.OutOrStdout(), "Cache cleared")
	return nil
}
