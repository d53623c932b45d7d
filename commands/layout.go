package commands

import (
	"fmt"

	"github.com/penwyp/go-apod-widget/internal/core/model"
	"github.com/penwyp/go-apod-widget/internal/presentation/layout"
	"github.com/spf13/cobra"
)

var (
	layoutSize    string
	layoutCaption bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show which layout variant a size class and caption flag select",
	Long: `Show which layout variant a size class and caption flag select.

Without --size every combination is listed.`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().StringVar(&layoutSize, "size", "",
		"Size class (small, medium, large, unknown)")
	layoutCmd.Flags().BoolVar(&layoutCaption, "caption", false,
		"Whether the entry shows caption text")
}

func runLayout(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if layoutSize == "" {
		for _, size := range model.AllSizeClasses {
			for _, caption := range []bool{false, true} {
				variant := layout.Select(size, caption)
				fmt.Fprintf(out, "%-8s caption=%-5t %s\n", size, caption, variant)
			}
		}
		return nil
	}

	size, ok := model.ParseSizeClass(layoutSize)
	if !ok {
		return fmt.Errorf("unknown size %q (use small, medium, large or unknown)", layoutSize)
	}
	variant := layout.Select(size, layoutCaption)
	fmt.Fprintf(out, "%s (%s)\n", variant, layout.GetLayoutStrategy(variant).GetName())
	return nil
}
