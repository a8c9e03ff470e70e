package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trellis/internal/observability"
	"trellis/pkg/layout"
)

func newRenderCmd(opts *options) *cobra.Command {
	var (
		output  string
		scrollX float64
		scrollY float64
	)

	cmd := &cobra.Command{
		Use:   "render [project]",
		Short: "Render one frame of a project to a PNG file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.loadApp()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scroll-x") || cmd.Flags().Changed("scroll-y") {
				// Overflow flags are only known after a first layout.
				a.Layout()
				a.ScrollAll(layout.Horizontal, scrollX)
				a.ScrollAll(layout.Vertical, scrollY)
			}

			img := a.RenderImage()

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}
			defer f.Close()
			if err := png.Encode(f, img); err != nil {
				return fmt.Errorf("encoding %s: %w", output, err)
			}

			observability.GetLogger().Info("frame rendered",
				zap.String("output", output),
				zap.Int("nodes", len(a.Dump())))
			fmt.Fprintf(cmd.OutOrStdout(), "Rendered %s to %s\n", opts.cfg.Project.Root, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output PNG file")
	cmd.Flags().Float64Var(&scrollX, "scroll-x", 0, "horizontal scroll position of scrollable containers, 0 to 1")
	cmd.Flags().Float64Var(&scrollY, "scroll-y", 0, "vertical scroll position of scrollable containers, 0 to 1")
	return cmd
}
