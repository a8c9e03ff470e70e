package main

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trellis/internal/observability"
	"trellis/pkg/snapshot"
)

// errFrameMismatch is returned when a frame differs from its reference.
var errFrameMismatch = errors.New("frame does not match reference")

func newCheckCmd(opts *options) *cobra.Command {
	var (
		reference string
		diffPath  string
		update    bool
	)
	compare := snapshot.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "check [project]",
		Short: "Compare a rendered frame with a reference PNG.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.loadApp()
			if err != nil {
				return err
			}
			frame := a.RenderImage()
			fs := afero.NewOsFs()
			logger := observability.GetLogger()

			expected, err := snapshot.LoadPNG(fs, reference)
			switch {
			case update || snapshot.IsMissing(err):
				if err := snapshot.SavePNG(fs, reference, frame); err != nil {
					return err
				}
				logger.Info("reference written", zap.String("reference", reference))
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote reference %s\n", reference)
				return nil
			case err != nil:
				return err
			}

			compare.Diff = diffPath != ""
			res, err := snapshot.Compare(frame, expected, compare)
			if err != nil {
				return err
			}
			if res.Match {
				fmt.Fprintf(cmd.OutOrStdout(), "OK %s (max difference %d)\n", reference, res.MaxDifference)
				return nil
			}

			logger.Warn("frame differs from reference",
				zap.String("reference", reference),
				zap.Int("different_pixels", res.DifferentPixels),
				zap.Int("total_pixels", res.TotalPixels),
				zap.Int("max_difference", res.MaxDifference))
			if res.Diff != nil {
				if err := snapshot.SavePNG(fs, diffPath, res.Diff); err != nil {
					return err
				}
			}
			return fmt.Errorf("%w: %d of %d pixels differ", errFrameMismatch, res.DifferentPixels, res.TotalPixels)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&reference, "reference", "r", "reference.png", "reference PNG file")
	flags.StringVar(&diffPath, "diff", "", "write a diff image here when the frame differs")
	flags.BoolVar(&update, "update", false, "overwrite the reference with the current frame")
	flags.IntVar(&compare.Tolerance, "tolerance", compare.Tolerance, "largest channel difference counted as equal (0-255)")
	flags.IntVar(&compare.FuzzyRadius, "fuzzy-radius", 0, "match pixels within this many pixels of their position")
	flags.Float64Var(&compare.MaxDifferentPercent, "max-different-percent", 0, "accept frames with at most this percentage of differing pixels")
	return cmd
}
