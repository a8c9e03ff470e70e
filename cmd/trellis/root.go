package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trellis/internal/config"
	"trellis/internal/observability"
	"trellis/pkg/app"
)

// options holds state shared by all subcommands.
type options struct {
	configFile string
	width      int
	height     int
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "trellis",
		Short:         "Lay out and render trellis UI projects.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			if opts.width > 0 {
				cfg.Viewport.Width = opts.width
			}
			if opts.height > 0 {
				cfg.Viewport.Height = opts.height
			}
			if len(args) > 0 {
				cfg.Project.Root = args[0]
			}
			opts.cfg = cfg

			observability.InitializeLogger(cfg.Logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			observability.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./trellis.yaml)")
	flags.IntVar(&opts.width, "width", 0, "viewport width in pixels (overrides config)")
	flags.IntVar(&opts.height, "height", 0, "viewport height in pixels (overrides config)")

	root.AddCommand(newRenderCmd(opts), newDumpCmd(opts), newCheckCmd(opts))
	return root
}

// loadApp builds the project named by the resolved configuration.
func (o *options) loadApp() (*app.Application, error) {
	logger := observability.GetLogger()
	a, err := app.Load(o.cfg, afero.NewOsFs(), logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("project loaded",
		zap.String("root", o.cfg.Project.Root),
		zap.Int("width", o.cfg.Viewport.Width),
		zap.Int("height", o.cfg.Viewport.Height))
	return a, nil
}
