// Command trellis-view opens a trellis project in a window. Clicks and the
// mouse wheel are routed into the element tree and the frame is redrawn
// after every event.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"trellis/internal/config"
	"trellis/internal/observability"
	"trellis/pkg/app"
)

func main() {
	configFile := flag.String("config", "", "config file (default is ./trellis.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flag.NArg() > 0 {
		cfg.Project.Root = flag.Arg(0)
	}
	observability.InitializeLogger(cfg.Logger)
	defer observability.Sync()
	logger := observability.GetLogger()

	project, err := app.Load(cfg, afero.NewOsFs(), logger)
	if err != nil {
		logger.Error("cannot open project", zap.String("root", cfg.Project.Root), zap.Error(err))
		os.Exit(1)
	}

	a := fyneapp.New()
	w := a.NewWindow("trellis - " + cfg.Project.Root)
	w.Resize(fyne.NewSize(float32(cfg.Viewport.Width), float32(cfg.Viewport.Height)+40))

	status := widget.NewLabel(cfg.Project.Root)
	view := newFrameView(project, logger)
	view.onEvent = func(what string) { status.SetText(what) }

	w.SetContent(container.NewBorder(nil, status, nil, nil, view))
	w.ShowAndRun()
}
