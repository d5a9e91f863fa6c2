package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reoring/goform/i18n"
	"github.com/reoring/goform/internal/logger"
	"github.com/reoring/goform/manifest"
)

// errInvalid reports a form that failed validation; main maps it to exit
// code 1 without printing it again.
var errInvalid = errors.New("form is invalid")

type globalFlags struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "goform",
		Short:         "Inspect, check and replay form definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "console", "log format: console or json")

	root.AddCommand(newPathsCmd(), newCheckCmd(g), newReplayCmd(g))
	return root
}

func (g *globalFlags) logger() *zap.Logger {
	return logger.New(g.logLevel, logger.Format(g.logFormat))
}

// loadManifest reads a manifest and applies its language to the messages.
func loadManifest(path string) (*manifest.Manifest, error) {
	m, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}
	i18n.SetLanguage(m.Language)
	return m, nil
}
