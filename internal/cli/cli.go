// Package cli holds the configuration and output plumbing shared by the
// icongen and iconresize commands.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/abiiranathan/appicon"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Env is the command configuration. Environment variables seed it and
// command-line flags override it.
type Env struct {
	Source    string `env:"APPICON_SOURCE" envDefault:"icon-source.png"`
	OutputDir string `env:"APPICON_OUTPUT_DIR" envDefault:"HealthAI/Assets.xcassets/AppIcon.appiconset"`
	Filter    string `env:"APPICON_FILTER" envDefault:"lanczos"`
	Contents  bool   `env:"APPICON_CONTENTS"`
	Preview   string `env:"APPICON_PREVIEW"`
	CopyTo    string `env:"APPICON_COPY_TO"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, errors.Wrap(err, "parse env")
	}
	return e, nil
}

// Bind registers the command-line flags on fs, using the current values as
// defaults. The source and filter flags are only registered when withSource
// is set.
func (e *Env) Bind(fs *flag.FlagSet, withSource bool) {
	if withSource {
		fs.StringVar(&e.Source, "source", e.Source, "source image (png, jpeg, gif, bmp, webp or svg)")
		fs.StringVar(&e.Filter, "filter", e.Filter, "resampling filter: lanczos, nearest, bilinear, catmullrom, bicubic, mitchell")
	}
	fs.StringVar(&e.OutputDir, "out", e.OutputDir, "output directory")
	fs.BoolVar(&e.Contents, "contents", e.Contents, "also write "+appicon.ContentsFile)
	fs.StringVar(&e.Preview, "preview", e.Preview, "file name of an HTML preview page written to the output directory")
	fs.StringVar(&e.CopyTo, "copy-to", e.CopyTo, "directory receiving a copy of the generated icons")
	fs.StringVar(&e.LogLevel, "log-level", e.LogLevel, "log level")
}

// Config converts e into a generation config logging through logger. The
// source and filter are only read when withSource is set, matching Bind.
func (e Env) Config(logger logrus.FieldLogger, withSource bool) (*appicon.Config, error) {
	cfg := &appicon.Config{
		OutputDir:   e.OutputDir,
		Slots:       appicon.DefaultSlots(),
		Contents:    e.Contents,
		PreviewFile: e.Preview,
		CopyTo:      e.CopyTo,
		Logger:      logger,
	}
	if withSource {
		f, err := appicon.ParseFilter(e.Filter)
		if err != nil {
			return nil, err
		}
		cfg.Source = e.Source
		cfg.Filter = f
	}
	return cfg, nil
}

// NewLogger returns a text logger writing to out at the named level.
func NewLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", level)
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

// Summary prints the closing report for a successful run.
func Summary(w io.Writer, results []appicon.Result, nextSteps ...string) {
	fmt.Fprintf(w, "\n✓ Generated %d icon files (%d distinct)\n", len(results), len(appicon.FileNames(results)))
	fmt.Fprintln(w, "✓ App icon generation complete!")
	if len(nextSteps) == 0 {
		return
	}
	fmt.Fprintln(w, "\nNext steps:")
	for i, step := range nextSteps {
		fmt.Fprintf(w, "%d. %s\n", i+1, step)
	}
}

// Failure prints err with its stack trace.
func Failure(w io.Writer, err error) {
	fmt.Fprintf(w, "Error generating icons: %+v\n", err)
	fmt.Fprintln(w, "\n✗ Failed to generate icons. Please check the error above.")
}
