// Command icongen paints the gradient heart-and-plus app icon at every
// iOS/iPadOS icon size.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/abiiranathan/appicon"
	"github.com/abiiranathan/appicon/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	e, err := cli.ParseEnv()
	if err != nil {
		cli.Failure(stderr, err)
		return 1
	}

	fs := flag.NewFlagSet("icongen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	e.Bind(fs, false)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := cli.NewLogger(e.LogLevel, stdout)
	if err != nil {
		cli.Failure(stderr, err)
		return 1
	}

	cfg, err := e.Config(logger, false)
	if err != nil {
		cli.Failure(stderr, err)
		return 1
	}

	results, err := appicon.Render(cfg)
	if err != nil {
		cli.Failure(stderr, err)
		return 1
	}

	var next []string
	if !e.Contents {
		next = append(next, "Update "+appicon.ContentsFile+" with the generated filenames, or rerun with -contents")
	}
	cli.Summary(stdout, results, next...)
	return 0
}
