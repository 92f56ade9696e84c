// Command iconresize resizes a source image to every iOS/iPadOS app icon size.
//
//	go run ./cmd/iconresize -source logo.png -out MyApp/Assets.xcassets/AppIcon.appiconset
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

	fs := flag.NewFlagSet("iconresize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	e.Bind(fs, true)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := cli.NewLogger(e.LogLevel, stdout)
	if err != nil {
		cli.Failure(stderr, err)
		return 1
	}

	cfg, err := e.Config(logger, true)
	if err != nil {
		cli.Failure(stderr, err)
		return 1
	}

	results, err := appicon.Resize(cfg)
	if err != nil {
		cli.Failure(stderr, err)
		return 1
	}

	cli.Summary(stdout, results,
		"Clean build folder in Xcode (Shift+Cmd+K)",
		"Build the project (Cmd+B)",
		"Run the app to see the new icons",
	)
	return 0
}
