package cli

import (
	"bytes"
	"flag"
	"os"
	"testing"

	"github.com/abiiranathan/appicon"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvDefaults(t *testing.T) {
	for _, k := range []string{"APPICON_SOURCE", "APPICON_OUTPUT_DIR", "APPICON_FILTER", "APPICON_CONTENTS", "APPICON_PREVIEW", "APPICON_COPY_TO", "LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, appicon.DefaultOutputDir, e.OutputDir)
	assert.Equal(t, "lanczos", e.Filter)
	assert.Equal(t, "info", e.LogLevel)
	assert.False(t, e.Contents)
}

func TestParseEnvAndFlags(t *testing.T) {
	t.Setenv("APPICON_SOURCE", "logo.svg")
	t.Setenv("APPICON_OUTPUT_DIR", "from-env")
	t.Setenv("APPICON_FILTER", "bicubic")
	t.Setenv("APPICON_CONTENTS", "true")

	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, "logo.svg", e.Source)
	assert.True(t, e.Contents)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	e.Bind(fs, true)
	require.NoError(t, fs.Parse([]string{"-out", "from-flag", "-filter", "nearest", "-copy-to", "mirror"}))

	cfg, err := e.Config(logrus.New(), true)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.OutputDir)
	assert.Equal(t, "logo.svg", cfg.Source)
	assert.Equal(t, appicon.Nearest, cfg.Filter)
	assert.Equal(t, "mirror", cfg.CopyTo)
	assert.True(t, cfg.Contents)
	assert.Equal(t, appicon.DefaultSlots(), cfg.Slots)
}

func TestParseEnvRejectsBadBool(t *testing.T) {
	t.Setenv("APPICON_CONTENTS", "perhaps")
	_, err := ParseEnv()
	assert.Error(t, err)
}

func TestBindWithoutSource(t *testing.T) {
	e := Env{Source: "keep.png"}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	e.Bind(fs, false)
	assert.Nil(t, fs.Lookup("source"))
	assert.Nil(t, fs.Lookup("filter"))
	assert.NotNil(t, fs.Lookup("out"))
}

func TestConfigRejectsUnknownFilter(t *testing.T) {
	_, err := Env{Filter: "sinc"}.Config(logrus.New(), true)
	assert.Error(t, err)
}

func TestConfigWithoutSourceIgnoresFilter(t *testing.T) {
	cfg, err := Env{OutputDir: "out", Source: "logo.png", Filter: "sinc"}.Config(logrus.New(), false)
	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
	assert.Empty(t, cfg.Filter)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, appicon.Lanczos, cfg.Filter)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger("warn", &buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger("chatty", &buf)
	assert.Error(t, err)
}

func TestSummaryAndFailure(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, []appicon.Result{
		{Label: "iphone-40pt@2x", FileName: "icon-40pt@2x.png", Size: 80},
		{Label: "ipad-40pt@2x", FileName: "icon-40pt@2x.png", Size: 80},
	}, "Build the project")
	out := buf.String()
	assert.Contains(t, out, "Generated 2 icon files (1 distinct)")
	assert.Contains(t, out, "1. Build the project")

	buf.Reset()
	Failure(&buf, errors.New("disk full"))
	assert.Contains(t, buf.String(), "Error generating icons: disk full")
	assert.Contains(t, buf.String(), "cli_test.go", "stack trace is printed")
}
