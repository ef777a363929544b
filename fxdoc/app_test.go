package fxdoc_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"github.com/0xalexb/dotconf/document"
	"github.com/0xalexb/dotconf/fxdoc"
	"github.com/0xalexb/dotconf/logging"
	"github.com/0xalexb/dotconf/tree"
)

func TestNewApp_CreatesAppWithDefaultLogLevel(t *testing.T) {
	t.Parallel()

	app := fxdoc.NewApp()
	require.NotNil(t, app)
}

func TestNewApp_WithModules(t *testing.T) {
	t.Parallel()

	var invoked bool

	module := fx.Module("test",
		fx.Invoke(func() {
			invoked = true
		}),
	)

	app := fxdoc.NewApp(fxdoc.WithModules(module), fxdoc.WithLogOutput(&bytes.Buffer{}))
	require.NotNil(t, app)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.True(t, invoked)
}

func TestNewApp_LoggerConfigIsSupplied(t *testing.T) {
	t.Parallel()

	var capturedConfig logging.LoggerConfig

	module := fx.Module("test",
		fx.Invoke(func(config logging.LoggerConfig) {
			capturedConfig = config
		}),
	)

	app := fxdoc.NewApp(
		fxdoc.WithLogLevel("warn"),
		fxdoc.WithLogFormat("text"),
		fxdoc.WithLogOutput(&bytes.Buffer{}),
		fxdoc.WithModules(module),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.Equal(t, "warn", capturedConfig.Level)
	require.Equal(t, "text", capturedConfig.Format)
}

func TestNewApp_WithDocumentUsesAppLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	path := filepath.Join(t.TempDir(), "app.json")

	app := fxdoc.NewApp(
		fxdoc.WithLogLevel("warn"),
		fxdoc.WithLogOutput(&buf),
		fxdoc.WithDocument("settings", fxdoc.WithPath(path), fxdoc.WithAutosave(true)),
		fxdoc.WithModules(fx.Invoke(fx.Annotate(func(doc *document.Document, logger *slog.Logger) error {
			require.NotNil(t, logger)

			err := doc.Set("a", tree.String("scalar"))
			if err != nil {
				return err
			}

			_, err = doc.Get("a.b")

			return err
		}, fx.ParamTags(`name:"settings"`, "")))),
	)

	require.NoError(t, app.Start())
	require.NoError(t, app.Stop())

	var warning map[string]any

	for line := range bytes.SplitSeq(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		var entry map[string]any
		if json.Unmarshal(line, &entry) == nil && entry["level"] == "WARN" {
			warning = entry
		}
	}

	require.NotNil(t, warning, "blocked lookup should log a warning")
	require.Equal(t, "settings", warning["module"])
	require.Equal(t, path, warning["document"])

	require.FileExists(t, path)
}

func TestApp_NilReceiver(t *testing.T) {
	t.Parallel()

	var app *fxdoc.App

	require.Error(t, app.Start())
	require.Error(t, app.Stop())
	app.Run()
}
