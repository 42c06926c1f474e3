package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/wrenfell/filesource/internal/configuration"
	"github.com/wrenfell/filesource/internal/filesource"
	"github.com/wrenfell/filesource/internal/filesystem"
	"github.com/wrenfell/filesource/internal/schema"
	"github.com/wrenfell/filesource/internal/source"
)

const (
	stackTraceBufMax = 1 << 24
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	uiEnabled = flag.Bool("ui", false, "launch the interactive asset browser")
	envFile   = flag.String("env", "", "dotenv file holding the application settings")
)

func setupLogging(level slog.Level, writer io.Writer) {
	slog.SetDefault(slog.New(
		tint.NewHandler(writer, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	sigChan2 := make(chan os.Signal, 1)
	signal.Notify(sigChan2, syscall.SIGUSR1)
	go func() {
		for range sigChan2 {
			buf := make([]byte, stackTraceBufMax)
			stacklen := runtime.Stack(buf, true)
			os.Stderr.Write(buf[:stacklen])
		}
	}()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Parse()
	setupLogging(slog.LevelInfo, os.Stdout)
	setupSignalHandlers(cancel)

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}
	configProvider := &configuration.GodotenvProvider{}

	configHandler := configuration.NewHandler(configProvider)

	envMap := map[string]string{}
	if *envFile != "" {
		var err error

		envMap, err = configHandler.ReadGeneric(*envFile)
		if err != nil {
			slog.Error("Failed to read the configuration file.",
				"err", err,
				"path", *envFile,
			)
			ExitCode = 1

			return
		}
	}

	settings := configHandler.EstablishSettings(envMap)
	setupLogging(logLevel(settings.LogLevel), os.Stdout)

	fsHandler := filesystem.NewHandler(osProvider, unixProvider)
	sourceManager := source.NewManager()

	if err := sourceManager.Register(settings.Scheme, func() schema.Reader {
		return filesource.NewHandler(osProvider)
	}); err != nil {
		slog.Error("Failed to register the file source.",
			"err", err,
			"scheme", settings.Scheme,
		)
		ExitCode = 1

		return
	}

	app := NewApp(sourceManager, fsHandler, settings)

	if *uiEnabled || settings.UIEnabled {
		root := "."
		if flag.NArg() > 0 {
			root = flag.Arg(0)
		}

		if err := app.LaunchUI(ctx, cancel, root); err != nil {
			slog.Error("UI failure: falling back to terminal.", "err", err)
			ExitCode = 1
		}

		return
	}

	if err := app.Launch(ctx, flag.Args()); err != nil {
		ExitCode = 1
	}
}
