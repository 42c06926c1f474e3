package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/wrenfell/filesource/internal/configuration"
	"github.com/wrenfell/filesource/internal/filesystem"
	"github.com/wrenfell/filesource/internal/integrity"
	"github.com/wrenfell/filesource/internal/schema"
	"github.com/wrenfell/filesource/internal/source"
	"github.com/wrenfell/filesource/internal/ui"
)

// App is the principal structure wiring the registered sources, the
// filesystem introspection and the settings into the one-shot commands and
// the browser UI.
type App struct {
	sourceManager *source.Manager
	fsHandler     *filesystem.Handler
	settings      *configuration.AppSettings
}

// NewApp returns a pointer to a new [App].
func NewApp(sourceManager *source.Manager,
	fsHandler *filesystem.Handler,
	settings *configuration.AppSettings,
) *App {
	return &App{
		sourceManager: sourceManager,
		fsHandler:     fsHandler,
		settings:      settings,
	}
}

// Launch runs the one-shot command named by the given arguments.
func (app *App) Launch(ctx context.Context, args []string) error {
	if len(args) < 2 { //nolint:mnd
		slog.Error("Usage: filesource [flags] <read|meta|ls|stat|hash> <uri>",
			"schemes", app.sourceManager.Schemes(),
		)

		return fmt.Errorf("(app) %w", ErrNoCommand)
	}

	command, uri := args[0], args[1]

	var err error

	switch command {
	case "read":
		err = app.readAsset(ctx, uri)
	case "meta":
		err = app.readAssetMeta(ctx, uri)
	case "ls":
		err = app.listDirectory(ctx, uri)
	case "stat":
		err = app.statAsset(ctx, uri)
	case "hash":
		err = app.hashAsset(ctx, uri)
	default:
		err = fmt.Errorf("(app) %w: %s", ErrUnknownCommand, command)
	}

	if err != nil {
		if errors.Is(err, schema.ErrNotFound) {
			slog.Warn("Asset not found: a host would fall back to other sources.",
				"err", err,
				"uri", uri,
			)
		} else {
			slog.Error("Command failed.",
				"err", err,
				"command", command,
			)
		}

		return err
	}

	return nil
}

// LaunchUI starts the interactive asset browser, rooted at the given path
// and browsing through the source registered under the configured scheme.
// Logs are routed into the browser's log pane for the UI's lifetime.
func (app *App) LaunchUI(ctx context.Context, cancel context.CancelFunc, root string) error {
	reader, err := app.sourceManager.Build(app.settings.Scheme)
	if err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	uiHandler := ui.NewHandler(ctx, cancel, reader, app.fsHandler, root)

	setupLogging(logLevel(app.settings.LogLevel), uiHandler.LogWriter)
	defer setupLogging(logLevel(app.settings.LogLevel), os.Stdout)

	if err := uiHandler.Launch(); err != nil {
		return fmt.Errorf("(app-ui) %w", err)
	}

	return nil
}

func (app *App) readAsset(ctx context.Context, uri string) error {
	content, err := app.sourceManager.Resolve(ctx, uri)
	if err != nil {
		return fmt.Errorf("(app-read) %w", err)
	}
	defer content.Close()

	if _, err := io.Copy(os.Stdout, content); err != nil {
		return fmt.Errorf("(app-read) %w", err)
	}

	return nil
}

func (app *App) readAssetMeta(ctx context.Context, uri string) error {
	reader, path, err := app.sourceManager.Lookup(uri)
	if err != nil {
		return fmt.Errorf("(app-meta) %w", err)
	}

	content, err := reader.ReadMeta(ctx, path)
	if err != nil {
		return fmt.Errorf("(app-meta) %w", err)
	}
	defer content.Close()

	if _, err := io.Copy(os.Stdout, content); err != nil {
		return fmt.Errorf("(app-meta) %w", err)
	}

	return nil
}

func (app *App) listDirectory(ctx context.Context, uri string) error {
	reader, path, err := app.sourceManager.Lookup(uri)
	if err != nil {
		return fmt.Errorf("(app-ls) %w", err)
	}

	listing, err := reader.ReadDirectory(ctx, path)
	if err != nil {
		return fmt.Errorf("(app-ls) %w", err)
	}

	for {
		childPath, ok := listing.Next()
		if !ok {
			break
		}

		if isDir, _ := reader.IsDirectory(ctx, childPath); isDir {
			childPath += string(os.PathSeparator)
		}

		fmt.Fprintln(os.Stdout, childPath)
	}

	return nil
}

func (app *App) statAsset(ctx context.Context, uri string) error {
	reader, path, err := app.sourceManager.Lookup(uri)
	if err != nil {
		return fmt.Errorf("(app-stat) %w", err)
	}

	metadata, err := app.fsHandler.GetMetadata(path)
	if err != nil {
		return fmt.Errorf("(app-stat) %w", err)
	}

	isDir, _ := reader.IsDirectory(ctx, path)

	fmt.Fprintf(os.Stdout, "Path: %s\n", path)
	fmt.Fprintf(os.Stdout, "Size: %s\n", humanize.Bytes(uint64(max(metadata.Size, 0))))
	fmt.Fprintf(os.Stdout, "Mode: %s\n", metadata.Permissions)
	fmt.Fprintf(os.Stdout, "Modified: %s\n", metadata.ModifiedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(os.Stdout, "Directory: %t\n", isDir)

	if usage, err := app.fsHandler.GetDiskUsage(path); err == nil {
		fmt.Fprintf(os.Stdout, "Free: %s of %s\n",
			humanize.Bytes(uint64(max(usage.FreeSpace, 0))),
			humanize.Bytes(uint64(max(usage.TotalSize, 0))),
		)
	}

	return nil
}

func (app *App) hashAsset(ctx context.Context, uri string) error {
	content, err := app.sourceManager.Resolve(ctx, uri)
	if err != nil {
		return fmt.Errorf("(app-hash) %w", err)
	}
	defer content.Close()

	digest, err := integrity.Sum(ctx, content)
	if err != nil {
		return fmt.Errorf("(app-hash) %w", err)
	}

	fmt.Fprintf(os.Stdout, "%s  %s\n", digest, uri)

	return nil
}
