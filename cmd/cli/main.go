package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/pipegate/internal/app"
	"github.com/vk/pipegate/internal/cli"
)

// main is the entrypoint for the pipegate binary.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes: 0 on success,
	// 1 for a failed pipeline, 2 for usage and configuration errors.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ctx := context.Background()
	pipegateApp, err := app.NewApp(ctx, outW, appConfig, app.LoaderFor(appConfig.PipelinePath))
	if err != nil {
		// Anything wrong before execution starts is a configuration error.
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	return pipegateApp.Run(ctx)
}
