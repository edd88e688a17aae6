// Command mazed serves maze generation over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mazegen/internal/cli"
	"mazegen/internal/config"
	"mazegen/internal/ctxlog"
	"mazegen/internal/server"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, os.Stderr, os.Args[1:]); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			fmt.Fprintln(os.Stderr, exit.Message)
			os.Exit(exit.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, errOut io.Writer, args []string) error {
	fs := flag.NewFlagSet("mazed", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", ":8080", "listen address")
	presets := cli.Vars{}
	fs.Var(presets, "preset", "named preset as name=path (repeatable)")
	vars := cli.Vars{}
	fs.Var(vars, "var", "preset variable as key=value (repeatable)")
	var logFlags cli.LogFlags
	logFlags.Bind(fs)

	help, err := cli.Parse(fs, args)
	if err != nil || help {
		return err
	}
	log, err := logFlags.Logger(errOut)
	if err != nil {
		return err
	}
	ctx = ctxlog.WithLogger(ctx, log)

	loaded, err := loadPresets(ctx, presets, vars)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", *addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", *addr, err)
	}
	srv := &http.Server{
		Handler:           server.New(log, loaded).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info("maze server listening", "addr", ln.Addr().String(), "presets", len(loaded))
	errc := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down maze server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return <-errc
}

// loadPresets reads every name=path pair into a preset map.
func loadPresets(ctx context.Context, specs, vars map[string]string) (map[string]*config.Preset, error) {
	out := make(map[string]*config.Preset, len(specs))
	for name, path := range specs {
		p, err := config.Load(ctx, path, vars)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		out[name] = p
	}
	return out, nil
}
