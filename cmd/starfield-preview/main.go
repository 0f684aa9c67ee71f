// Command starfield-preview serves PNG snapshots and GIF loops of the star field over HTTP
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lixenwraith/starfield/config"
	"github.com/lixenwraith/starfield/core"
	"github.com/lixenwraith/starfield/preview"
)

const (
	logFileName     = "starfield-preview.log"
	shutdownTimeout = 5 * time.Second
)

type options struct {
	config.Settings
	Addr string `env:"STARFIELD_ADDR" envDefault:":8080"`
}

func main() {
	if err := config.LoadDotenv(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load env file: %v\n", err)
		os.Exit(1)
	}

	var opts options
	if err := config.ParseEnv(&opts); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	opts.RegisterFlags(flag.CommandLine)
	flag.StringVar(&opts.Addr, "addr", opts.Addr, "listen address")
	flag.Parse()
	if _, err := opts.Starfield(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The server logs requests, so unlike the display hosts it writes to stderr without -debug
	logger := log.New(os.Stderr, "", log.LstdFlags)
	if logFile := core.SetupLogging(opts.Debug, core.LogDir, logFileName); logFile != nil {
		defer logFile.Close()
		logger = log.Default()
	}
	if !opts.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, opts.Addr, preview.New(opts.Settings, logger).Router(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Preview server failed: %v\n", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	core.Go(func() {
		logger.Printf("preview: listening on %s", addr)
		errCh <- srv.ListenAndServe()
	})

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Printf("preview: stopped")
	return nil
}
