package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"github.com/brightpane/roundfinder/internal/appconf"
	"github.com/brightpane/roundfinder/internal/logging"
	"github.com/brightpane/roundfinder/internal/utils"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(run(os.Args[1:]))
}

// run starts the service and blocks until it stops, returning the process
// exit code. Deferred cleanup always runs before main exits.
func run(args []string) int {
	// A missing .env file is normal outside development.
	envErr := godotenv.Load()

	cfg, err := parseConfig(args, appconf.FromEnvironment())
	if err != nil {
		return 2
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	coreApp, err := buildApplication(cfg, logger)
	if err != nil {
		return 1
	}

	api, handler := newHandler(coreApp)
	defer api.Shutdown()

	srv := &http.Server{
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		logging.LogError(logger, "failed to listen", err,
			slog.Int("port", cfg.Port),
			slog.String("component", "startup"))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, listener, logger, shutdownTimeout); err != nil {
		logging.LogError(logger, "server stopped", err, slog.String("component", "http_server"))
		return 1
	}
	return 0
}

// parseConfig reads command-line flags over defaults taken from the environment.
func parseConfig(args []string, defaults appconf.Config) (appconf.Config, error) {
	cfg := defaults
	var env, trustedProxies string

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", defaults.Port, "API server port")
	fs.StringVar(&env, "env", defaults.Env.String(), "Environment (development|test|production)")
	fs.IntVar(&cfg.RateLimit, "rate-limit", defaults.RateLimit, "Requests per second per client (0 disables)")
	fs.StringVar(&cfg.CalendarPath, "calendar", defaults.CalendarPath, "Path to a calendar YAML file (default: built-in calendar)")
	fs.StringVar(&cfg.Timezone, "timezone", defaults.Timezone, "IANA timezone that decides the current day")
	fs.StringVar(&cfg.LogLevel, "log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&trustedProxies, "trusted-proxies", strings.Join(defaults.TrustedProxies, ","),
		"Comma separated proxy addresses or CIDR ranges whose X-Forwarded-For is believed")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}
	cfg.Env = appconf.EnvFlagToEnvironment(env)
	cfg.TrustedProxies = appconf.SplitList(trustedProxies)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		err := fmt.Errorf("invalid port %d", cfg.Port)
		fmt.Fprintln(fs.Output(), err)
		return appconf.Config{}, err
	}

	if _, err := utils.ParseTrustedProxies(cfg.TrustedProxies); err != nil {
		fmt.Fprintln(fs.Output(), err)
		return appconf.Config{}, err
	}

	return cfg, nil
}

// serve runs srv on listener until ctx is cancelled, then drains in-flight
// requests. Connections still open after timeout are closed forcibly.
func serve(ctx context.Context, srv *http.Server, listener net.Listener, logger *slog.Logger, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", listener.Addr().String())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.SafeCloseWithLogging(srv, logger, "http_server")
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
