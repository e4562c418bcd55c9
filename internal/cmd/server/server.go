// Package server parses server command flags and runs the web service.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/warmpool/sprite-terminal/internal/platform/config"
	"github.com/warmpool/sprite-terminal/internal/platform/otel"
	"github.com/warmpool/sprite-terminal/internal/web"
)

// Config holds server command configuration.
type Config struct {
	HTTPAddr string `env:"SPRITE_TERMINAL_HTTP_ADDR" envDefault:"localhost:8080"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the terminal story server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "sprite-terminal")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	srv, err := web.NewServer(ctx, web.Config{HTTPAddr: cfg.HTTPAddr})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer srv.Close()

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := srv.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
