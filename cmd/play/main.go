// Command play runs one Color Rush game in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/osse101/ColorRush_Go/internal/config"
	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/event"
	"github.com/osse101/ColorRush_Go/internal/logger"
	"github.com/osse101/ColorRush_Go/internal/round"
	"github.com/osse101/ColorRush_Go/internal/rules"
	"github.com/osse101/ColorRush_Go/internal/validation"
)

const localSessionID = "local"

func main() {
	rulesPath := flag.String("rules", config.ConfigPathRules, "game rules file")
	schemaPath := flag.String("schema", config.ConfigPathRulesSchema, "game rules JSON schema")
	logLevel := flag.String("log-level", "warn", "log level written to stderr")
	flag.Parse()

	if err := run(*rulesPath, *schemaPath, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "play:", err)
		os.Exit(1)
	}
}

func run(rulesPath, schemaPath, logLevel string) error {
	logCfg := logger.DefaultConfig()
	logCfg.Level = logLevel
	logger.InitLoggerWithWriter(logCfg, os.Stderr)

	gameRules, err := rules.NewLoader(rulesPath, schemaPath, validation.NewSchemaValidator()).Load()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Latest snapshot wins; the renderer never blocks the engine
	frames := make(chan domain.Snapshot, 1)
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, event.GameTypes, func(_ context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.RoundEventPayload](evt.Payload)
		if err != nil {
			return err
		}
		offer(frames, payload.Snapshot)
		return nil
	})

	engine := round.NewEngine(gameRules, round.WithBus(bus), round.WithSessionID(localSessionID))
	engineErr := make(chan error, 1)
	go func() { engineErr <- engine.Run(ctx) }()

	raw := false
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return err
		}
		raw = true
		defer func() { _ = term.Restore(fd, state) }()
	}

	keys := make(chan byte)
	go readKeys(os.Stdin, keys)

	snap, err := engine.Snapshot(ctx)
	if err != nil {
		return err
	}
	render(os.Stdout, snap, raw)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-engineErr:
			if err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		case snap := <-frames:
			render(os.Stdout, snap, raw)
		case key, ok := <-keys:
			if !ok {
				return nil
			}
			act, err := dispatch(ctx, engine, key)
			if act == actionQuit {
				cancel()
				<-engine.Done()
				return nil
			}
			if err != nil {
				slog.Warn("Command failed", "key", string(key), "error", err)
			}
		}
	}
}

// offer replaces any pending frame with snap
func offer(frames chan domain.Snapshot, snap domain.Snapshot) {
	for {
		select {
		case frames <- snap:
			return
		default:
		}
		select {
		case <-frames:
		default:
		}
	}
}

func readKeys(r io.Reader, keys chan<- byte) {
	defer close(keys)
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		if n == 1 {
			keys <- buf[0]
		}
	}
}
