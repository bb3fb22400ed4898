package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/ColorRush_Go/internal/domain"
	"github.com/osse101/ColorRush_Go/internal/sse"
)

const (
	defaultWatchEvents  = 10
	defaultWatchTimeout = 30 * time.Second
)

// WatchCommand tails a session's event stream
type WatchCommand struct{}

func (c *WatchCommand) Name() string {
	return "watch"
}

func (c *WatchCommand) Description() string {
	return "Create (or attach to) a session and print its stream events"
}

func (c *WatchCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	sessionID := fs.String("session", "", "Existing session ID (a new one is created when empty)")
	count := fs.Int("n", defaultWatchEvents, "Stop after this many events")
	timeout := fs.Duration("timeout", defaultWatchTimeout, "Give up after this long")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	base := apiURL()
	id := *sessionID
	if id == "" {
		snap, err := createSession(ctx, base)
		if err != nil {
			return err
		}
		id = snap.SessionID
		PrintSuccess("Created session %s (balance %d)", id, snap.CoinBalance)
	}

	PrintHeader(fmt.Sprintf("Watching %s", id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/api/v1/sessions/"+id+"/events", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	seen := 0
	err = readFrames(resp.Body, func(f frame) bool {
		seen++
		evt, err := f.event()
		if err != nil {
			PrintWarning("%s: undecodable data: %v", f.Type, err)
			return seen < *count
		}
		PrintInfo("%-22s %s", evt.Type, f.Data)
		return seen < *count
	})
	if ctx.Err() != nil {
		PrintWarning("Stopped after %d events: %v", seen, ctx.Err())
		return nil
	}
	return err
}

func createSession(ctx context.Context, base string) (domain.Snapshot, error) {
	var snap domain.Snapshot

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/api/v1/sessions", nil)
	if err != nil {
		return snap, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return snap, fmt.Errorf("failed to create session: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return snap, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return snap, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return snap, nil
}

// frame is one server-sent event as read off the wire
type frame struct {
	ID   string
	Type string
	Data string
}

// event decodes the frame's data line
func (f frame) event() (sse.Event, error) {
	var evt sse.Event
	err := json.Unmarshal([]byte(f.Data), &evt)
	return evt, err
}

// readFrames parses an event stream, calling fn for each complete frame
// until fn returns false or the stream ends. Comment lines are skipped.
func readFrames(r io.Reader, fn func(frame) bool) error {
	scanner := bufio.NewScanner(r)
	var cur frame

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if cur.Type == "" && cur.Data == "" {
				continue
			}
			if !fn(cur) {
				return nil
			}
			cur = frame{}
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "id: "):
			cur.ID = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			cur.Type = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			cur.Data = strings.TrimPrefix(line, "data: ")
		}
	}
	return scanner.Err()
}
