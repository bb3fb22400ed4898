package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	healthTimeout = 5 * time.Second
	slowThreshold = time.Second
	pathHealthz   = "/healthz"
	pathReadyz    = "/readyz"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check liveness and readiness of a running server"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := apiURL()
	if len(args) > 0 {
		base = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))
	client := &http.Client{Timeout: healthTimeout}

	for _, path := range []string{pathHealthz, pathReadyz} {
		body, elapsed, err := probe(client, base+path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if elapsed > slowThreshold {
			PrintWarning("%s slow response (%v): %v", path, elapsed, body)
		} else {
			PrintSuccess("%s ok (%v): %v", path, elapsed, body)
		}
	}
	return nil
}

// probe GETs url and decodes its JSON body
func probe(client *http.Client, url string) (map[string]any, time.Duration, error) {
	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, elapsed, fmt.Errorf("decode body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return body, elapsed, fmt.Errorf("unexpected status %s: %v", resp.Status, body)
	}
	return body, elapsed, nil
}
