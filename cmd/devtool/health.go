package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const healthTimeout = 5 * time.Second

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check that a running server is live and its storage is ready ([base-url])"
}

func (c *HealthCheckCommand) Run(args []string) error {
	baseURL := getEnv(envAPIURL, defaultAPIURL)
	if len(args) > 0 {
		baseURL = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", baseURL))

	for _, path := range []string{"/healthz", "/readyz"} {
		start := time.Now()
		if err := checkEndpoint(baseURL + path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		duration := time.Since(start)

		if duration > time.Second {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s ok (%v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
