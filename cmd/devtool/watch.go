package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
)

const sseBufferSize = 64 * 1024

type WatchEventsCommand struct{}

func (c *WatchEventsCommand) Name() string {
	return "watch-events"
}

func (c *WatchEventsCommand) Description() string {
	return "Stream draw events from a running server ([type,type...])"
}

func (c *WatchEventsCommand) Run(args []string) error {
	url := getEnv(envAPIURL, defaultAPIURL) + "/api/v1/events"
	if len(args) > 0 {
		url += "?types=" + args[0]
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	PrintHeader(fmt.Sprintf("Watching %s (Ctrl-C to stop)", url))

	err = readEvents(resp.Body, func(eventType, data string) {
		PrintInfo("%s %s", eventType, data)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// readEvents calls emit for every complete event in an SSE stream,
// skipping keepalives.
func readEvents(body io.Reader, emit func(eventType, data string)) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseBufferSize), sseBufferSize)

	var eventType, data string
	for scanner.Scan() {
		line := scanner.Text()

		if line == "" {
			if data != "" && eventType != "keepalive" {
				emit(eventType, data)
			}
			eventType, data = "", ""
			continue
		}

		if v, ok := strings.CutPrefix(line, "event: "); ok {
			eventType = v
		} else if v, ok := strings.CutPrefix(line, "data: "); ok {
			data = v
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading stream: %w", err)
	}
	return fmt.Errorf("stream closed")
}
