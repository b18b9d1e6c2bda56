package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "http://localhost:8080"
	healthTimeout      = 5 * time.Second
	slowResponseMarker = time.Second
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check /healthz and /readyz of a running server (default " + defaultBaseURL + ")"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := defaultBaseURL
	if len(args) > 0 {
		base = args[0]
	}
	base = strings.TrimRight(base, "/")

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	client := &http.Client{Timeout: healthTimeout}
	for _, path := range []string{"/healthz", "/readyz"} {
		duration, err := checkEndpoint(client, base+path)
		if err != nil {
			PrintError("%s failed: %v", path, err)
			return err
		}
		if duration > slowResponseMarker {
			PrintWarning("%s slow response time (%v)", path, duration)
		} else {
			PrintSuccess("%s passed (response time: %v)", path, duration)
		}
	}
	return nil
}

func checkEndpoint(client *http.Client, url string) (time.Duration, error) {
	start := time.Now()
	resp, err := client.Get(url)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("status code %d", resp.StatusCode)
	}
	return time.Since(start), nil
}
