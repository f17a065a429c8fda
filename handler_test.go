package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestHandler(t *testing.T) {
	raw, err := os.ReadFile("testdata/example.json")
	if err != nil {
		t.Fatal(err)
	}
	body := strings.Replace(string(raw), "{", `{"extendedCount": 0,`, 1)

	tests := []struct {
		name    string
		body    string
		base64  bool
		status  int
		contain string
	}{
		{"ok", body, false, 200, `"quality":33`},
		{"ok base64", base64.StdEncoding.EncodeToString([]byte(body)), true, 200, `"quality":33`},
		{"bad base64", "%%%", true, 400, "base64"},
		{"bad json", "{", false, 400, "invalid JSON"},
		{"schema", `{"blueprints": [{"ore": 0, "clay": 2, "obsidian": {"ore": 3, "clay": 1}, "geode": {"ore": 2, "obsidian": 7}}]}`, false, 400, "invalid request"},
		{"budget too large", `{"timeBudget": 99, "blueprints": [{"ore": 1, "clay": 2, "obsidian": {"ore": 3, "clay": 1}, "geode": {"ore": 2, "obsidian": 7}}]}`, false, 400, "invalid request"},
		{"no blueprints", `{"blueprints": []}`, false, 400, "invalid request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := handler(context.Background(), events.LambdaFunctionURLRequest{
				Body:            tt.body,
				IsBase64Encoded: tt.base64,
			})
			if err != nil {
				t.Fatalf("handler: %v", err)
			}
			if resp.StatusCode != tt.status {
				t.Fatalf("status: got %d, want %d (%s)", resp.StatusCode, tt.status, resp.Body)
			}
			if !strings.Contains(resp.Body, tt.contain) {
				t.Fatalf("body %s does not contain %q", resp.Body, tt.contain)
			}
			if !json.Valid([]byte(resp.Body)) {
				t.Fatalf("body is not JSON: %s", resp.Body)
			}
		})
	}
}

func TestRequestConfig(t *testing.T) {
	cfg := requestConfig(`{"timeBudget": 10, "extendedBudget": 12, "extendedCount": 1}`)
	if cfg.TimeBudget != 10 || cfg.ExtendedBudget != 12 || cfg.ExtendedCount != 1 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxFrontier != lambdaMaxFrontier || cfg.Timeout != lambdaTimeout {
		t.Fatalf("limits not applied: %+v", cfg)
	}
}
