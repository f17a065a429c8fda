package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/tidwall/gjson"
)

//go:embed request.schema.json
var requestSchemaJSON string

var requestSchema = jsonschema.MustCompileString("request.schema.json", requestSchemaJSON)

// Limits applied to every request so a hostile blueprint cannot hold the
// function until its hard timeout.
const (
	lambdaMaxFrontier = 1 << 22
	lambdaTimeout     = 20 * time.Second
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var doc any
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if err := requestSchema.Validate(doc); err != nil {
		return errResp(400, "invalid request: "+err.Error())
	}

	bps, err := ParseBlueprintsJSON([]byte(body))
	if err != nil {
		return errResp(400, err.Error())
	}

	cfg := requestConfig(body)
	rep, err := Solve(ctx, bps, cfg)
	switch {
	case errors.Is(err, ErrNotConverged):
		return errResp(422, err.Error())
	case err != nil:
		return errResp(500, err.Error())
	}

	respJSON, _ := json.Marshal(rep)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func requestConfig(body string) Config {
	cfg := DefaultConfig()
	cfg.MaxFrontier = lambdaMaxFrontier
	cfg.Timeout = lambdaTimeout
	if v := gjson.Get(body, "timeBudget"); v.Exists() {
		cfg.TimeBudget = int(v.Int())
	}
	if v := gjson.Get(body, "extendedBudget"); v.Exists() {
		cfg.ExtendedBudget = int(v.Int())
	}
	if v := gjson.Get(body, "extendedCount"); v.Exists() {
		cfg.ExtendedCount = int(v.Int())
	}
	return cfg
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}
