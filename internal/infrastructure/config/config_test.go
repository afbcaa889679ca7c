package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadServer_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "QUOTATIONS_TABLE", "RATES_TABLE", "AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.QuotationsTable != "quotations" || cfg.RatesTable != "rates" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Dynamo.Region != "us-east-1" || cfg.Dynamo.AccessKeyID != "local" || cfg.Dynamo.Endpoint != "" {
		t.Fatalf("unexpected dynamo defaults: %+v", cfg.Dynamo)
	}
}

func TestLoadServer_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("QUOTATIONS_TABLE", "q-test")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	cfg, err := LoadServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.QuotationsTable != "q-test" || cfg.Dynamo.Endpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadServer_InvalidPort(t *testing.T) {
	t.Setenv("PORT", "eighty")
	if _, err := LoadServer(); err == nil {
		t.Fatalf("expected error for non-numeric port")
	}
}

func TestLoadClient(t *testing.T) {
	t.Setenv("QUOTE_API_URL", "http://quotes.local")
	t.Setenv("QUOTE_API_TIMEOUT", "3s")

	cfg, err := LoadClient()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "http://quotes.local" || cfg.Timeout != 3*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}
