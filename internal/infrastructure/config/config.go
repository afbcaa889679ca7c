package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Dynamo holds the DynamoDB connection settings. The defaults target a local
// DynamoDB, which ignores credentials but still needs some to sign requests.
type Dynamo struct {
	Region          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	Endpoint        string `envconfig:"DYNAMODB_ENDPOINT"`
}

// Server holds configuration for the quotation API.
type Server struct {
	Dynamo          Dynamo
	Port            int    `envconfig:"PORT" default:"8080"`
	QuotationsTable string `envconfig:"QUOTATIONS_TABLE" default:"quotations"`
	RatesTable      string `envconfig:"RATES_TABLE" default:"rates"`
}

// Client holds configuration for the quote CLI.
type Client struct {
	APIURL  string        `envconfig:"QUOTE_API_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"QUOTE_API_TIMEOUT" default:"10s"`
}

// LoadServer loads server configuration from environment variables.
func LoadServer() (*Server, error) {
	var cfg Server
	if err := envconfig.Process("", &cfg.Dynamo); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient loads CLI configuration from environment variables.
func LoadClient() (*Client, error) {
	var cfg Client
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
