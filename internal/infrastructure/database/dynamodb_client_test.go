package database

import (
	"context"
	"testing"
)

func TestNewDynamoDBConfig(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_PROFILE", "")

	cfg, err := NewDynamoDBConfig(context.Background(), DynamoDBOptions{Endpoint: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("expected default region, got %s", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" {
		t.Fatalf("expected local static credentials, got %s", creds.AccessKeyID)
	}
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), DynamoDBOptions{Region: "sa-east-1", Endpoint: "http://localhost:8000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Options().Region != "sa-east-1" {
		t.Fatalf("unexpected region %s", client.Options().Region)
	}
	if got := client.Options().BaseEndpoint; got == nil || *got != "http://localhost:8000" {
		t.Fatalf("expected base endpoint to be set")
	}
}
