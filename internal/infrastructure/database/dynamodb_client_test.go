package database

import (
	"context"
	"testing"

	"wrapcommand/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

func TestNewAWSConfig_LocalEndpoints(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), config.AWSConfig{
		Region:           "us-west-2",
		AccessKeyID:      "local",
		SecretAccessKey:  "local",
		DynamoDBEndpoint: "http://dynamodb:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-west-2" {
		t.Fatalf("expected region us-west-2, got %s", cfg.Region)
	}

	ep, err := cfg.EndpointResolverWithOptions.ResolveEndpoint(dynamodb.ServiceID, "us-west-2")
	if err != nil || ep.URL != "http://dynamodb:8000" {
		t.Fatalf("unexpected dynamodb endpoint %+v err=%v", ep, err)
	}
	if _, err := cfg.EndpointResolverWithOptions.ResolveEndpoint(ses.ServiceID, "us-west-2"); err == nil {
		t.Fatalf("expected ses to fall through to default resolution")
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil || creds.AccessKeyID != "local" {
		t.Fatalf("unexpected credentials %+v err=%v", creds, err)
	}
}

func TestConnectDynamoDB(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), config.AWSConfig{Region: "us-east-1", AccessKeyID: "x", SecretAccessKey: "y"})
	if err != nil || client == nil {
		t.Fatalf("expected client, got %v", err)
	}
}
