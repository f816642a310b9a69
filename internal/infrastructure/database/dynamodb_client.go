package database

import (
	"context"
	"strings"

	"quotedesk/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client for the quote table.
//
// Local development points DYNAMODB_ENDPOINT at dynamodb-local
// (e.g. http://dynamodb:8000); credentials then only need to be non-empty.
func ConnectDynamoDB(ctx context.Context, cfg config.AWSConfig) (*dynamodb.Client, error) {
	awsCfg, err := NewAWSConfig(ctx, cfg, cfg.Region)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(cfg.DynamoDBEndpoint)
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// NewAWSConfig builds an aws.Config for region using static credentials
// from cfg, shared by the DynamoDB and SES clients.
func NewAWSConfig(ctx context.Context, cfg config.AWSConfig, region string) (aws.Config, error) {
	if region == "" {
		region = cfg.Region
	}
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(creds),
	)
}
