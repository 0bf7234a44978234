package main

import (
	"context"
	"fmt"

	"feedindia/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/kelseyhightower/envconfig"
)

func loadConfig(prefix string) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.AuthEnabled && (c.CognitoClientID == "" || c.CognitoIssuer() == "") {
		return nil, fmt.Errorf("set COGNITO_CLIENT_ID and either COGNITO_ISSUER_URL or COGNITO_USER_POOL_ID when AUTH_ENABLED is true")
	}

	return c, nil
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}
