// Package cognito registers users with an Amazon Cognito user pool.
package cognito

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/gallerykit/gateway/pkg/gallery"
)

// Config options for the Cognito issuer
type Config struct {
	Region   string // AWS region of the user pool
	ClientID string // User pool app client ID
}

// Issuer is a Cognito implementation of the gallery.IdentityIssuer interface.
type Issuer struct {
	client   *cognitoidentityprovider.Client
	clientID string
}

// New creates a new Cognito identity issuer
func New(ctx context.Context, config Config) (*Issuer, error) {
	if config.ClientID == "" {
		return nil, errors.New("user pool client ID is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Issuer{
		client:   cognitoidentityprovider.NewFromConfig(awsCfg),
		clientID: config.ClientID,
	}, nil
}

// SignUp registers a user with the pool, attaching name and email attributes.
func (i *Issuer) SignUp(ctx context.Context, req gallery.SignUpRequest) error {
	_, err := i.client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId: aws.String(i.clientID),
		Username: aws.String(req.Username),
		Password: aws.String(req.Password),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("name"), Value: aws.String(req.Name)},
			{Name: aws.String("email"), Value: aws.String(req.Email)},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to sign up user: %w", err)
	}

	return nil
}
