// Package notify sends case confirmation emails through AWS SES v2.
package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	appconfig "github.com/ignite/caseflow/internal/config"
	"github.com/ignite/caseflow/internal/domain"
)

// SESAPI is the slice of the SES v2 client used by the sender. Tests
// substitute a recording fake.
type SESAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Sender sends intake confirmation emails. Delivery failures are
// logged and reported to the caller, but intake itself never blocks on
// or fails because of a notification.
type Sender struct {
	client      SESAPI
	fromAddress string
	fromName    string
}

// NewSender creates an SES-backed confirmation sender.
func NewSender(ctx context.Context, cfg appconfig.NotifyConfig) (*Sender, error) {
	creds := credentials.NewStaticCredentialsProvider(
		cfg.AccessKey,
		cfg.SecretKey,
		"", // session token (empty for static creds)
	)

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Sender{
		client:      sesv2.NewFromConfig(awsCfg),
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}, nil
}

// NewSenderWithClient creates a Sender on an existing SES client.
func NewSenderWithClient(client SESAPI, fromAddress, fromName string) *Sender {
	return &Sender{client: client, fromAddress: fromAddress, fromName: fromName}
}

// SendCaseReceived emails the submitter that their case was recorded.
func (s *Sender) SendCaseReceived(ctx context.Context, c *domain.Case) error {
	from := s.fromAddress
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)
	}

	subject := fmt.Sprintf("Case %s received", c.Reference)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour case %s has been received and is awaiting review.\n\nCategory: %s\nSummary: %s\n\nYou will be notified when its status changes.\n",
		c.SubmitterName, c.Reference, c.Category, c.Summary)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{c.SubmitterEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		log.Printf("[notify] confirmation for case %s failed: %v", c.Reference, err)
		return fmt.Errorf("send confirmation: %w", err)
	}
	return nil
}
