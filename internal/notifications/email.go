package notifications

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// SESEmailChannel sends notification emails through Amazon SESv2.
type SESEmailChannel struct {
	client *sesv2.Client
	sender string
}

// NewSESEmailChannel creates the SES channel. sender is the verified
// from-address.
func NewSESEmailChannel(cfg aws.Config, sender string) *SESEmailChannel {
	return &SESEmailChannel{
		client: sesv2.NewFromConfig(cfg),
		sender: sender,
	}
}

func (c *SESEmailChannel) Send(ctx context.Context, to, subject, body string) error {
	_, err := c.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(c.sender),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}
