package notifications

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSSMSChannel sends notification texts through Amazon SNS.
type SNSSMSChannel struct {
	client *sns.Client
}

// NewSNSSMSChannel creates the SNS channel.
func NewSNSSMSChannel(cfg aws.Config) *SNSSMSChannel {
	return &SNSSMSChannel{client: sns.NewFromConfig(cfg)}
}

func (c *SNSSMSChannel) Send(ctx context.Context, phoneNumber, message string) error {
	_, err := c.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("failed to send sms to %s: %w", phoneNumber, err)
	}
	return nil
}
