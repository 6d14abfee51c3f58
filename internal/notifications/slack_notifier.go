package notifications

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/slack-go/slack"
)

type SlackNotifier struct {
	client  *slack.Client
	channel string
	timeout time.Duration
}

// NewSlackNotifier posts to chat.postMessage under apiURL with a bearer token.
// Each call is bounded by timeout.
func NewSlackNotifier(apiURL, token, channel string, timeout time.Duration) *SlackNotifier {
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	client := slack.New(
		token,
		slack.OptionAPIURL(apiURL),
		slack.OptionHTTPClient(&http.Client{Timeout: timeout}),
	)

	return &SlackNotifier{
		client:  client,
		channel: channel,
		timeout: timeout,
	}
}

func (n *SlackNotifier) Notify(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	_, _, err := n.client.PostMessageContext(
		ctx,
		n.channel,
		slack.MsgOptionText(message, false),
	)
	if err != nil {
		return fmt.Errorf("slack post to %s: %w", n.channel, err)
	}

	return nil
}
