package fanout

import (
	"context"
	"fmt"

	goslack "github.com/slack-go/slack"

	"github.com/incidentfox/incidentfox/pkg/output"
)

// deliverSlack posts the artifact to a Slack channel, threading onto the
// originating message when the destination carries a thread timestamp.
func (s *Service) deliverSlack(ctx context.Context, dest output.Destination, artifact Artifact) error {
	if dest.BotToken == "" {
		return fmt.Errorf("slack destination has no bot token")
	}
	if dest.ChannelID == "" {
		return fmt.Errorf("slack destination has no channel")
	}

	var clientOpts []goslack.Option
	if s.slackAPIURL != "" {
		clientOpts = append(clientOpts, goslack.OptionAPIURL(s.slackAPIURL))
	}
	api := goslack.New(dest.BotToken, clientOpts...)

	blocks := BuildResultBlocks(artifact.Text, artifact.Success)
	opts := []goslack.MsgOption{
		goslack.MsgOptionBlocks(blocks...),
		goslack.MsgOptionText(truncateForSlack(artifact.Text), false),
	}
	if dest.ThreadTS != "" {
		opts = append(opts, goslack.MsgOptionTS(dest.ThreadTS))
	}

	if _, _, err := api.PostMessageContext(ctx, dest.ChannelID, opts...); err != nil {
		return fmt.Errorf("chat.postMessage failed: %w", err)
	}
	return nil
}
