package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
)

const (
	defaultTelegramURL = "https://api.telegram.org"
	// telegram rejects longer messages
	maxMessageLength = 4096
)

type Telegram struct {
	client   *req.Client
	apiToken string
}

func NewTelegram(
	apiToken string,
	cl *req.Client,
) *Telegram {
	return &Telegram{
		client:   cl,
		apiToken: apiToken,
	}
}

func (t *Telegram) SendMessage(
	ctx context.Context,
	chatID int64,
	text string,
) error {
	if len(text) > maxMessageLength {
		text = strings.ToValidUTF8(text[:maxMessageLength-3], "") + "..."
	}

	resp, err := t.client.R().
		SetBody(map[string]interface{}{
			"chat_id": chatID,
			"text":    text,
		}).
		SetContext(ctx).
		Post(fmt.Sprintf("%s/bot%v/sendMessage", defaultTelegramURL, t.apiToken))

	if err != nil {
		return errors.Newf("failed to send telegram message: %s",
			strings.ReplaceAll(err.Error(), t.apiToken, "***"))
	}

	if resp.IsErrorState() {
		return errors.Newf("unexpected status code: %v and message %v", resp.StatusCode, resp.String())
	}

	return nil
}
