package notifier

import (
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"stablewatch/internal/entity"
)

// Outcome reports what the chat provider answered.
type Outcome struct {
	OK         bool
	StatusCode int
}

// Telegram sends composed messages to a Telegram chat. The bot client is
// built per delivery so that a bad token or unreachable API surfaces as a
// failed delivery, never as a failed run.
type Telegram struct {
	token  string
	logger *zap.Logger
}

func NewTelegram(token string, logger *zap.Logger) *Telegram {
	return &Telegram{
		token:  token,
		logger: logger,
	}
}

// Deliver sends the message with Markdown rendering and link previews
// disabled. Failures are logged as warnings; the caller is free to ignore
// the outcome.
func (t *Telegram) Deliver(msg entity.Message) Outcome {
	client, err := tgbotapi.NewBotAPI(t.token)
	if err != nil {
		t.logger.Warn("message delivery unsuccessful",
			zap.String("text", msg.Text), zap.Error(err))
		return Outcome{}
	}

	req := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	req.ParseMode = tgbotapi.ModeMarkdown
	req.DisableWebPagePreview = true

	resp, err := client.Request(req)
	if err != nil {
		code := 0
		if resp != nil {
			code = resp.ErrorCode
		}
		t.logger.Warn("message delivery unsuccessful",
			zap.Int("status", code), zap.String("text", msg.Text), zap.Error(err))
		return Outcome{StatusCode: code}
	}

	t.logger.Info("message delivery successful",
		zap.String("text", msg.Text))
	return Outcome{OK: true, StatusCode: http.StatusOK}
}
