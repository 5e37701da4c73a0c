package publish

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"jobpulse/internal/model"
)

// Ensure TelegramPublisher implements model.Publisher.
var _ model.Publisher = (*TelegramPublisher)(nil)

// TelegramPublisher posts jobs to a Telegram channel.
// The channel may be given as a numeric chat ID or an @username.
type TelegramPublisher struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	username string // set instead of chatID for @channel destinations
	pause    time.Duration
	lastSent time.Time
	logger   *slog.Logger
}

// NewTelegramPublisher authenticates the bot and resolves the channel
// identifier. pause is the minimum gap between consecutive posts.
func NewTelegramPublisher(token, channel string, pause time.Duration, logger *slog.Logger) (*TelegramPublisher, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	p := &TelegramPublisher{bot: bot, pause: pause, logger: logger}
	if strings.HasPrefix(channel, "@") {
		p.username = channel
	} else {
		id, err := strconv.ParseInt(channel, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("telegram channel %q is neither an @username nor a chat ID", channel)
		}
		p.chatID = id
	}

	return p, nil
}

// Publish renders the job and sends it to the channel. Failures are wrapped
// in *model.PublishError so the pipeline can tell retryable from permanent.
func (p *TelegramPublisher) Publish(job model.Job) error {
	// Pace consecutive posts so the channel is not flooded in a burst.
	if p.pause > 0 && !p.lastSent.IsZero() {
		if elapsed := time.Since(p.lastSent); elapsed < p.pause {
			time.Sleep(p.pause - elapsed)
		}
	}

	msg := p.newMessage(Render(job))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := p.bot.Send(msg); err != nil {
		return p.classifyError(err)
	}

	p.lastSent = time.Now()
	p.logger.Info("published job",
		"title", job.Title,
		"company", job.Company,
		"level", job.Level,
		"source", job.Source,
	)
	return nil
}

func (p *TelegramPublisher) newMessage(text string) tgbotapi.MessageConfig {
	if p.username != "" {
		return tgbotapi.NewMessageToChannel(p.username, text)
	}
	return tgbotapi.NewMessage(p.chatID, text)
}

// classifyError maps Telegram API failures onto the retryable/permanent split.
// 429 and 5xx are transient; 400/403 (bad channel, bot kicked) are permanent.
// Transport-level errors are treated as transient.
func (p *TelegramPublisher) classifyError(err error) error {
	var tgErr *tgbotapi.Error
	if errors.As(err, &tgErr) {
		retryable := tgErr.Code == 429 || tgErr.Code >= 500
		return &model.PublishError{Retryable: retryable, Err: err}
	}
	return &model.PublishError{Retryable: true, Err: err}
}

// SendTestMessage posts a dummy job through the given publisher to verify the
// channel wiring end to end.
func SendTestMessage(p model.Publisher) error {
	now := time.Now()
	testJob := model.Job{
		Fingerprint: "test-001",
		Title:       "Test Posting — Integration Verified",
		Company:     "jobpulse",
		Location:    "Remote",
		Skills:      []string{"Go"},
		URL:         "https://example.com/jobs/test",
		Source:      "test",
		Level:       model.LevelJunior,
		PostedAt:    &now,
	}
	return p.Publish(testJob)
}
