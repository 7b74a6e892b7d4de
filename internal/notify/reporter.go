package notify

import (
	"context"
	"fmt"

	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// Telegram rejects longer messages
const maxReportRunes = 4000

// TelegramReporter posts fault reports to an operator chat
type TelegramReporter struct {
	bot    contract.TelegramBot
	chatID int64
	log    *zap.Logger
}

func NewTelegramReporter(bot contract.TelegramBot, chatID int64, log *zap.Logger) *TelegramReporter {
	return &TelegramReporter{bot: bot, chatID: chatID, log: log.Named("reporter.telegram")}
}

func (r *TelegramReporter) Report(ctx context.Context, err error, details string) {
	if _, sendErr := r.bot.Send(tgbotapi.NewMessage(r.chatID, formatReport(err, details))); sendErr != nil {
		r.log.Error("failed to report fault", zap.Int64("chat_id", r.chatID), zap.Error(sendErr), zap.NamedError("fault", err))
	}
}

// SlackReporter posts fault reports to a Slack channel
type SlackReporter struct {
	client  contract.SlackClient
	channel string
	log     *zap.Logger
}

func NewSlackReporter(client contract.SlackClient, channel string, log *zap.Logger) *SlackReporter {
	return &SlackReporter{client: client, channel: channel, log: log.Named("reporter.slack")}
}

func (r *SlackReporter) Report(ctx context.Context, err error, details string) {
	_, _, postErr := r.client.PostMessageContext(ctx, r.channel,
		slack.MsgOptionText(formatReport(err, details), false),
		slack.MsgOptionAsUser(false),
	)
	if postErr != nil {
		r.log.Error("failed to report fault", zap.String("channel", r.channel), zap.Error(postErr), zap.NamedError("fault", err))
	}
}

// MultiReporter fans a report out to every configured reporter
type MultiReporter []contract.OperatorReporter

func (m MultiReporter) Report(ctx context.Context, err error, details string) {
	for _, r := range m {
		r.Report(ctx, err, details)
	}
}

// LogReporter writes faults to the application log
type LogReporter struct {
	log *zap.Logger
}

func NewLogReporter(log *zap.Logger) *LogReporter {
	return &LogReporter{log: log.Named("reporter")}
}

func (r *LogReporter) Report(_ context.Context, err error, details string) {
	r.log.Warn("fault reported", zap.String("details", details), zap.Error(err))
}

func formatReport(err error, details string) string {
	text := fmt.Sprintf("⚠️ %s\n\n%v", details, err)
	if runes := []rune(text); len(runes) > maxReportRunes {
		text = string(runes[:maxReportRunes]) + "…"
	}
	return text
}
