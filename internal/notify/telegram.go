package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NewBot connects to the Bot API at endpoint with every request bounded by timeout
func NewBot(token, endpoint string, timeout time.Duration) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	bot.Debug = false
	return bot, nil
}

// TelegramSink delivers messages through the Telegram Bot API
type TelegramSink struct {
	bot contract.TelegramBot
}

func NewTelegramSink(bot contract.TelegramBot) *TelegramSink {
	return &TelegramSink{bot: bot}
}

func (s *TelegramSink) Send(ctx context.Context, chatID int64, text string, opts entity.SendOptions) (entity.MessageRef, error) {
	if err := ctx.Err(); err != nil {
		return entity.MessageRef{}, fmt.Errorf("%w: %w", domain.ErrDeliveryFault, err)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if opts.ReplyTo != 0 {
		msg.ReplyToMessageID = opts.ReplyTo
	}
	if len(opts.Buttons) > 0 {
		msg.ReplyMarkup = inlineKeyboard(opts.Buttons)
	}

	sent, err := s.bot.Send(msg)
	if err != nil {
		return entity.MessageRef{}, fmt.Errorf("%w: failed to send message to chat %d: %w", domain.ErrDeliveryFault, chatID, err)
	}

	return entity.MessageRef{ChatID: chatID, MessageID: sent.MessageID, Text: text}, nil
}

func (s *TelegramSink) EditText(ctx context.Context, chatID int64, messageID int, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFault, err)
	}

	if _, err := s.bot.Send(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		return fmt.Errorf("%w: failed to edit message %d in chat %d: %w", domain.ErrDeliveryFault, messageID, chatID, err)
	}
	return nil
}

// AnswerInteraction acknowledges an inline button press, optionally with a toast
func (s *TelegramSink) AnswerInteraction(ctx context.Context, interactionID, text string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDeliveryFault, err)
	}

	if _, err := s.bot.Request(tgbotapi.NewCallback(interactionID, text)); err != nil {
		return fmt.Errorf("%w: failed to answer callback %s: %w", domain.ErrDeliveryFault, interactionID, err)
	}
	return nil
}

// one button per row
func inlineKeyboard(buttons []entity.Button) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		data := b.Data
		if data == "" {
			data = b.Text
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.Text, data)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
