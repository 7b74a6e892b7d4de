package contract

//go:generate mockgen -source=telegram.go -destination=../../../mocks/telegram.go -package=mocks

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// TelegramBot is the subset of *tgbotapi.BotAPI the bot relies on
type TelegramBot interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}
