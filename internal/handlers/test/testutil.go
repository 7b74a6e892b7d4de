package test

import (
	"strings"
	"testing"

	"github.com/diegoclair/forecast-bot/internal/handlers"
	"github.com/diegoclair/forecast-bot/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type ServiceMocks struct {
	ProfileServiceMock *mocks.MockProfileService
	SinkMock           *mocks.MockNotificationSink
	ReporterMock       *mocks.MockOperatorReporter
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.TelegramHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		ProfileServiceMock: mocks.NewMockProfileService(ctrl),
		SinkMock:           mocks.NewMockNotificationSink(ctrl),
		ReporterMock:       mocks.NewMockOperatorReporter(ctrl),
	}

	handler = handlers.New(m.ProfileServiceMock, m.SinkMock, m.ReporterMock, zaptest.NewLogger(t))

	return
}

// NewCommandUpdate builds a private chat message update as Telegram delivers it for
// text such as "/location Berlin"
func NewCommandUpdate(userID int64, messageID int, text string) tgbotapi.Update {
	msg := &tgbotapi.Message{
		MessageID: messageID,
		From:      &tgbotapi.User{ID: userID, UserName: "ada", FirstName: "Ada", LastName: "Lovelace"},
		Chat:      &tgbotapi.Chat{ID: userID, Type: "private"},
		Text:      text,
	}

	if strings.HasPrefix(text, "/") {
		length := len(text)
		if i := strings.IndexByte(text, ' '); i >= 0 {
			length = i
		}
		msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	}

	return tgbotapi.Update{UpdateID: messageID, Message: msg}
}

// NewCallbackUpdate builds an inline button press on the bot message messageID
func NewCallbackUpdate(userID int64, messageID int, data string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: messageID,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: userID, UserName: "ada"},
			Message: &tgbotapi.Message{
				MessageID: messageID,
				Chat:      &tgbotapi.Chat{ID: userID, Type: "private"},
			},
			Data: data,
		},
	}
}
