package notify

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/diegoclair/forecast-bot/mocks"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTelegramSink_Send(t *testing.T) {
	tests := []struct {
		name      string
		opts      entity.SendOptions
		buildMock func(bot *mocks.MockTelegramBot)
		want      entity.MessageRef
		wantErr   bool
	}{
		{
			name: "Should send a plain message",
			buildMock: func(bot *mocks.MockTelegramBot) {
				bot.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
					msg, ok := c.(tgbotapi.MessageConfig)
					require.True(t, ok)
					assert.Equal(t, int64(7), msg.ChatID)
					assert.Equal(t, "hello", msg.Text)
					assert.Zero(t, msg.ReplyToMessageID)
					assert.Nil(t, msg.ReplyMarkup)
					return tgbotapi.Message{MessageID: 11}, nil
				})
			},
			want: entity.MessageRef{ChatID: 7, MessageID: 11, Text: "hello"},
		},
		{
			name: "Should quote and attach one button per row",
			opts: entity.SendOptions{
				ReplyTo: 5,
				Buttons: []entity.Button{{Text: "home"}, {Text: "work", Data: "changeProfile->work"}},
			},
			buildMock: func(bot *mocks.MockTelegramBot) {
				bot.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
					msg := c.(tgbotapi.MessageConfig)
					assert.Equal(t, 5, msg.ReplyToMessageID)

					markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
					require.True(t, ok)
					require.Len(t, markup.InlineKeyboard, 2)
					assert.Equal(t, "home", *markup.InlineKeyboard[0][0].CallbackData)
					assert.Equal(t, "work", markup.InlineKeyboard[1][0].Text)
					assert.Equal(t, "changeProfile->work", *markup.InlineKeyboard[1][0].CallbackData)
					return tgbotapi.Message{MessageID: 12}, nil
				})
			},
			want: entity.MessageRef{ChatID: 7, MessageID: 12, Text: "hello"},
		},
		{
			name: "Should wrap transport errors as delivery faults",
			buildMock: func(bot *mocks.MockTelegramBot) {
				bot.EXPECT().Send(gomock.Any()).Return(tgbotapi.Message{}, errors.New("Forbidden: bot was blocked by the user"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bot := mocks.NewMockTelegramBot(ctrl)
			tt.buildMock(bot)

			got, err := NewTelegramSink(bot).Send(context.Background(), 7, "hello", tt.opts)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrDeliveryFault)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTelegramSink_Send_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewTelegramSink(mocks.NewMockTelegramBot(ctrl)).Send(ctx, 7, "hello", entity.SendOptions{})
	assert.ErrorIs(t, err, domain.ErrDeliveryFault)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTelegramSink_EditText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bot := mocks.NewMockTelegramBot(ctrl)
	bot.EXPECT().Send(gomock.Any()).DoAndReturn(func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
		edit, ok := c.(tgbotapi.EditMessageTextConfig)
		require.True(t, ok)
		assert.Equal(t, int64(7), edit.ChatID)
		assert.Equal(t, 11, edit.MessageID)
		assert.Equal(t, "Creating... Done.", edit.Text)
		return tgbotapi.Message{}, nil
	})

	require.NoError(t, NewTelegramSink(bot).EditText(context.Background(), 7, 11, "Creating... Done."))
}

func TestTelegramSink_AnswerInteraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	bot := mocks.NewMockTelegramBot(ctrl)
	bot.EXPECT().Request(tgbotapi.NewCallback("cb-1", "")).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	bot.EXPECT().Request(gomock.Any()).Return(nil, errors.New("query is too old"))

	sink := NewTelegramSink(bot)
	require.NoError(t, sink.AnswerInteraction(context.Background(), "cb-1", ""))
	assert.ErrorIs(t, sink.AnswerInteraction(context.Background(), "cb-2", ""), domain.ErrDeliveryFault)
}

func TestTelegramSink_Send_HungEndpoint(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/getMe") {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"Forecast","username":"forecast_bot"}}`))
			return
		}
		// sendMessage never answers
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	bot, err := NewBot("123:abc", srv.URL+"/bot%s/%s", 200*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, "forecast_bot", bot.Self.UserName)

	sink := NewTelegramSink(bot)

	done := make(chan error, 1)
	go func() {
		_, err := sink.Send(context.Background(), 7, "hello", entity.SendOptions{})
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, domain.ErrDeliveryFault)
	case <-time.After(5 * time.Second):
		t.Fatal("send did not time out")
	}
}

func TestNewBot_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer srv.Close()

	bot, err := NewBot("bad", srv.URL+"/bot%s/%s", time.Second)
	assert.Error(t, err)
	assert.Nil(t, bot)
}
