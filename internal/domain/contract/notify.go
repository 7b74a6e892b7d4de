package contract

//go:generate mockgen -source=notify.go -destination=../../../mocks/notify.go -package=mocks

import (
	"context"

	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

// NotificationSink is the outbound messaging channel
type NotificationSink interface {
	Send(ctx context.Context, chatID int64, text string, opts entity.SendOptions) (entity.MessageRef, error)
	EditText(ctx context.Context, chatID int64, messageID int, text string) error
	AnswerInteraction(ctx context.Context, interactionID, text string) error
}

// OperatorReporter forwards unexpected faults to whoever runs the bot
type OperatorReporter interface {
	Report(ctx context.Context, err error, details string)
}
