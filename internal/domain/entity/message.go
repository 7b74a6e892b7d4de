package entity

// Button is an inline keyboard button. Data defaults to Text when empty.
type Button struct {
	Text string
	Data string
}

// SendOptions tunes an outgoing message
type SendOptions struct {
	ReplyTo int
	// Buttons are rendered one per row
	Buttons []Button
}

// MessageRef points to a message that has been sent
type MessageRef struct {
	ChatID    int64
	MessageID int
	Text      string
}
