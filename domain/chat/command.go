package chat

import (
	"encoding/json"
)

type CreateChatCommand struct {
	ID    ChatID   `json:"id" validate:"required"`
	Users []string `json:"users" validate:"min=2,unique,dive,required"`
}

// SendMessageCommand creates a message, or edits it when ID already exists in the chat.
type SendMessageCommand struct {
	ChatID   ChatID          `json:"chatId" validate:"required"`
	ID       string          `json:"id" validate:"required"`
	Login    string          `json:"login" validate:"required"`
	Text     string          `json:"text"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

type MessageRefCommand struct {
	ChatID    ChatID `validate:"required"`
	MessageID string `validate:"required"`
}
