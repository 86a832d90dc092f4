// Package event defines what is pushed to live connections.
// Every event is framed as {"type": <tag>, "data": <payload>}.
package event

import (
	"encoding/json"

	"chat-app/domain/chat"
)

type Type string

const (
	ChatCreatedType        Type = "chatCreated"
	NewOrEditedMessageType Type = "newOrEditedMessage"
	PresenceChangedType    Type = "presenceChanged"
	TypingChangedType      Type = "typingChanged"
	MessageReadType        Type = "messageRead"
	MessageDeletedType     Type = "messageDeleted"
	ChatDeletedType        Type = "chatDeleted"
)

// StartFrame is the sentinel written first on every live connection.
const StartFrame = `"start"`

type DomainEvent interface {
	EventType() Type
}

// ChatCreated carries the new chat without any key material.
type ChatCreated struct {
	Chat chat.Chat `json:"chat"`
}

// NewOrEditedMessage carries the plaintext message. Index is set on edits
// so a client can locate the message without a resync.
type NewOrEditedMessage struct {
	ChatID  chat.ChatID  `json:"chatId"`
	Message chat.Message `json:"message"`
	Index   *int         `json:"index,omitempty"`
}

type PresenceChanged struct {
	Login  string `json:"login"`
	Online bool   `json:"online"`
}

type TypingChanged struct {
	Login  string      `json:"login"`
	ChatID chat.ChatID `json:"chatId"`
	Typing bool        `json:"typing"`
}

type MessageRead struct {
	ChatID    chat.ChatID `json:"chatId"`
	MessageID string      `json:"id"`
}

// MessageDeleted tells clients whether the message was still unread so they
// can fix their own badge when the server did not.
type MessageDeleted struct {
	ChatID    chat.ChatID `json:"chatId"`
	MessageID string      `json:"id"`
	Read      bool        `json:"read"`
}

type ChatDeleted struct {
	ChatID chat.ChatID `json:"chatId"`
}

func (ChatCreated) EventType() Type        { return ChatCreatedType }
func (NewOrEditedMessage) EventType() Type { return NewOrEditedMessageType }
func (PresenceChanged) EventType() Type    { return PresenceChangedType }
func (TypingChanged) EventType() Type      { return TypingChangedType }
func (MessageRead) EventType() Type        { return MessageReadType }
func (MessageDeleted) EventType() Type     { return MessageDeletedType }
func (ChatDeleted) EventType() Type        { return ChatDeletedType }

type envelope struct {
	Type Type        `json:"type"`
	Data DomainEvent `json:"data"`
}

// Encode serializes an event as its JSON envelope.
func Encode(e DomainEvent) ([]byte, error) {
	return json.Marshal(envelope{Type: e.EventType(), Data: e})
}
