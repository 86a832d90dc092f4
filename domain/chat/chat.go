// Package chat contains the core concepts of the messaging system.
// No runtime, network, or storage logic should be added here.
package chat

import (
	"encoding/json"
	"slices"

	"github.com/samber/lo"
)

type ChatID string

// Message is one entry of a chat. Text holds the sealed form at rest
// and the plaintext only inside request and event payloads.
type Message struct {
	ID       string          `json:"id"`
	Login    string          `json:"login"`
	Text     string          `json:"text"`
	Read     bool            `json:"read"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// Chat is a conversation between a fixed set of users.
// Messages are kept in insertion order, which is chronological order.
type Chat struct {
	ID       ChatID    `json:"id"`
	Users    []string  `json:"users"`
	Messages []Message `json:"messages"`
}

func (c Chat) HasUser(login string) bool {
	return slices.Contains(c.Users, login)
}

// Others returns every participant except login.
func (c Chat) Others(login string) []string {
	return lo.Filter(c.Users, func(user string, _ int) bool { return user != login })
}

// IndexOf returns the position of a message, or -1.
func (c Chat) IndexOf(messageID string) int {
	return slices.IndexFunc(c.Messages, func(m Message) bool { return m.ID == messageID })
}

// UnreadFrom counts the unread messages not authored by login.
func (c Chat) UnreadFrom(login string) int {
	return lo.CountBy(c.Messages, func(m Message) bool { return m.Login != login && !m.Read })
}

func (c Chat) LastMessage() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

// Clone returns a deep copy safe to hand outside of a store lock.
func (c Chat) Clone() Chat {
	return Chat{
		ID:       c.ID,
		Users:    slices.Clone(c.Users),
		Messages: lo.Map(c.Messages, func(m Message, _ int) Message { return m.clone() }),
	}
}

func (m Message) clone() Message {
	m.Metadata = slices.Clone(m.Metadata)
	return m
}

// ChatKey is the symmetric key of a chat, stored apart from the chat itself.
type ChatKey struct {
	ID  ChatID `json:"id"`
	Key string `json:"key"`
}

// Counter is the number of messages a user missed in a chat.
type Counter struct {
	ChatID ChatID `json:"id"`
	Number int    `json:"number"`
}

// Profile is the durable part of a user owned by the profile collaborator.
type Profile struct {
	Login    string `json:"login" validate:"required"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Age      int    `json:"age,omitempty"`
	Location string `json:"location,omitempty"`
	Info     string `json:"info,omitempty"`
	Image    string `json:"image,omitempty"`
}

type DisplayInfo struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Image   string `json:"image"`
}

func (p Profile) DisplayInfo() DisplayInfo {
	return DisplayInfo{Name: p.Name, Surname: p.Surname, Image: p.Image}
}

// LastMessage is the decrypted tail of a chat. An empty chat yields
// only the chat id and an empty text.
type LastMessage struct {
	ChatID   ChatID          `json:"chatId"`
	ID       string          `json:"id,omitempty"`
	Login    string          `json:"login,omitempty"`
	Text     string          `json:"text"`
	Read     bool            `json:"read"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// Preview is a sidebar entry of a two-party chat seen by one of its users.
type Preview struct {
	ChatID ChatID `json:"chatId"`
	DisplayInfo
	LastMessage *Message `json:"lastMessage,omitempty"`
}
