package services

import (
	"chat-app/cipher"
	"chat-app/contract"
	"chat-app/domain/chat"
	"chat-app/domain/event"
	"chat-app/errors"
	"chat-app/moderation"
	"chat-app/store"
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type IChatService interface {
	UpsertProfile(profile chat.Profile) error

	CreateChat(ctx context.Context, cmd chat.CreateChatCommand) (chat.Chat, error)
	SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error)
	MarkRead(ctx context.Context, cmd chat.MessageRefCommand) error
	DeleteMessage(ctx context.Context, cmd chat.MessageRefCommand) (event.MessageDeleted, error)
	GetChat(chatID chat.ChatID) (chat.Chat, error)
	LastMessage(chatID chat.ChatID) (chat.LastMessage, error)
	LastMessages(login string) ([]chat.Preview, error)
	ChatExists(first, second string) (chat.ChatID, bool)

	Attach(login string, sink contract.EventSink) error
	Detach(login string, sink contract.EventSink)
	SetOnline(ctx context.Context, login string, online bool) error
	IsOnline(login string) (bool, error)
	SetTyping(ctx context.Context, login string, chatID chat.ChatID) error
	ResetTyping(ctx context.Context, login string) error
	IsTyping(login string) (bool, error)
	SetCurrentChat(ctx context.Context, login string, chatID chat.ChatID) error
	ClearCurrentChat(ctx context.Context, login string) error
	CurrentChat(login string) (*chat.ChatID, error)

	Counters(login string) ([]chat.Counter, error)
	IncrementCounter(login string, chatID chat.ChatID) ([]chat.Counter, error)
	SetCounter(login string, chatID chat.ChatID, number int) ([]chat.Counter, error)
	ResetCounter(login string, chatID chat.ChatID) ([]chat.Counter, error)
}

// ChatService owns every chat operation.
//
// A single mutex serializes all of them, reads included, so a counter update
// can never interleave with the message list it is derived from. Events are
// pushed under the same lock once the mutation succeeded, which keeps the
// per-connection order equal to the order of operations.
type ChatService struct {
	mu          sync.Mutex
	log         *slog.Logger
	validate    *validator.Validate
	tables      store.Tables
	directory   contract.IUserDirectory
	presence    contract.IPresenceHub
	broadcaster contract.IBroadcaster
	snapshots   contract.ISnapshotScheduler
	moderator   *moderation.Moderator
}

var _ IChatService = (*ChatService)(nil)

// NewChatService wires the service. moderator may be nil to disable censoring.
func NewChatService(
	log *slog.Logger,
	tables store.Tables,
	presence contract.IPresenceHub,
	broadcaster contract.IBroadcaster,
	snapshots contract.ISnapshotScheduler,
	moderator *moderation.Moderator,
) *ChatService {
	return &ChatService{
		log:         log,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		tables:      tables,
		directory:   tables.Users,
		presence:    presence,
		broadcaster: broadcaster,
		snapshots:   snapshots,
		moderator:   moderator,
	}
}

// UpsertProfile stands in for the profile collaborator: the chat core only
// needs users to exist and to expose their display info.
func (s *ChatService) UpsertProfile(profile chat.Profile) error {
	if err := s.validate.Struct(profile); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables.Users.Upsert(profile)
	s.snapshots.Schedule(contract.DataSnapshot)
	return nil
}

// CreateChat registers a chat between known users, generates its key and
// gives every participant a zero counter.
func (s *ChatService) CreateChat(ctx context.Context, cmd chat.CreateChatCommand) (chat.Chat, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return chat.Chat{}, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, login := range cmd.Users {
		if !s.directory.Exists(login) {
			return chat.Chat{}, fmt.Errorf("%s: %w", login, errors.ErrUserNotFound)
		}
	}

	key, err := cipher.GenerateKey()
	if err != nil {
		return chat.Chat{}, err
	}
	created, err := s.tables.Chats.Create(cmd.ID, cmd.Users, key)
	if err != nil {
		return chat.Chat{}, err
	}
	for _, login := range created.Users {
		s.tables.Counters.Init(login, created.ID)
	}
	s.snapshots.Schedule(contract.DataSnapshot, contract.KeySnapshot)

	s.log.Info("Chat created", "chat_id", created.ID, "users", created.Users)
	s.broadcaster.PushTo(detached(ctx), created.Users, event.ChatCreated{Chat: created})
	return created, nil
}

// SendMessage encrypts and stores a message. An existing id is an edit: it
// keeps the read flag, leaves counters alone and the event carries its index.
// The returned message holds the plaintext.
func (s *ChatService) SendMessage(ctx context.Context, cmd chat.SendMessageCommand) (chat.Message, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return chat.Message{}, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.tables.Chats.Get(cmd.ChatID)
	if err != nil {
		return chat.Message{}, err
	}
	if !c.HasUser(cmd.Login) {
		return chat.Message{}, fmt.Errorf("%w: %s is not a participant of %s", errors.ErrInvalidPayload, cmd.Login, c.ID)
	}
	if index := c.IndexOf(cmd.ID); index >= 0 && c.Messages[index].Login != cmd.Login {
		return chat.Message{}, fmt.Errorf("%w: message %s belongs to %s", errors.ErrInvalidPayload, cmd.ID, c.Messages[index].Login)
	}

	key, err := s.tables.Chats.Key(c.ID)
	if err != nil {
		return chat.Message{}, err
	}

	text := cmd.Text
	if s.moderator != nil {
		text = s.moderator.Moderate(cmd.Login, text)
	}
	sealed, err := cipher.Encrypt(text, key)
	if err != nil {
		return chat.Message{}, err
	}

	stored, index, edited, err := s.tables.Chats.AppendOrReplace(c.ID, chat.Message{
		ID:       cmd.ID,
		Login:    cmd.Login,
		Text:     sealed,
		Metadata: cmd.Metadata,
	})
	if err != nil {
		return chat.Message{}, err
	}
	s.snapshots.Schedule(contract.DataSnapshot)

	stored.Text = text
	evt := event.NewOrEditedMessage{ChatID: c.ID, Message: stored}
	if edited {
		evt.Index = lo.ToPtr(index)
	}
	s.broadcaster.PushTo(detached(ctx), c.Users, evt)
	return stored, nil
}

// MarkRead flags a message as read and tells every participant, the reader
// included, so all open views reconcile.
func (s *ChatService) MarkRead(ctx context.Context, cmd chat.MessageRefCommand) error {
	if err := s.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.tables.Chats.Get(cmd.ChatID)
	if err != nil {
		return err
	}
	if err := s.tables.Chats.MarkRead(c.ID, cmd.MessageID); err != nil {
		return err
	}
	s.snapshots.Schedule(contract.DataSnapshot)

	s.broadcaster.PushTo(detached(ctx), c.Users, event.MessageRead{ChatID: c.ID, MessageID: cmd.MessageID})
	return nil
}

// DeleteMessage removes a message. When it was still unread, each participant
// other than its author who is not viewing the chat loses one unread count.
func (s *ChatService) DeleteMessage(ctx context.Context, cmd chat.MessageRefCommand) (event.MessageDeleted, error) {
	if err := s.validate.Struct(cmd); err != nil {
		return event.MessageDeleted{}, fmt.Errorf("%w: %w", errors.ErrInvalidPayload, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.tables.Chats.Get(cmd.ChatID)
	if err != nil {
		return event.MessageDeleted{}, err
	}
	removed, err := s.tables.Chats.DeleteMessage(c.ID, cmd.MessageID)
	if err != nil {
		return event.MessageDeleted{}, err
	}

	if !removed.Read {
		for _, login := range c.Others(removed.Login) {
			if current, ok := s.presence.CurrentChat(login); ok && current == c.ID {
				continue
			}
			if err := s.tables.Counters.Decrement(login, c.ID); err != nil {
				s.log.Warn("Counter missing on message deletion",
					"login", login, "chat_id", c.ID, "error", err)
			}
		}
	}
	s.snapshots.Schedule(contract.DataSnapshot)

	evt := event.MessageDeleted{ChatID: c.ID, MessageID: removed.ID, Read: removed.Read}
	s.broadcaster.PushTo(detached(ctx), c.Users, evt)
	return evt, nil
}

// GetChat returns the chat with every message decrypted.
func (s *ChatService) GetChat(chatID chat.ChatID) (chat.Chat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.tables.Chats.Get(chatID)
	if err != nil {
		return chat.Chat{}, err
	}
	key, err := s.tables.Chats.Key(chatID)
	if err != nil {
		return chat.Chat{}, err
	}
	for i := range c.Messages {
		if c.Messages[i].Text, err = cipher.Decrypt(c.Messages[i].Text, key); err != nil {
			return chat.Chat{}, fmt.Errorf("message %s of chat %s: %w", c.Messages[i].ID, chatID, err)
		}
	}
	return c, nil
}

func (s *ChatService) LastMessage(chatID chat.ChatID) (chat.LastMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last, ok, err := s.lastMessage(chatID)
	if err != nil {
		return chat.LastMessage{}, err
	}
	if !ok {
		return chat.LastMessage{ChatID: chatID}, nil
	}
	return chat.LastMessage{
		ChatID:   chatID,
		ID:       last.ID,
		Login:    last.Login,
		Text:     last.Text,
		Read:     last.Read,
		Metadata: last.Metadata,
	}, nil
}

// LastMessages lists the two-party chats of login, each with the peer's
// display info and the decrypted last message, in counter order.
func (s *ChatService) LastMessages(login string) ([]chat.Preview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.directory.Exists(login) {
		return nil, fmt.Errorf("%s: %w", login, errors.ErrUserNotFound)
	}

	previews := make([]chat.Preview, 0)
	for _, chatID := range s.tables.Counters.ChatIDs(login) {
		c, err := s.tables.Chats.Get(chatID)
		if err != nil {
			s.log.Warn("Counter without chat", "login", login, "chat_id", chatID)
			continue
		}
		others := c.Others(login)
		if len(others) != 1 {
			continue
		}
		info, err := s.directory.DisplayInfo(others[0])
		if err != nil {
			s.log.Debug("Peer without profile", "login", others[0], "error", err)
		}
		preview := chat.Preview{ChatID: chatID, DisplayInfo: info}
		last, ok, err := s.lastMessage(chatID)
		if err != nil {
			return nil, err
		}
		if ok {
			preview.LastMessage = &last
		}
		previews = append(previews, preview)
	}
	return previews, nil
}

// ChatExists finds a chat shared by two users.
func (s *ChatService) ChatExists(first, second string) (chat.ChatID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tables.Chats.FindBetween(first, second)
}

func (s *ChatService) lastMessage(chatID chat.ChatID) (chat.Message, bool, error) {
	c, err := s.tables.Chats.Get(chatID)
	if err != nil {
		return chat.Message{}, false, err
	}
	last, ok := c.LastMessage()
	if !ok {
		return chat.Message{}, false, nil
	}
	key, err := s.tables.Chats.Key(chatID)
	if err != nil {
		return chat.Message{}, false, err
	}
	if last.Text, err = cipher.Decrypt(last.Text, key); err != nil {
		return chat.Message{}, false, fmt.Errorf("message %s of chat %s: %w", last.ID, chatID, err)
	}
	return last, true, nil
}

// detached keeps request values but drops its cancellation: a caller hanging
// up must not make deliveries to other users fail.
func detached(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
