package services

import (
	"errors"
	"sort"
	"time"

	"github.com/Krasmol/platform-for-freelancers/dto"
	"github.com/Krasmol/platform-for-freelancers/events"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/Krasmol/platform-for-freelancers/repositories"
	"gorm.io/gorm"
)

var ErrReceiverNotFound = errors.New("receiver not found")

type MessageService struct {
	repos      *repositories.Repos
	dispatcher *NotificationDispatcher
	pub        events.Publisher
}

type Activity struct {
	NewMessages     int64
	NewNotification int64
}

func (s *MessageService) Send(actorID uint, input dto.SendMessageDTO) (models.Message, models.User, error) {
	sender, err := s.repos.User.FindByID(actorID)
	if err != nil {
		return models.Message{}, models.User{}, err
	}

	if _, err := s.repos.User.FindByID(input.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Message{}, models.User{}, ErrReceiverNotFound
		}
		return models.Message{}, models.User{}, err
	}

	message := models.Message{
		SenderID:   actorID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
	}

	var created []models.Notification
	err = s.repos.Atomic(func(tx *repositories.Repos) error {
		if err := tx.Message.Create(&message); err != nil {
			return err
		}
		var err error
		created, err = s.dispatcher.Dispatch(tx, events.MessageSent{Message: message, Sender: sender})
		return err
	})
	if err != nil {
		return models.Message{}, models.User{}, err
	}

	signal(s.pub, created)
	if s.pub != nil {
		s.pub.Publish(input.ReceiverID, "message")
	}
	return message, sender, nil
}

// Chats assembles the chat-list view: one entry per counterpart with the
// latest message and unread count, sorted latest-first. Counterparts whose
// messages are all gone sort last.
func (s *MessageService) Chats(actorID uint) ([]models.Chat, error) {
	ids, err := s.repos.Message.CounterpartIDs(actorID)
	if err != nil {
		return nil, err
	}

	chats := make([]models.Chat, 0, len(ids))
	for _, id := range ids {
		other, err := s.repos.User.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}

		last, err := s.repos.Message.LastMessage(actorID, id)
		if err != nil {
			return nil, err
		}
		unread, err := s.repos.Message.UnreadCountFrom(id, actorID)
		if err != nil {
			return nil, err
		}

		chats = append(chats, models.Chat{User: other, LastMessage: last, UnreadCount: unread})
	}

	sort.SliceStable(chats, func(i, j int) bool {
		a, b := chats[i].LastMessage, chats[j].LastMessage
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return chats, nil
}

// Conversation returns the full history with the counterpart and marks
// their unread messages as read.
func (s *MessageService) Conversation(actorID, otherID uint) ([]models.Message, models.User, error) {
	other, err := s.repos.User.FindByID(otherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.User{}, ErrUserNotFound
		}
		return nil, models.User{}, err
	}

	messages, err := s.repos.Message.Conversation(actorID, otherID)
	if err != nil {
		return nil, models.User{}, err
	}

	if err := s.repos.Message.MarkConversationRead(otherID, actorID); err != nil {
		return nil, models.User{}, err
	}
	return messages, other, nil
}

func (s *MessageService) CheckActivity(actorID uint, since time.Time) (Activity, error) {
	messages, err := s.repos.Message.CountReceivedSince(actorID, since)
	if err != nil {
		return Activity{}, err
	}
	notifications, err := s.repos.Notification.CountSince(actorID, since)
	if err != nil {
		return Activity{}, err
	}
	return Activity{NewMessages: messages, NewNotification: notifications}, nil
}
