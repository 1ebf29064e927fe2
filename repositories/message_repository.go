package repositories

import (
	"errors"
	"time"

	"github.com/Krasmol/platform-for-freelancers/models"
	"gorm.io/gorm"
)

type MessageRepo interface {
	Create(message *models.Message) error
	Conversation(userID, otherID uint) ([]models.Message, error)
	MarkConversationRead(senderID, receiverID uint) error
	CounterpartIDs(userID uint) ([]uint, error)
	LastMessage(userID, otherID uint) (*models.Message, error)
	UnreadCountFrom(senderID, receiverID uint) (int64, error)
	CountReceivedSince(userID uint, since time.Time) (int64, error)
}

type DBMessageRepo struct {
	db *gorm.DB
}

func (r *DBMessageRepo) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *DBMessageRepo) Conversation(userID, otherID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("created_at asc").Find(&messages).Error
	return messages, err
}

func (r *DBMessageRepo) MarkConversationRead(senderID, receiverID uint) error {
	return r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = false", senderID, receiverID).
		Update("is_read", true).Error
}

// CounterpartIDs returns the distinct set of users the given user has
// exchanged at least one message with.
func (r *DBMessageRepo) CounterpartIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Raw(
		`SELECT DISTINCT counterpart FROM (
			SELECT receiver_id AS counterpart FROM messages WHERE sender_id = ?
			UNION
			SELECT sender_id AS counterpart FROM messages WHERE receiver_id = ?
		) c WHERE counterpart <> ?`,
		userID, userID, userID,
	).Scan(&ids).Error
	return ids, err
}

func (r *DBMessageRepo) LastMessage(userID, otherID uint) (*models.Message, error) {
	var message models.Message
	err := r.db.Where(
		"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
		userID, otherID, otherID, userID,
	).Order("created_at desc").First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &message, nil
}

func (r *DBMessageRepo) UnreadCountFrom(senderID, receiverID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = false", senderID, receiverID).
		Count(&count).Error
	return count, err
}

func (r *DBMessageRepo) CountReceivedSince(userID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND created_at > ?", userID, since).
		Count(&count).Error
	return count, err
}
