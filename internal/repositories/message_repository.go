package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

// ConversationPartner is a counterparty plus conversation metadata for the
// inbox listing.
type ConversationPartner struct {
	PartnerID     string    `json:"partner_id"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int64     `json:"unread_count"`
}

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id string) (*models.Message, error)

	// ConversationExists reports whether any message links the unordered
	// pair {a, b}, in either direction.
	ConversationExists(a, b string) (bool, error)

	// ListConversation returns the messages between the pair, oldest first.
	ListConversation(a, b string, limit, offset int) ([]models.Message, error)

	// MarkConversationRead flags every unread message sent to reader by
	// partner. Called on the recipient's fetch.
	MarkConversationRead(reader, partner string, at time.Time) error

	ListPartners(userID string) ([]ConversationPartner, error)
	UnreadCount(userID string) (int64, error)
	CountAll() (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	if message.SentAt.IsZero() {
		message.SentAt = time.Now()
	}
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByID(id string) (*models.Message, error) {
	var msg models.Message
	err := r.db.First(&msg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return &msg, nil
}

func (r *MessageRepositoryImpl) ConversationExists(a, b string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, err
}

func (r *MessageRepositoryImpl) ListConversation(a, b string, limit, offset int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("sent_at ASC").Limit(limit).Offset(offset).
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) MarkConversationRead(reader, partner string, at time.Time) error {
	return r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", reader, partner, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": at,
		}).Error
}

func (r *MessageRepositoryImpl) ListPartners(userID string) ([]ConversationPartner, error) {
	// One row per counterparty with the latest message time.
	var partners []ConversationPartner
	err := r.db.Raw(`
		SELECT partner_id, MAX(sent_at) AS last_message_at
		FROM (
			SELECT receiver_id AS partner_id, sent_at FROM messages WHERE sender_id = ?
			UNION ALL
			SELECT sender_id AS partner_id, sent_at FROM messages WHERE receiver_id = ?
		) conv
		GROUP BY partner_id
		ORDER BY last_message_at DESC
	`, userID, userID).Scan(&partners).Error
	if err != nil {
		return nil, err
	}

	for i := range partners {
		var unread int64
		if err := r.db.Model(&models.Message{}).
			Where("receiver_id = ? AND sender_id = ? AND is_read = ?", userID, partners[i].PartnerID, false).
			Count(&unread).Error; err != nil {
			return nil, err
		}
		partners[i].UnreadCount = unread
	}
	return partners, nil
}

func (r *MessageRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("receiver_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *MessageRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}
