package services

import (
	"encoding/json"
	"errors"
	"time"

	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

const (
	NotificationTypeNewApplication    = "new_application"
	NotificationTypeNewMessage        = "new_message"
	NotificationTypeApplicationStatus = "application_status"
	NotificationTypeModeration        = "moderation"
)

type NotificationService interface {
	List(userID string, unreadOnly bool, limit, offset int) (*dto.NotificationListResponse, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error

	// Notify writes a notification for a user. Failures are logged, never
	// surfaced: a lost notification must not fail the primary operation.
	Notify(userID, notifType, title, body string, data map[string]interface{})
}

type NotificationServiceImpl struct {
	notifRepo repositories.NotificationRepository
}

func NewNotificationService(notifRepo repositories.NotificationRepository) NotificationService {
	return &NotificationServiceImpl{notifRepo: notifRepo}
}

func (s *NotificationServiceImpl) List(userID string, unreadOnly bool, limit, offset int) (*dto.NotificationListResponse, error) {
	if limit < 1 {
		limit = 20
	}
	items, err := s.notifRepo.ListByUser(userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	unread, err := s.notifRepo.UnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, 0, len(items)),
		UnreadCount:   unread,
	}
	for i := range items {
		resp.Notifications = append(resp.Notifications, notificationResponse(&items[i]))
	}
	return resp, nil
}

func (s *NotificationServiceImpl) MarkRead(userID, notificationID string) error {
	notif, err := s.notifRepo.FindByID(notificationID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if notif.UserID != userID {
		return apperrors.ErrNotResourceOwner
	}
	if err := s.notifRepo.MarkRead(notificationID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(userID string) error {
	if err := s.notifRepo.MarkAllRead(userID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) Notify(userID, notifType, title, body string, data map[string]interface{}) {
	notif := &models.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: body,
	}
	if data != nil {
		raw, err := json.Marshal(data)
		if err == nil {
			notif.Data = raw
		}
	}
	if err := s.notifRepo.Create(notif); err != nil {
		logger.Warn("notification not delivered", "user_id", userID, "type", notifType, "error", err)
	}
}

func notificationResponse(n *models.Notification) dto.NotificationResponse {
	resp := dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
	if len(n.Data) > 0 {
		var data map[string]any
		if err := json.Unmarshal(n.Data, &data); err == nil {
			resp.Data = data
		}
	}
	return resp
}
