package services

import (
	"errors"
	"time"

	"internhub_backend/internal/models"
	"internhub_backend/internal/policy"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

type ChatService interface {
	SendMessage(senderID string, senderRole models.UserRole, req *dto.SendMessageRequest) (*dto.MessageResponse, error)
	GetConversation(userID, partnerID string, limit, offset int) (*dto.MessageListResponse, error)
	ListConversations(userID string, viewerPremium bool) (*dto.ConversationListResponse, error)
	UnreadCount(userID string) (int64, error)
}

type ChatServiceImpl struct {
	msgRepo     repositories.MessageRepository
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	notifier    NotificationService
}

func NewChatService(
	msgRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	notifier NotificationService,
) ChatService {
	return &ChatServiceImpl{
		msgRepo:     msgRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

// SendMessage delivers a message subject to the initiation policy: industries
// may open conversations, candidates may only reply inside an existing one.
func (s *ChatServiceImpl) SendMessage(senderID string, senderRole models.UserRole, req *dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if senderID == req.RecipientID {
		return nil, apperrors.ErrCannotMessageSelf
	}

	if _, err := s.userRepo.FindByID(req.RecipientID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	exists, err := s.msgRepo.ConversationExists(senderID, req.RecipientID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !policy.CanSendMessage(senderRole, exists) {
		return nil, apperrors.ErrConversationNotEstablished
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: req.RecipientID,
		Content:    req.Body,
		SentAt:     time.Now(),
	}
	if err := s.msgRepo.Create(msg); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notifyRecipient(senderID, senderRole, req.RecipientID, req.Body)

	return messageResponse(msg), nil
}

// notifyRecipient writes the new-message notification: sender shown by
// display name, body truncated to the notification excerpt limit.
func (s *ChatServiceImpl) notifyRecipient(senderID string, senderRole models.UserRole, recipientID, body string) {
	if s.notifier == nil {
		return
	}

	// Notifications carry no viewer identity, so industries that have not
	// opted in stay anonymized regardless of the recipient's plan.
	label := s.senderLabel(senderID, senderRole, false)
	s.notifier.Notify(
		recipientID,
		NotificationTypeNewMessage,
		"New message from "+label,
		policy.TruncateNotificationBody(body),
		map[string]interface{}{"sender_id": senderID},
	)
}

// senderLabel derives the display name for a user as seen by a viewer with
// the given premium status. Industry names go through the disclosure rule.
func (s *ChatServiceImpl) senderLabel(senderID string, senderRole models.UserRole, viewerPremium bool) string {
	switch senderRole {
	case models.UserRoleCandidate:
		profile, err := s.profileRepo.FindCandidateByUserID(senderID)
		if err != nil {
			return policy.DefaultSenderLabel
		}
		return policy.CandidateDisplayName(profile.FirstName, profile.LastName)
	case models.UserRoleIndustry:
		profile, err := s.profileRepo.FindIndustryByUserID(senderID)
		if err != nil {
			return "A company"
		}
		return policy.DiscloseCompanyName(profile.ShowCompanyName, profile.AnonymousID, profile.CompanyName, viewerPremium)
	case models.UserRoleInstitute:
		profile, err := s.profileRepo.FindInstituteByUserID(senderID)
		if err != nil {
			return "An institute"
		}
		return profile.Name
	default:
		return "Platform team"
	}
}

func (s *ChatServiceImpl) GetConversation(userID, partnerID string, limit, offset int) (*dto.MessageListResponse, error) {
	if limit < 1 {
		limit = 50
	}
	items, err := s.msgRepo.ListConversation(userID, partnerID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Fetching the conversation reads it.
	if err := s.msgRepo.MarkConversationRead(userID, partnerID, time.Now()); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MessageListResponse{Messages: make([]dto.MessageResponse, 0, len(items))}
	for i := range items {
		resp.Messages = append(resp.Messages, *messageResponse(&items[i]))
	}
	return resp, nil
}

func (s *ChatServiceImpl) ListConversations(userID string, viewerPremium bool) (*dto.ConversationListResponse, error) {
	partners, err := s.msgRepo.ListPartners(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.ConversationListResponse{Conversations: make([]dto.ConversationResponse, 0, len(partners))}
	for _, p := range partners {
		conv := dto.ConversationResponse{
			PartnerID:     p.PartnerID,
			LastMessageAt: p.LastMessageAt,
			UnreadCount:   p.UnreadCount,
		}
		if partner, err := s.userRepo.FindByID(p.PartnerID); err == nil {
			conv.PartnerName = s.senderLabel(partner.ID, partner.Role, viewerPremium)
		}
		resp.Conversations = append(resp.Conversations, conv)
	}
	return resp, nil
}

func (s *ChatServiceImpl) UnreadCount(userID string) (int64, error) {
	count, err := s.msgRepo.UnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func messageResponse(m *models.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.ReceiverID,
		Body:        m.Content,
		IsRead:      m.IsRead,
		SentAt:      m.SentAt,
	}
}
