package dto

import "time"

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required" validate:"required,uuid"`
	Body        string `json:"body" binding:"required" validate:"required,min=1,max=4000"`
}

type MessageResponse struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	IsRead      bool      `json:"is_read"`
	SentAt      time.Time `json:"sent_at"`
}

type ConversationResponse struct {
	PartnerID     string    `json:"partner_id"`
	PartnerName   string    `json:"partner_name,omitempty"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int64     `json:"unread_count"`
}

type ConversationListResponse struct {
	Conversations []ConversationResponse `json:"conversations"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
}
