package policy

import (
	"strings"

	"internhub_backend/internal/models"
)

// NotificationBodyLimit is the maximum message excerpt length carried in a
// new-message notification.
const NotificationBodyLimit = 100

// DefaultSenderLabel is used when a candidate's profile yields an empty name.
const DefaultSenderLabel = "A candidate"

// CanSendMessage decides whether a sender may message a counterparty.
// Industries (and any non-candidate role) may start conversations freely.
// Candidates may only reply inside an existing conversation, so the pair must
// already have at least one message between them.
func CanSendMessage(senderRole models.UserRole, conversationExists bool) bool {
	if senderRole != models.UserRoleCandidate {
		return true
	}
	return conversationExists
}

// CandidateDisplayName derives the name shown for a candidate sender:
// trimmed "first last", falling back to a generic label when empty.
func CandidateDisplayName(firstName, lastName string) string {
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name == "" {
		return DefaultSenderLabel
	}
	return name
}

// TruncateNotificationBody shortens a message body for notification delivery.
// Bodies over the limit are cut to the first NotificationBodyLimit characters
// with an ellipsis suffix; shorter bodies are returned verbatim.
func TruncateNotificationBody(body string) string {
	// Counted in runes; a byte cut could split a multibyte character.
	runes := []rune(body)
	if len(runes) <= NotificationBodyLimit {
		return body
	}
	return string(runes[:NotificationBodyLimit]) + "..."
}
