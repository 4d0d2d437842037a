package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internhub_backend/internal/models"
	"internhub_backend/internal/policy"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

func chatFixtures(conversationExists bool) (*mockMessageRepo, *mockUserRepo, *mockProfileRepo) {
	msgRepo := &mockMessageRepo{
		conversationExists: func(a, b string) (bool, error) { return conversationExists, nil },
		create: func(msg *models.Message) error {
			msg.ID = "msg-1"
			return nil
		},
	}
	userRepo := &mockUserRepo{
		findByID: func(id string) (*models.User, error) {
			u := &models.User{Role: models.UserRoleIndustry}
			u.ID = id
			return u, nil
		},
	}
	profileRepo := &mockProfileRepo{
		findCandidateByUserID: func(userID string) (*models.CandidateProfile, error) {
			return &models.CandidateProfile{FirstName: "Aigerim", LastName: "Bekova"}, nil
		},
		findIndustryByUserID: func(userID string) (*models.IndustryProfile, error) {
			return industryFixture(), nil
		},
	}
	return msgRepo, userRepo, profileRepo
}

func TestChatService_IndustryMayColdStart(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(false)
	notifier := &recordingNotifier{}
	svc := NewChatService(msgRepo, userRepo, profileRepo, notifier)

	resp, err := svc.SendMessage("industry-user", models.UserRoleIndustry, &dto.SendMessageRequest{
		RecipientID: "candidate-user",
		Body:        "We liked your application",
	})
	require.NoError(t, err)
	assert.Equal(t, "We liked your application", resp.Body)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "candidate-user", notifier.sent[0].UserID)
	assert.Equal(t, NotificationTypeNewMessage, notifier.sent[0].Type)
}

func TestChatService_CandidateCannotColdStart(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(false)
	msgRepo.create = func(*models.Message) error {
		t.Fatal("no message may be stored without an established conversation")
		return nil
	}
	svc := NewChatService(msgRepo, userRepo, profileRepo, &recordingNotifier{})

	_, err := svc.SendMessage("candidate-user", models.UserRoleCandidate, &dto.SendMessageRequest{
		RecipientID: "industry-user",
		Body:        "Hello?",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrConversationNotEstablished.Code, appErr.Code)
}

func TestChatService_CandidateMayReply(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(true)
	notifier := &recordingNotifier{}
	svc := NewChatService(msgRepo, userRepo, profileRepo, notifier)

	_, err := svc.SendMessage("candidate-user", models.UserRoleCandidate, &dto.SendMessageRequest{
		RecipientID: "industry-user",
		Body:        "Thanks, happy to talk",
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "New message from Aigerim Bekova", notifier.sent[0].Title)
}

func TestChatService_SelfMessageRejected(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(true)
	svc := NewChatService(msgRepo, userRepo, profileRepo, &recordingNotifier{})

	_, err := svc.SendMessage("user-1", models.UserRoleIndustry, &dto.SendMessageRequest{
		RecipientID: "user-1",
		Body:        "note to self",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCannotMessageSelf.Code, appErr.Code)
}

func TestChatService_UnknownRecipient(t *testing.T) {
	msgRepo, _, profileRepo := chatFixtures(true)
	userRepo := &mockUserRepo{
		findByID: func(string) (*models.User, error) { return nil, repositories.ErrUserNotFound },
	}
	svc := NewChatService(msgRepo, userRepo, profileRepo, &recordingNotifier{})

	_, err := svc.SendMessage("user-1", models.UserRoleIndustry, &dto.SendMessageRequest{
		RecipientID: "ghost",
		Body:        "anyone there",
	})
	assert.Error(t, err)
}

func TestChatService_NotificationBodyTruncated(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(false)
	notifier := &recordingNotifier{}
	svc := NewChatService(msgRepo, userRepo, profileRepo, notifier)

	body := strings.Repeat("x", 240)
	_, err := svc.SendMessage("industry-user", models.UserRoleIndustry, &dto.SendMessageRequest{
		RecipientID: "candidate-user",
		Body:        body,
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, strings.Repeat("x", policy.NotificationBodyLimit)+"...", notifier.sent[0].Body)
}

func TestChatService_IndustrySenderLabelStaysAnonymized(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(false)
	notifier := &recordingNotifier{}
	svc := NewChatService(msgRepo, userRepo, profileRepo, notifier)

	_, err := svc.SendMessage("industry-user", models.UserRoleIndustry, &dto.SendMessageRequest{
		RecipientID: "candidate-user",
		Body:        "hello",
	})
	require.NoError(t, err)

	// The fixture industry has not opted into disclosure.
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "New message from Company #2C9", notifier.sent[0].Title)
}

func TestChatService_AnonymousSenderFallback(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(true)
	profileRepo.findCandidateByUserID = func(string) (*models.CandidateProfile, error) {
		return &models.CandidateProfile{}, nil
	}
	notifier := &recordingNotifier{}
	svc := NewChatService(msgRepo, userRepo, profileRepo, notifier)

	_, err := svc.SendMessage("candidate-user", models.UserRoleCandidate, &dto.SendMessageRequest{
		RecipientID: "industry-user",
		Body:        "hi",
	})
	require.NoError(t, err)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "New message from "+policy.DefaultSenderLabel, notifier.sent[0].Title)
}

// The inbox applies the disclosure rule per viewer: an unopted industry
// partner is anonymized for a free viewer and named for a premium one.
func TestChatService_ListConversationsDisclosesByViewerPremium(t *testing.T) {
	msgRepo, userRepo, profileRepo := chatFixtures(true)
	msgRepo.listPartners = func(string) ([]repositories.ConversationPartner, error) {
		return []repositories.ConversationPartner{{PartnerID: "industry-user", UnreadCount: 2}}, nil
	}
	svc := NewChatService(msgRepo, userRepo, profileRepo, &recordingNotifier{})

	resp, err := svc.ListConversations("candidate-user", false)
	require.NoError(t, err)
	require.Len(t, resp.Conversations, 1)
	assert.Equal(t, "Company #2C9", resp.Conversations[0].PartnerName)

	resp, err = svc.ListConversations("candidate-user", true)
	require.NoError(t, err)
	require.Len(t, resp.Conversations, 1)
	assert.Equal(t, "Acme Robotics", resp.Conversations[0].PartnerName)
}
