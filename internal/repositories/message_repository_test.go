package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"internhub_backend/internal/models"
)

func setupMessageDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&models.Message{})
	require.NoError(t, err, "failed to migrate message table")

	return db
}

func TestMessageRepository_ConversationExists(t *testing.T) {
	db := setupMessageDB(t)
	repo := NewMessageRepository(db)

	exists, err := repo.ConversationExists("industry-1", "candidate-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Create(&models.Message{
		SenderID:   "industry-1",
		ReceiverID: "candidate-1",
		Content:    "We liked your profile",
	}))

	// The pair is unordered: both directions must report the conversation.
	exists, err = repo.ConversationExists("industry-1", "candidate-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ConversationExists("candidate-1", "industry-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ConversationExists("candidate-1", "industry-2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMessageRepository_MarkConversationRead(t *testing.T) {
	db := setupMessageDB(t)
	repo := NewMessageRepository(db)

	require.NoError(t, repo.Create(&models.Message{
		SenderID: "a", ReceiverID: "b", Content: "one",
	}))
	require.NoError(t, repo.Create(&models.Message{
		SenderID: "a", ReceiverID: "b", Content: "two",
	}))
	require.NoError(t, repo.Create(&models.Message{
		SenderID: "b", ReceiverID: "a", Content: "reply",
	}))

	unread, err := repo.UnreadCount("b")
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, repo.MarkConversationRead("b", "a", time.Now()))

	unread, err = repo.UnreadCount("b")
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	// The reader's own outgoing message stays unread for the other side.
	unread, err = repo.UnreadCount("a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)
}

func TestMessageRepository_ListConversationOrder(t *testing.T) {
	db := setupMessageDB(t)
	repo := NewMessageRepository(db)

	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(&models.Message{
			SenderID: "a", ReceiverID: "b", Content: content,
			SentAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	messages, err := repo.ListConversation("b", "a", 10, 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "third", messages[2].Content)
}
