// Package businessflow_test contains integration tests for the messaging flow
package businessflow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/app/services"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	testingutil "github.com/arkasoft/arka-portal/testing"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMessagingFlow(t *testing.T) (*testingutil.TestDB, *testingutil.TestFixtures, businessflow.MessagingFlow) {
	t.Helper()

	testDB, err := testingutil.SetupTestDB()
	if err != nil {
		t.Skipf("postgres unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := testDB.TeardownTestDB(); err != nil {
			t.Logf("Warning: failed to cleanup test database: %v", err)
		}
	})

	fixtures := testingutil.NewTestFixtures(testDB)

	flow := businessflow.NewMessagingFlow(
		testDB.DB,
		repository.NewAccountRepository(testDB.DB),
		repository.NewConversationRepository(testDB.DB),
		repository.NewMessageRepository(testDB.DB),
		repository.NewNotificationRepository(testDB.DB),
		services.NewNotificationService(services.NewMockEmailProvider()),
	)

	return testDB, fixtures, flow
}

// failingMessageRepo wraps a real message repository and refuses every insert
type failingMessageRepo struct {
	repository.MessageRepository
}

func (r *failingMessageRepo) Save(ctx context.Context, message *models.Message) error {
	return errors.New("message insert failed")
}

func TestCreateConversation(t *testing.T) {
	testDB, fixtures, flow := setupMessagingFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("StoresThreadWithInitialMessage", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)

		result, err := flow.CreateConversation(context.Background(), &dto.CreateConversationRequest{
			AccountID: customer.ID,
			Subject:   "Website redesign",
			Message:   "We need a quote for a redesign.",
		}, metadata)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, customer.ID, result.Conversation.ParticipantID)
		assert.Equal(t, "Website redesign", result.Conversation.Subject)
		assert.NotEmpty(t, result.Conversation.UUID)

		// The initial message must land in the same transaction
		var messageCount int64
		require.NoError(t, testDB.DB.Model(&models.Message{}).
			Where("conversation_id = ?", result.Conversation.ID).
			Count(&messageCount).Error)
		assert.Equal(t, int64(1), messageCount)
	})

	t.Run("NotifiesStaffAboutNewThread", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		staff, err := fixtures.CreateTestAccount(models.RoleStaff)
		require.NoError(t, err)

		_, err = flow.CreateConversation(context.Background(), &dto.CreateConversationRequest{
			AccountID: customer.ID,
			Subject:   "Mobile app",
			Message:   "Looking for an estimate.",
		}, metadata)
		require.NoError(t, err)

		var staffNotifications int64
		require.NoError(t, testDB.DB.Model(&models.Notification{}).
			Where("account_id = ?", staff.ID).
			Count(&staffNotifications).Error)
		assert.Equal(t, int64(1), staffNotifications)
	})

	t.Run("FailedMessageInsertRollsBackConversation", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)

		broken := businessflow.NewMessagingFlow(
			testDB.DB,
			repository.NewAccountRepository(testDB.DB),
			repository.NewConversationRepository(testDB.DB),
			&failingMessageRepo{repository.NewMessageRepository(testDB.DB)},
			repository.NewNotificationRepository(testDB.DB),
			services.NewNotificationService(services.NewMockEmailProvider()),
		)

		var before int64
		require.NoError(t, testDB.DB.Model(&models.Conversation{}).Count(&before).Error)

		_, err = broken.CreateConversation(context.Background(), &dto.CreateConversationRequest{
			AccountID: customer.ID,
			Subject:   "Doomed thread",
			Message:   "This insert never lands.",
		}, metadata)
		require.Error(t, err)

		// Both rows or neither: the conversation row must be gone too
		var after int64
		require.NoError(t, testDB.DB.Model(&models.Conversation{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})

	t.Run("InactiveAccountRejected", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		require.NoError(t, testDB.DB.Model(&models.Account{}).
			Where("id = ?", customer.ID).
			Update("is_active", false).Error)

		_, err = flow.CreateConversation(context.Background(), &dto.CreateConversationRequest{
			AccountID: customer.ID,
			Subject:   "Subject",
			Message:   "Message",
		}, metadata)
		assert.True(t, businessflow.IsAccountInactive(err))
	})
}

func TestSendMessage(t *testing.T) {
	testDB, fixtures, flow := setupMessagingFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("ParticipantCanPost", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		conversation, err := fixtures.CreateTestConversation(customer.ID, "Support")
		require.NoError(t, err)

		result, err := flow.SendMessage(context.Background(), &dto.SendMessageRequest{
			AccountID:      customer.ID,
			ConversationID: conversation.ID,
			Content:        "Any update on this?",
		}, metadata)
		require.NoError(t, err)
		assert.True(t, result.Item.IsOwn)
		assert.False(t, result.Item.IsRead)
	})

	t.Run("StaffReplyNotifiesParticipant", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		staff, err := fixtures.CreateTestAccount(models.RoleStaff)
		require.NoError(t, err)
		conversation, err := fixtures.CreateTestConversation(customer.ID, "Support")
		require.NoError(t, err)

		_, err = flow.SendMessage(context.Background(), &dto.SendMessageRequest{
			AccountID:      staff.ID,
			ConversationID: conversation.ID,
			Content:        "We are on it.",
		}, metadata)
		require.NoError(t, err)

		var participantNotifications int64
		require.NoError(t, testDB.DB.Model(&models.Notification{}).
			Where("account_id = ?", customer.ID).
			Count(&participantNotifications).Error)
		assert.Equal(t, int64(1), participantNotifications)
	})

	t.Run("OutsiderDenied", func(t *testing.T) {
		owner, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		outsider, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		conversation, err := fixtures.CreateTestConversation(owner.ID, "Private thread")
		require.NoError(t, err)

		_, err = flow.SendMessage(context.Background(), &dto.SendMessageRequest{
			AccountID:      outsider.ID,
			ConversationID: conversation.ID,
			Content:        "Hello?",
		}, metadata)
		assert.True(t, businessflow.IsMessageAccessDenied(err))
	})
}

func TestListMessages(t *testing.T) {
	_, fixtures, flow := setupMessagingFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("OutsiderGetsEmptyListWithoutError", func(t *testing.T) {
		owner, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		outsider, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		conversation, err := fixtures.CreateTestConversation(owner.ID, "Private thread")
		require.NoError(t, err)
		_, err = fixtures.CreateTestMessage(conversation.ID, owner.ID, "secret")
		require.NoError(t, err)

		result, err := flow.ListMessages(context.Background(), &dto.ListMessagesRequest{
			AccountID:      outsider.ID,
			ConversationID: conversation.ID,
		}, metadata)
		require.NoError(t, err)
		assert.Empty(t, result.Messages)
	})

	t.Run("StaffSeesAnyThread", func(t *testing.T) {
		owner, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		staff, err := fixtures.CreateTestAccount(models.RoleStaff)
		require.NoError(t, err)
		conversation, err := fixtures.CreateTestConversation(owner.ID, "Thread")
		require.NoError(t, err)
		_, err = fixtures.CreateTestMessage(conversation.ID, owner.ID, "hello")
		require.NoError(t, err)

		result, err := flow.ListMessages(context.Background(), &dto.ListMessagesRequest{
			AccountID:      staff.ID,
			ConversationID: conversation.ID,
		}, metadata)
		require.NoError(t, err)
		assert.Len(t, result.Messages, 1)
	})

	t.Run("UnknownConversation", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)

		_, err = flow.ListMessages(context.Background(), &dto.ListMessagesRequest{
			AccountID:      customer.ID,
			ConversationID: 999999,
		}, metadata)
		assert.True(t, businessflow.IsConversationNotFound(err))
	})
}

func TestMarkMessageRead(t *testing.T) {
	testDB, fixtures, flow := setupMessagingFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("ReadAtSetExactlyOnce", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		staff, err := fixtures.CreateTestAccount(models.RoleStaff)
		require.NoError(t, err)
		conversation, err := fixtures.CreateTestConversation(customer.ID, "Thread")
		require.NoError(t, err)
		message, err := fixtures.CreateTestMessage(conversation.ID, customer.ID, "please read")
		require.NoError(t, err)

		first, err := flow.MarkMessageRead(context.Background(), &dto.MarkMessageReadRequest{
			AccountID: staff.ID,
			MessageID: message.ID,
		}, metadata)
		require.NoError(t, err)
		assert.True(t, first.Changed)

		var stored models.Message
		require.NoError(t, testDB.DB.First(&stored, message.ID).Error)
		require.NotNil(t, stored.ReadAt)
		assert.True(t, utils.IsTrue(stored.IsRead))
		firstReadAt := *stored.ReadAt

		// Second mark is a no-op and must not advance read_at
		second, err := flow.MarkMessageRead(context.Background(), &dto.MarkMessageReadRequest{
			AccountID: staff.ID,
			MessageID: message.ID,
		}, metadata)
		require.NoError(t, err)
		assert.False(t, second.Changed)

		require.NoError(t, testDB.DB.First(&stored, message.ID).Error)
		require.NotNil(t, stored.ReadAt)
		assert.Equal(t, firstReadAt, *stored.ReadAt)
	})

	t.Run("SenderMarkingOwnMessageIsNoOp", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		conversation, err := fixtures.CreateTestConversation(customer.ID, "Thread")
		require.NoError(t, err)
		message, err := fixtures.CreateTestMessage(conversation.ID, customer.ID, "my own words")
		require.NoError(t, err)

		result, err := flow.MarkMessageRead(context.Background(), &dto.MarkMessageReadRequest{
			AccountID: customer.ID,
			MessageID: message.ID,
		}, metadata)
		require.NoError(t, err)
		assert.False(t, result.Changed)

		var stored models.Message
		require.NoError(t, testDB.DB.First(&stored, message.ID).Error)
		assert.False(t, utils.IsTrue(stored.IsRead))
		assert.Nil(t, stored.ReadAt)
	})

	t.Run("UnknownMessage", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)

		_, err = flow.MarkMessageRead(context.Background(), &dto.MarkMessageReadRequest{
			AccountID: customer.ID,
			MessageID: 999999,
		}, metadata)
		assert.True(t, businessflow.IsMessageNotFound(err))
	})
}

func TestNotifications(t *testing.T) {
	testDB, fixtures, flow := setupMessagingFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("MarkReadOnOwnedEntry", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		notification, err := fixtures.CreateTestNotification(customer.ID, "Welcome")
		require.NoError(t, err)

		_, err = flow.MarkNotificationRead(context.Background(), &dto.MarkNotificationReadRequest{
			AccountID:      customer.ID,
			NotificationID: notification.ID,
		}, metadata)
		require.NoError(t, err)

		var stored models.Notification
		require.NoError(t, testDB.DB.First(&stored, notification.ID).Error)
		assert.True(t, utils.IsTrue(stored.IsRead))
	})

	t.Run("ForeignEntryReportsNotFound", func(t *testing.T) {
		owner, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		other, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		notification, err := fixtures.CreateTestNotification(owner.ID, "Private")
		require.NoError(t, err)

		_, err = flow.MarkNotificationRead(context.Background(), &dto.MarkNotificationReadRequest{
			AccountID:      other.ID,
			NotificationID: notification.ID,
		}, metadata)
		assert.True(t, businessflow.IsNotificationNotFound(err))
	})

	t.Run("MarkAllRead", func(t *testing.T) {
		customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			_, err := fixtures.CreateTestNotification(customer.ID, "Entry")
			require.NoError(t, err)
		}

		_, err = flow.MarkAllNotificationsRead(context.Background(), customer.ID, metadata)
		require.NoError(t, err)

		var unread int64
		require.NoError(t, testDB.DB.Model(&models.Notification{}).
			Where("account_id = ? AND is_read = ?", customer.ID, false).
			Count(&unread).Error)
		assert.Equal(t, int64(0), unread)
	})
}

func TestGetUnreadCounts(t *testing.T) {
	_, fixtures, flow := setupMessagingFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
	require.NoError(t, err)
	staff, err := fixtures.CreateTestAccount(models.RoleStaff)
	require.NoError(t, err)
	conversation, err := fixtures.CreateTestConversation(customer.ID, "Thread")
	require.NoError(t, err)

	// Two staff replies arrive, each also produces a feed entry
	for i := 0; i < 2; i++ {
		_, err = flow.SendMessage(context.Background(), &dto.SendMessageRequest{
			AccountID:      staff.ID,
			ConversationID: conversation.ID,
			Content:        "reply",
		}, metadata)
		require.NoError(t, err)
	}

	counts, err := flow.GetUnreadCounts(context.Background(), customer.ID, metadata)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.UnreadMessages)
	assert.Equal(t, int64(2), counts.UnreadNotifications)

	// Counters are recomputed, so reading one message drops the badge by one
	messages, err := flow.ListMessages(context.Background(), &dto.ListMessagesRequest{
		AccountID:      customer.ID,
		ConversationID: conversation.ID,
	}, metadata)
	require.NoError(t, err)
	require.NotEmpty(t, messages.Messages)

	_, err = flow.MarkMessageRead(context.Background(), &dto.MarkMessageReadRequest{
		AccountID: customer.ID,
		MessageID: messages.Messages[0].ID,
	}, metadata)
	require.NoError(t, err)

	counts, err = flow.GetUnreadCounts(context.Background(), customer.ID, metadata)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.UnreadMessages)
}

func TestAdminListConversations(t *testing.T) {
	_, fixtures, flow := setupMessagingFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
	require.NoError(t, err)
	staff, err := fixtures.CreateTestAccount(models.RoleStaff)
	require.NoError(t, err)
	_, err = fixtures.CreateTestConversation(customer.ID, "First")
	require.NoError(t, err)
	_, err = fixtures.CreateTestConversation(customer.ID, "Second")
	require.NoError(t, err)

	result, err := flow.AdminListConversations(context.Background(), &dto.AdminListConversationsRequest{
		AccountID: staff.ID,
	}, metadata)
	require.NoError(t, err)
	assert.Len(t, result.Conversations, 2)

	// Customers cannot use the staff listing
	_, err = flow.AdminListConversations(context.Background(), &dto.AdminListConversationsRequest{
		AccountID: customer.ID,
	}, metadata)
	assert.True(t, businessflow.IsStaffOnly(err))
}
