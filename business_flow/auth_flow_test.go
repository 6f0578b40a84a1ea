package businessflow_test

import (
	"context"
	"testing"
	"time"

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

func setupAuthFlow(t *testing.T) (*testingutil.TestDB, *testingutil.TestFixtures, businessflow.AuthFlow) {
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

	tokenService, err := services.NewTokenService(
		1*time.Hour, 24*time.Hour,
		"test-issuer", "test-audience",
		false, "", "", "test-secret-key-for-flow-tests",
		nil,
	)
	require.NoError(t, err)

	flow := businessflow.NewAuthFlow(
		repository.NewAccountRepository(testDB.DB),
		repository.NewConversationRepository(testDB.DB),
		repository.NewMessageRepository(testDB.DB),
		tokenService,
	)

	return testDB, fixtures, flow
}

func TestRegister(t *testing.T) {
	_, _, flow := setupAuthFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("SuccessfulRegistration", func(t *testing.T) {
		result, err := flow.Register(context.Background(), &dto.RegisterRequest{
			Email:     "New.User@Example.com",
			Password:  "StrongPass123!",
			FirstName: "Sara",
			LastName:  "Ahmadi",
		}, metadata)
		require.NoError(t, err)
		require.NotNil(t, result)

		// Email is normalized to lowercase before storage
		assert.Equal(t, "new.user@example.com", result.Account.Email)
		assert.Equal(t, models.RoleCustomer, result.Account.Role)
		assert.NotEmpty(t, result.Session.AccessToken)
		assert.NotEmpty(t, result.Session.RefreshToken)
		assert.Equal(t, "Bearer", result.Session.TokenType)
	})

	t.Run("DuplicateEmailRejected", func(t *testing.T) {
		req := &dto.RegisterRequest{
			Email:     "taken@example.com",
			Password:  "StrongPass123!",
			FirstName: "Sara",
			LastName:  "Ahmadi",
		}
		_, err := flow.Register(context.Background(), req, metadata)
		require.NoError(t, err)

		_, err = flow.Register(context.Background(), req, metadata)
		assert.True(t, businessflow.IsEmailAlreadyExists(err))
	})
}

func TestLogin(t *testing.T) {
	testDB, fixtures, flow := setupAuthFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("SuccessfulLogin", func(t *testing.T) {
		account, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)

		result, err := flow.Login(context.Background(), &dto.LoginRequest{
			Email:    account.Email,
			Password: testingutil.TestPassword,
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, account.ID, result.Account.ID)
		assert.NotEmpty(t, result.Session.AccessToken)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := flow.Login(context.Background(), &dto.LoginRequest{
			Email:    "nobody@example.com",
			Password: testingutil.TestPassword,
		}, metadata)
		assert.True(t, businessflow.IsAccountNotFound(err))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		account, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)

		_, err = flow.Login(context.Background(), &dto.LoginRequest{
			Email:    account.Email,
			Password: "WrongPass123!",
		}, metadata)
		assert.True(t, businessflow.IsIncorrectPassword(err))
	})

	t.Run("InactiveAccount", func(t *testing.T) {
		account, err := fixtures.CreateTestAccount(models.RoleCustomer)
		require.NoError(t, err)
		require.NoError(t, testDB.DB.Model(&models.Account{}).
			Where("id = ?", account.ID).
			Update("is_active", false).Error)

		_, err = flow.Login(context.Background(), &dto.LoginRequest{
			Email:    account.Email,
			Password: testingutil.TestPassword,
		}, metadata)
		assert.True(t, businessflow.IsAccountInactive(err))
	})
}

func TestChangePassword(t *testing.T) {
	_, fixtures, flow := setupAuthFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	account, err := fixtures.CreateTestAccount(models.RoleCustomer)
	require.NoError(t, err)

	_, err = flow.ChangePassword(context.Background(), &dto.ChangePasswordRequest{
		AccountID:       account.ID,
		CurrentPassword: "not-the-password",
		NewPassword:     "FreshPass123!",
	}, metadata)
	assert.True(t, businessflow.IsIncorrectPassword(err))

	_, err = flow.ChangePassword(context.Background(), &dto.ChangePasswordRequest{
		AccountID:       account.ID,
		CurrentPassword: testingutil.TestPassword,
		NewPassword:     "FreshPass123!",
	}, metadata)
	require.NoError(t, err)

	// Old password no longer works, the new one does
	_, err = flow.Login(context.Background(), &dto.LoginRequest{
		Email:    account.Email,
		Password: testingutil.TestPassword,
	}, metadata)
	assert.True(t, businessflow.IsIncorrectPassword(err))

	_, err = flow.Login(context.Background(), &dto.LoginRequest{
		Email:    account.Email,
		Password: "FreshPass123!",
	}, metadata)
	require.NoError(t, err)
}

func TestToggleLanguage(t *testing.T) {
	_, fixtures, flow := setupAuthFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	account, err := fixtures.CreateTestAccount(models.RoleCustomer)
	require.NoError(t, err)
	require.Equal(t, utils.LocalePersian, account.PreferredLanguage)

	result, err := flow.ToggleLanguage(context.Background(), account.ID, metadata)
	require.NoError(t, err)
	assert.Equal(t, utils.LocaleEnglish, result.PreferredLanguage)

	// Toggling twice always lands back on the starting locale
	result, err = flow.ToggleLanguage(context.Background(), account.ID, metadata)
	require.NoError(t, err)
	assert.Equal(t, utils.LocalePersian, result.PreferredLanguage)
}

func TestGetStats(t *testing.T) {
	_, fixtures, flow := setupAuthFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	customer, err := fixtures.CreateTestAccount(models.RoleCustomer)
	require.NoError(t, err)
	staff, err := fixtures.CreateTestAccount(models.RoleStaff)
	require.NoError(t, err)
	conversation, err := fixtures.CreateTestConversation(customer.ID, "Thread")
	require.NoError(t, err)
	_, err = fixtures.CreateTestMessage(conversation.ID, staff.ID, "hello")
	require.NoError(t, err)
	_, err = fixtures.CreateTestMessage(conversation.ID, staff.ID, "still there?")
	require.NoError(t, err)

	stats, err := flow.GetStats(context.Background(), customer.ID, metadata)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCustomer, stats.Role)
	assert.Equal(t, int64(2), stats.TotalReceived)
	assert.Equal(t, int64(2), stats.UnreadMessages)
	assert.Equal(t, int64(1), stats.ConversationsNum)
}
