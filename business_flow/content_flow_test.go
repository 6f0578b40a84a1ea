package businessflow_test

import (
	"context"
	"strings"
	"testing"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/app/services"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/config"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	testingutil "github.com/arkasoft/arka-portal/testing"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContentFlow(t *testing.T) (*testingutil.TestDB, *testingutil.TestFixtures, businessflow.ContentFlow) {
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

	flow := businessflow.NewContentFlow(
		repository.NewHeroSectionRepository(testDB.DB),
		repository.NewServiceRepository(testDB.DB),
		repository.NewTeamMemberRepository(testDB.DB),
		repository.NewAboutSectionRepository(testDB.DB),
		repository.NewContactInfoRepository(testDB.DB),
		repository.NewContactMessageRepository(testDB.DB),
		repository.NewSiteSettingRepository(testDB.DB),
		services.NewNotificationService(services.NewMockEmailProvider()),
		config.AdminConfig{Email: "admin@example.com"},
	)

	return testDB, fixtures, flow
}

func TestGetContentBundle(t *testing.T) {
	_, fixtures, flow := setupContentFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	_, err := fixtures.CreateTestHeroSection()
	require.NoError(t, err)
	_, err = fixtures.CreateTestService("Web Development")
	require.NoError(t, err)
	_, err = fixtures.CreateTestService("Mobile Apps")
	require.NoError(t, err)

	t.Run("SupportedLanguageEchoedBack", func(t *testing.T) {
		result, err := flow.GetContentBundle(context.Background(), utils.LocaleEnglish, metadata)
		require.NoError(t, err)
		assert.Equal(t, utils.LocaleEnglish, result.Language)
		require.NotNil(t, result.Hero)
		assert.Len(t, result.Services, 2)
	})

	t.Run("UnsupportedLanguageFallsBackToPersian", func(t *testing.T) {
		result, err := flow.GetContentBundle(context.Background(), "de", metadata)
		require.NoError(t, err)
		assert.Equal(t, utils.LocalePersian, result.Language)
	})
}

func TestListServices(t *testing.T) {
	testDB, fixtures, flow := setupContentFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	_, err := fixtures.CreateTestService("Visible")
	require.NoError(t, err)
	hidden, err := fixtures.CreateTestService("Hidden")
	require.NoError(t, err)
	require.NoError(t, testDB.DB.Model(&models.Service{}).
		Where("id = ?", hidden.ID).
		Update("is_active", false).Error)

	t.Run("PublicListOnlyShowsActive", func(t *testing.T) {
		result, err := flow.ListServices(context.Background(), metadata)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "Visible", result.Items[0].TitleEn)
	})

	t.Run("AdminListShowsEverything", func(t *testing.T) {
		result, err := flow.AdminListServices(context.Background(), metadata)
		require.NoError(t, err)
		assert.Len(t, result.Items, 2)
	})
}

func TestSubmitContact(t *testing.T) {
	testDB, _, flow := setupContentFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	result, err := flow.SubmitContact(context.Background(), &dto.ContactRequest{
		Name:    "  Ali Rezaei  ",
		Email:   "  Ali.Rezaei@Example.com ",
		Subject: " Project inquiry ",
		Message: "We need a quote.",
	}, metadata)
	require.NoError(t, err)
	require.NotZero(t, result.ID)

	var stored models.ContactMessage
	require.NoError(t, testDB.DB.First(&stored, result.ID).Error)
	assert.Equal(t, "Ali Rezaei", stored.Name)
	assert.Equal(t, "ali.rezaei@example.com", stored.Email)
	assert.Equal(t, "Project inquiry", stored.Subject)
	assert.False(t, utils.IsTrue(stored.IsRead))
}

func TestAdminSaveSetting(t *testing.T) {
	_, _, flow := setupContentFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("CreateThenUpdateSameKey", func(t *testing.T) {
		created, err := flow.AdminSaveSetting(context.Background(), &dto.SaveSettingRequest{
			Key:   "site_title",
			Value: "Arka",
		}, metadata)
		require.NoError(t, err)
		item := created.Item.(dto.SiteSettingItem)
		require.NotZero(t, item.ID)

		updated, err := flow.AdminSaveSetting(context.Background(), &dto.SaveSettingRequest{
			ID:    item.ID,
			Key:   "site_title",
			Value: "Arka Portal",
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, "Arka Portal", updated.Item.(dto.SiteSettingItem).Value)
	})

	t.Run("DuplicateKeyRejected", func(t *testing.T) {
		_, err := flow.AdminSaveSetting(context.Background(), &dto.SaveSettingRequest{
			Key:   "maintenance_mode",
			Value: "off",
		}, metadata)
		require.NoError(t, err)

		_, err = flow.AdminSaveSetting(context.Background(), &dto.SaveSettingRequest{
			Key:   "maintenance_mode",
			Value: "on",
		}, metadata)
		assert.True(t, businessflow.IsSettingKeyExists(err))
	})
}

func TestAdminSaveHero(t *testing.T) {
	_, _, flow := setupContentFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("UnknownIDReportsNotFound", func(t *testing.T) {
		_, err := flow.AdminSaveHero(context.Background(), &dto.SaveHeroRequest{
			ID:         999999,
			TitleFa:    "عنوان",
			TitleEn:    "Title",
			SubtitleFa: "زیرعنوان",
			SubtitleEn: "Subtitle",
		}, metadata)
		assert.True(t, businessflow.IsContentNotFound(err))
	})
}

func TestAdminContactMessages(t *testing.T) {
	_, fixtures, flow := setupContentFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	first, err := fixtures.CreateTestContactMessage("first@example.com")
	require.NoError(t, err)
	_, err = fixtures.CreateTestContactMessage("second@example.com")
	require.NoError(t, err)

	t.Run("MarkReadThenFilter", func(t *testing.T) {
		_, err := flow.AdminMarkContactMessageRead(context.Background(), first.ID, metadata)
		require.NoError(t, err)

		read := true
		result, err := flow.AdminListContactMessages(context.Background(), &dto.ListContactMessagesRequest{IsRead: &read}, metadata)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "first@example.com", result.Items[0].Email)
		assert.Equal(t, int64(1), result.Total)

		unread := false
		result, err = flow.AdminListContactMessages(context.Background(), &dto.ListContactMessagesRequest{IsRead: &unread}, metadata)
		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, "second@example.com", result.Items[0].Email)
	})

	t.Run("UnknownMessage", func(t *testing.T) {
		_, err := flow.AdminMarkContactMessageRead(context.Background(), 999999, metadata)
		assert.True(t, businessflow.IsContactMessageNotFound(err))

		_, err = flow.AdminDeleteContactMessage(context.Background(), 999999, metadata)
		assert.True(t, businessflow.IsContactMessageNotFound(err))
	})

	t.Run("ExportProducesWorkbook", func(t *testing.T) {
		data, filename, err := flow.AdminExportContactMessages(context.Background(), metadata)
		require.NoError(t, err)
		assert.NotEmpty(t, data)
		assert.True(t, strings.HasPrefix(filename, "contact-messages-"))
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	})
}
