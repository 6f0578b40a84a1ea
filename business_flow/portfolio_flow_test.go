package businessflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	businessflow "github.com/arkasoft/arka-portal/business_flow"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	testingutil "github.com/arkasoft/arka-portal/testing"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPortfolioFlow(t *testing.T) (*testingutil.TestDB, *testingutil.TestFixtures, businessflow.PortfolioFlow) {
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

	flow := businessflow.NewPortfolioFlow(
		repository.NewProjectCategoryRepository(testDB.DB),
		repository.NewProjectRepository(testDB.DB),
		repository.NewProjectTestimonialRepository(testDB.DB),
	)

	return testDB, fixtures, flow
}

func TestGetProject(t *testing.T) {
	testDB, fixtures, flow := setupPortfolioFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("EveryViewBumpsTheCounter", func(t *testing.T) {
		category, err := fixtures.CreateTestCategory("web")
		require.NoError(t, err)
		project, err := fixtures.CreateTestProject(category.ID, "shop-platform", []string{"go", "react"})
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			result, err := flow.GetProject(context.Background(), "shop-platform", metadata)
			require.NoError(t, err)
			assert.Equal(t, project.Slug, result.Project.Slug)
		}

		var stored models.Project
		require.NoError(t, testDB.DB.First(&stored, project.ID).Error)
		assert.Equal(t, uint(3), stored.ViewsCount)
	})

	t.Run("UnknownSlug", func(t *testing.T) {
		_, err := flow.GetProject(context.Background(), "no-such-project", metadata)
		assert.True(t, businessflow.IsProjectNotFound(err))
	})
}

func TestGetRelatedProjects(t *testing.T) {
	_, fixtures, flow := setupPortfolioFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	webCategory, err := fixtures.CreateTestCategory("web")
	require.NoError(t, err)
	mobileCategory, err := fixtures.CreateTestCategory("mobile")
	require.NoError(t, err)

	_, err = fixtures.CreateTestProject(webCategory.ID, "target", []string{"go", "postgres"})
	require.NoError(t, err)

	// Two same-category siblings
	_, err = fixtures.CreateTestProject(webCategory.ID, "sibling-one", []string{"php"})
	require.NoError(t, err)
	_, err = fixtures.CreateTestProject(webCategory.ID, "sibling-two", []string{"python"})
	require.NoError(t, err)

	// One cross-category project sharing a technology, one sharing nothing
	_, err = fixtures.CreateTestProject(mobileCategory.ID, "tech-overlap", []string{"go", "flutter"})
	require.NoError(t, err)
	_, err = fixtures.CreateTestProject(mobileCategory.ID, "unrelated", []string{"kotlin"})
	require.NoError(t, err)

	result, err := flow.GetRelatedProjects(context.Background(), "target", metadata)
	require.NoError(t, err)

	slugs := make([]string, 0, len(result.Projects))
	for _, p := range result.Projects {
		slugs = append(slugs, p.Slug)
	}

	// Same-category projects come first, then the technology-overlap backfill
	require.Len(t, slugs, 3)
	assert.Equal(t, []string{"sibling-one", "sibling-two", "tech-overlap"}, slugs)
	assert.NotContains(t, slugs, "target")
	assert.NotContains(t, slugs, "unrelated")
}

func TestListCategories(t *testing.T) {
	testDB, _, flow := setupPortfolioFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	now := utils.UTCNow()
	older := &models.ProjectCategory{
		NameFa:    "قدیمی",
		NameEn:    "Older",
		Slug:      "older",
		CreatedAt: now.Add(-time.Hour),
		IsActive:  utils.ToPtr(true),
	}
	require.NoError(t, testDB.DB.Create(older).Error)
	newer := &models.ProjectCategory{
		NameFa:    "جدید",
		NameEn:    "Newer",
		Slug:      "newer",
		CreatedAt: now,
		IsActive:  utils.ToPtr(true),
	}
	require.NoError(t, testDB.DB.Create(newer).Error)
	hidden := &models.ProjectCategory{
		NameFa:    "پنهان",
		NameEn:    "Hidden",
		Slug:      "hidden",
		CreatedAt: now,
		IsActive:  utils.ToPtr(false),
	}
	require.NoError(t, testDB.DB.Create(hidden).Error)

	result, err := flow.ListCategories(context.Background(), metadata)
	require.NoError(t, err)
	require.Len(t, result.Categories, 2)

	// Equal curated order: newest creation wins the tie
	assert.Equal(t, "newer", result.Categories[0].Slug)
	assert.Equal(t, "older", result.Categories[1].Slug)
}

func TestListProjects(t *testing.T) {
	_, fixtures, flow := setupPortfolioFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	category, err := fixtures.CreateTestCategory("web")
	require.NoError(t, err)
	_, err = fixtures.CreateTestProject(category.ID, "first", []string{"go"})
	require.NoError(t, err)
	_, err = fixtures.CreateTestProject(category.ID, "second", []string{"react"})
	require.NoError(t, err)

	t.Run("AllActive", func(t *testing.T) {
		result, err := flow.ListProjects(context.Background(), &dto.ListProjectsRequest{}, metadata)
		require.NoError(t, err)
		assert.Equal(t, int64(2), result.Total)
		assert.Len(t, result.Projects, 2)
	})

	t.Run("FilterByTechnology", func(t *testing.T) {
		tech := "go"
		result, err := flow.ListProjects(context.Background(), &dto.ListProjectsRequest{Technology: &tech}, metadata)
		require.NoError(t, err)
		require.Len(t, result.Projects, 1)
		assert.Equal(t, "first", result.Projects[0].Slug)
	})

	t.Run("FilterByCategorySlug", func(t *testing.T) {
		slug := "web"
		result, err := flow.ListProjects(context.Background(), &dto.ListProjectsRequest{CategorySlug: &slug}, metadata)
		require.NoError(t, err)
		assert.Len(t, result.Projects, 2)
	})
}

func TestAdminSaveCategory(t *testing.T) {
	_, fixtures, flow := setupPortfolioFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("CreateThenUpdate", func(t *testing.T) {
		created, err := flow.AdminSaveCategory(context.Background(), &dto.SaveCategoryRequest{
			NameFa: "وب",
			NameEn: "Web",
			Slug:   "web-dev",
		}, metadata)
		require.NoError(t, err)
		require.NotZero(t, created.Category.ID)

		updated, err := flow.AdminSaveCategory(context.Background(), &dto.SaveCategoryRequest{
			ID:     created.Category.ID,
			NameFa: "وب",
			NameEn: "Web Development",
			Slug:   "web-dev",
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, created.Category.ID, updated.Category.ID)
		assert.Equal(t, "Web Development", updated.Category.NameEn)
	})

	t.Run("DuplicateSlugRejected", func(t *testing.T) {
		_, err := fixtures.CreateTestCategory("taken-slug")
		require.NoError(t, err)

		_, err = flow.AdminSaveCategory(context.Background(), &dto.SaveCategoryRequest{
			NameFa: "تکراری",
			NameEn: "Duplicate",
			Slug:   "taken-slug",
		}, metadata)
		assert.True(t, businessflow.IsSlugAlreadyExists(err))
	})
}

func TestAdminSaveProject(t *testing.T) {
	_, fixtures, flow := setupPortfolioFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	category, err := fixtures.CreateTestCategory("web")
	require.NoError(t, err)

	t.Run("UnknownCategoryRejected", func(t *testing.T) {
		_, err := flow.AdminSaveProject(context.Background(), &dto.SaveProjectRequest{
			TitleFa:       "پروژه",
			TitleEn:       "Project",
			Slug:          "orphan",
			DescriptionFa: "توضیح",
			DescriptionEn: "description",
			CategoryID:    999999,
		}, metadata)
		assert.True(t, businessflow.IsCategoryNotFound(err))
	})

	t.Run("CreateWithTechnologies", func(t *testing.T) {
		result, err := flow.AdminSaveProject(context.Background(), &dto.SaveProjectRequest{
			TitleFa:       "فروشگاه",
			TitleEn:       "Store",
			Slug:          "store",
			DescriptionFa: "توضیح",
			DescriptionEn: "description",
			CategoryID:    category.ID,
			Technologies:  []string{"go", "redis"},
		}, metadata)
		require.NoError(t, err)
		assert.Equal(t, []string{"go", "redis"}, result.Project.Technologies)
	})
}

func TestPortfolioStats(t *testing.T) {
	testDB, fixtures, flow := setupPortfolioFlow(t)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	category, err := fixtures.CreateTestCategory("web")
	require.NoError(t, err)
	_, err = fixtures.CreateTestProject(category.ID, "done", []string{"go"})
	require.NoError(t, err)
	inProgress, err := fixtures.CreateTestProject(category.ID, "building", []string{"go"})
	require.NoError(t, err)
	require.NoError(t, testDB.DB.Model(&models.Project{}).
		Where("id = ?", inProgress.ID).
		Update("status", models.ProjectStatusInProgress).Error)

	stats, err := flow.GetStats(context.Background(), metadata)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalProjects)
	assert.Equal(t, int64(1), stats.CompletedProjects)
	assert.Equal(t, int64(1), stats.InProgressProjects)
	assert.Equal(t, int64(1), stats.TotalCategories)
}
