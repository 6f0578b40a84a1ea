package testing

import (
	"fmt"
	"math/rand"

	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/utils"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password used for every fixture account
const TestPassword = "TestPass123!"

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// CreateTestAccount creates an account with the given role and a known password
func (tf *TestFixtures) CreateTestAccount(role string) (*models.Account, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	suffix := fmt.Sprintf("%09d", rand.Intn(900000000)+100000000)

	account := &models.Account{
		Email:             fmt.Sprintf("user.%s.%s@example.com", role, suffix),
		PasswordHash:      string(hashedPassword),
		FirstName:         "Sara",
		LastName:          "Ahmadi",
		Role:              role,
		PreferredLanguage: utils.LocalePersian,
		IsVerified:        utils.ToPtr(true),
		IsActive:          utils.ToPtr(true),
	}

	if err := tf.DB.DB.Create(account).Error; err != nil {
		return nil, fmt.Errorf("failed to create test account: %w", err)
	}

	return account, nil
}

// CreateTestConversation creates a thread owned by the given participant
func (tf *TestFixtures) CreateTestConversation(participantID uint, subject string) (*models.Conversation, error) {
	conversation := &models.Conversation{
		ParticipantID: participantID,
		Subject:       subject,
		IsActive:      utils.ToPtr(true),
	}
	if err := tf.DB.DB.Create(conversation).Error; err != nil {
		return nil, fmt.Errorf("failed to create test conversation: %w", err)
	}
	return conversation, nil
}

// CreateTestMessage posts a message into a conversation
func (tf *TestFixtures) CreateTestMessage(conversationID, senderID uint, content string) (*models.Message, error) {
	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		IsRead:         utils.ToPtr(false),
	}
	if err := tf.DB.DB.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create test message: %w", err)
	}
	return message, nil
}

// CreateTestNotification creates a feed entry for an account
func (tf *TestFixtures) CreateTestNotification(accountID uint, title string) (*models.Notification, error) {
	notification := &models.Notification{
		AccountID: accountID,
		Title:     title,
		Body:      "notification body",
		Type:      models.NotificationTypeMessage,
		IsRead:    utils.ToPtr(false),
	}
	if err := tf.DB.DB.Create(notification).Error; err != nil {
		return nil, fmt.Errorf("failed to create test notification: %w", err)
	}
	return notification, nil
}

// CreateTestCategory creates an active portfolio category
func (tf *TestFixtures) CreateTestCategory(slug string) (*models.ProjectCategory, error) {
	category := &models.ProjectCategory{
		NameFa:   "دسته " + slug,
		NameEn:   "Category " + slug,
		Slug:     slug,
		Icon:     "layers",
		IsActive: utils.ToPtr(true),
	}
	if err := tf.DB.DB.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create test category: %w", err)
	}
	return category, nil
}

// CreateTestProject creates an active completed project in the given category
func (tf *TestFixtures) CreateTestProject(categoryID uint, slug string, technologies []string) (*models.Project, error) {
	project := &models.Project{
		TitleFa:       "پروژه " + slug,
		TitleEn:       "Project " + slug,
		Slug:          slug,
		DescriptionFa: "توضیحات",
		DescriptionEn: "description",
		CategoryID:    categoryID,
		Technologies:  pq.StringArray(technologies),
		Status:        models.ProjectStatusCompleted,
		IsFeatured:    utils.ToPtr(false),
		IsActive:      utils.ToPtr(true),
	}
	if err := tf.DB.DB.Create(project).Error; err != nil {
		return nil, fmt.Errorf("failed to create test project: %w", err)
	}
	return project, nil
}

// CreateTestTestimonial attaches an active client quote to a project
func (tf *TestFixtures) CreateTestTestimonial(projectID uint, clientName string) (*models.ProjectTestimonial, error) {
	testimonial := &models.ProjectTestimonial{
		ProjectID:  projectID,
		ClientName: clientName,
		ContentFa:  "نظر مشتری",
		ContentEn:  "client feedback",
		Rating:     5,
		IsActive:   utils.ToPtr(true),
	}
	if err := tf.DB.DB.Create(testimonial).Error; err != nil {
		return nil, fmt.Errorf("failed to create test testimonial: %w", err)
	}
	return testimonial, nil
}

// CreateTestHeroSection creates an active landing banner
func (tf *TestFixtures) CreateTestHeroSection() (*models.HeroSection, error) {
	hero := &models.HeroSection{
		TitleFa:    "عنوان اصلی",
		TitleEn:    "Main title",
		SubtitleFa: "زیرعنوان",
		SubtitleEn: "Subtitle",
		IsActive:   utils.ToPtr(true),
	}
	if err := tf.DB.DB.Create(hero).Error; err != nil {
		return nil, fmt.Errorf("failed to create test hero section: %w", err)
	}
	return hero, nil
}

// CreateTestService creates an active service card
func (tf *TestFixtures) CreateTestService(titleEn string) (*models.Service, error) {
	service := &models.Service{
		TitleFa:       "خدمت",
		TitleEn:       titleEn,
		DescriptionFa: "توضیحات خدمت",
		DescriptionEn: "service description",
		Icon:          "code",
		IsActive:      utils.ToPtr(true),
	}
	if err := tf.DB.DB.Create(service).Error; err != nil {
		return nil, fmt.Errorf("failed to create test service: %w", err)
	}
	return service, nil
}

// CreateTestContactMessage stores an unread contact-form submission
func (tf *TestFixtures) CreateTestContactMessage(email string) (*models.ContactMessage, error) {
	message := &models.ContactMessage{
		Name:    "Ali Rezaei",
		Email:   email,
		Subject: "Project inquiry",
		Message: "We would like a quote for a web project.",
		IsRead:  utils.ToPtr(false),
	}
	if err := tf.DB.DB.Create(message).Error; err != nil {
		return nil, fmt.Errorf("failed to create test contact message: %w", err)
	}
	return message, nil
}
