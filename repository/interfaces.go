// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/arkasoft/arka-portal/models"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
	DeleteByID(ctx context.Context, id uint) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// AccountRepository defines operations for accounts
type AccountRepository interface {
	Repository[models.Account, models.AccountFilter]
	ByEmail(ctx context.Context, email string) (*models.Account, error)
	ByUUID(ctx context.Context, uuidStr string) (*models.Account, error)
	ListStaff(ctx context.Context) ([]*models.Account, error)
	UpdatePassword(ctx context.Context, accountID uint, passwordHash string) error
	UpdateLanguage(ctx context.Context, accountID uint, language string) error
}

// ConversationRepository defines operations for conversations
type ConversationRepository interface {
	Repository[models.Conversation, models.ConversationFilter]
	Touch(ctx context.Context, conversationID uint) error
}

// MessageRepository defines operations for messages
type MessageRepository interface {
	Repository[models.Message, models.MessageFilter]
	LastByConversation(ctx context.Context, conversationID uint) (*models.Message, error)
	CountUnreadInConversation(ctx context.Context, conversationID, participantID uint) (int64, error)
	CountUnreadForParticipant(ctx context.Context, participantID uint) (int64, error)
	CountReceivedForParticipant(ctx context.Context, participantID uint) (int64, error)
	MarkRead(ctx context.Context, messageID, readerID uint) (bool, error)
}

// NotificationRepository defines operations for notifications
type NotificationRepository interface {
	Repository[models.Notification, models.NotificationFilter]
	MarkRead(ctx context.Context, notificationID, accountID uint) (bool, error)
	MarkAllRead(ctx context.Context, accountID uint) error
	CountUnread(ctx context.Context, accountID uint) (int64, error)
}

// ProjectCategoryRepository defines operations for project categories
type ProjectCategoryRepository interface {
	Repository[models.ProjectCategory, models.ProjectCategoryFilter]
	BySlug(ctx context.Context, slug string) (*models.ProjectCategory, error)
}

// ProjectRepository defines operations for portfolio projects
type ProjectRepository interface {
	Repository[models.Project, models.ProjectFilter]
	BySlug(ctx context.Context, slug string) (*models.Project, error)
	IncrementViews(ctx context.Context, projectID uint) error
}

// ProjectTestimonialRepository defines operations for project testimonials
type ProjectTestimonialRepository interface {
	Repository[models.ProjectTestimonial, models.ProjectTestimonialFilter]
}

// HeroSectionRepository defines operations for hero sections
type HeroSectionRepository interface {
	Repository[models.HeroSection, models.HeroSectionFilter]
}

// ServiceRepository defines operations for service entries
type ServiceRepository interface {
	Repository[models.Service, models.ServiceFilter]
}

// TeamMemberRepository defines operations for team members
type TeamMemberRepository interface {
	Repository[models.TeamMember, models.TeamMemberFilter]
}

// AboutSectionRepository defines operations for about sections
type AboutSectionRepository interface {
	Repository[models.AboutSection, models.AboutSectionFilter]
}

// ContactInfoRepository defines operations for contact info records
type ContactInfoRepository interface {
	Repository[models.ContactInfo, models.ContactInfoFilter]
}

// ContactMessageRepository defines operations for contact form submissions
type ContactMessageRepository interface {
	Repository[models.ContactMessage, models.ContactMessageFilter]
	MarkRead(ctx context.Context, messageID uint) error
}

// SiteSettingRepository defines operations for site settings
type SiteSettingRepository interface {
	Repository[models.SiteSetting, models.SiteSettingFilter]
	ByKey(ctx context.Context, key string) (*models.SiteSetting, error)
}
