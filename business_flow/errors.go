// Package businessflow contains the core business logic and use cases for the portal
package businessflow

import (
	"errors"
	"fmt"
)

// Business flow error constants
var (
	// Account-related errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrStaffOnly          = errors.New("staff access required")

	// Messaging errors
	ErrConversationNotFound     = errors.New("conversation not found")
	ErrConversationAccessDenied = errors.New("conversation access denied")
	ErrMessageNotFound          = errors.New("message not found")
	ErrMessageAccessDenied      = errors.New("message access denied")
	ErrNotificationNotFound     = errors.New("notification not found")

	// Portfolio errors
	ErrCategoryNotFound    = errors.New("project category not found")
	ErrProjectNotFound     = errors.New("project not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrSlugAlreadyExists   = errors.New("slug already exists")

	// Content errors
	ErrContentNotFound        = errors.New("content record not found")
	ErrContactMessageNotFound = errors.New("contact message not found")
	ErrSettingKeyExists       = errors.New("setting key already exists")

	// Filter errors
	ErrInvalidPage           = errors.New("page must be at least 1")
	ErrInvalidPageSize       = errors.New("page size must be between 1 and 100")
	ErrStartDateAfterEndDate = errors.New("start date cannot be after end date")
)

type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBusinessErrorf(code, message string, err error, args ...any) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: fmt.Sprintf(message, args...),
		Err:     err,
	}
}

func IsAccountNotFound(err error) bool {
	return errors.Is(err, ErrAccountNotFound)
}

func IsAccountInactive(err error) bool {
	return errors.Is(err, ErrAccountInactive)
}

func IsIncorrectPassword(err error) bool {
	return errors.Is(err, ErrIncorrectPassword)
}

func IsEmailAlreadyExists(err error) bool {
	return errors.Is(err, ErrEmailAlreadyExists)
}

func IsStaffOnly(err error) bool {
	return errors.Is(err, ErrStaffOnly)
}

func IsConversationNotFound(err error) bool {
	return errors.Is(err, ErrConversationNotFound)
}

func IsConversationAccessDenied(err error) bool {
	return errors.Is(err, ErrConversationAccessDenied)
}

func IsMessageNotFound(err error) bool {
	return errors.Is(err, ErrMessageNotFound)
}

func IsMessageAccessDenied(err error) bool {
	return errors.Is(err, ErrMessageAccessDenied)
}

func IsNotificationNotFound(err error) bool {
	return errors.Is(err, ErrNotificationNotFound)
}

func IsCategoryNotFound(err error) bool {
	return errors.Is(err, ErrCategoryNotFound)
}

func IsProjectNotFound(err error) bool {
	return errors.Is(err, ErrProjectNotFound)
}

func IsTestimonialNotFound(err error) bool {
	return errors.Is(err, ErrTestimonialNotFound)
}

func IsSlugAlreadyExists(err error) bool {
	return errors.Is(err, ErrSlugAlreadyExists)
}

func IsContentNotFound(err error) bool {
	return errors.Is(err, ErrContentNotFound)
}

func IsContactMessageNotFound(err error) bool {
	return errors.Is(err, ErrContactMessageNotFound)
}

func IsSettingKeyExists(err error) bool {
	return errors.Is(err, ErrSettingKeyExists)
}

func IsInvalidPage(err error) bool {
	return errors.Is(err, ErrInvalidPage)
}

func IsInvalidPageSize(err error) bool {
	return errors.Is(err, ErrInvalidPageSize)
}

func IsStartDateAfterEndDate(err error) bool {
	return errors.Is(err, ErrStartDateAfterEndDate)
}
