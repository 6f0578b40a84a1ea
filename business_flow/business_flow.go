// Package businessflow contains the business logic for the application.
package businessflow

import (
	"context"
	"time"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	"github.com/arkasoft/arka-portal/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for audit logging
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// getAccount loads an active account or fails with the matching sentinel
func getAccount(ctx context.Context, repo repository.AccountRepository, accountID uint) (*models.Account, error) {
	account, err := repo.ByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !utils.IsTrue(account.IsActive) {
		return nil, ErrAccountInactive
	}
	return account, nil
}

// getStaff loads an active account and requires a staff role
func getStaff(ctx context.Context, repo repository.AccountRepository, accountID uint) (*models.Account, error) {
	account, err := getAccount(ctx, repo, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsStaff() {
		return nil, ErrStaffOnly
	}
	return account, nil
}

// normalizePage clamps pagination inputs to sane defaults
func normalizePage(page, pageSize uint) (limit, offset int) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 || pageSize > 100 {
		pageSize = 20
	}
	return int(pageSize), int((page - 1) * pageSize)
}

// ToAuthAccountDTO converts an account model for auth and profile responses
func ToAuthAccountDTO(account models.Account) dto.AuthAccountDTO {
	return dto.AuthAccountDTO{
		ID:                account.ID,
		UUID:              account.UUID.String(),
		Email:             account.Email,
		FirstName:         account.FirstName,
		LastName:          account.LastName,
		Phone:             account.Phone,
		CompanyName:       account.CompanyName,
		Role:              account.Role,
		PreferredLanguage: account.PreferredLanguage,
		IsVerified:        account.IsVerified,
		IsActive:          account.IsActive,
		CreatedAt:         account.CreatedAt.Format(time.RFC3339),
	}
}
