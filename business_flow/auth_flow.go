package businessflow

import (
	"context"
	"strings"

	"github.com/arkasoft/arka-portal/app/dto"
	"github.com/arkasoft/arka-portal/app/services"
	"github.com/arkasoft/arka-portal/models"
	"github.com/arkasoft/arka-portal/repository"
	"github.com/arkasoft/arka-portal/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthFlow defines account registration, login and self-service operations
type AuthFlow interface {
	Register(ctx context.Context, req *dto.RegisterRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	GetProfile(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest, metadata *ClientMetadata) (*dto.ProfileResponse, error)
	ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest, metadata *ClientMetadata) (*dto.ChangePasswordResponse, error)
	ToggleLanguage(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.ToggleLanguageResponse, error)
	GetStats(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.AccountStatsResponse, error)
}

// AuthFlowImpl implements AuthFlow
type AuthFlowImpl struct {
	accountRepo      repository.AccountRepository
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	tokenService     services.TokenService
}

func NewAuthFlow(
	accountRepo repository.AccountRepository,
	conversationRepo repository.ConversationRepository,
	messageRepo repository.MessageRepository,
	tokenService services.TokenService,
) AuthFlow {
	return &AuthFlowImpl{
		accountRepo:      accountRepo,
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
		tokenService:     tokenService,
	}
}

func (f *AuthFlowImpl) Register(ctx context.Context, req *dto.RegisterRequest, metadata *ClientMetadata) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := f.accountRepo.ByEmail(ctx, email)
	if err != nil {
		return nil, NewBusinessError("REGISTRATION_FAILED", "Failed to check email uniqueness", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewBusinessError("REGISTRATION_FAILED", "Failed to hash password", err)
	}

	account := models.Account{
		Email:             email,
		PasswordHash:      string(hash),
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		Phone:             req.Phone,
		CompanyName:       req.CompanyName,
		Role:              models.RoleCustomer,
		PreferredLanguage: req.PreferredLanguage,
	}

	if err := f.accountRepo.Save(ctx, &account); err != nil {
		return nil, NewBusinessError("REGISTRATION_FAILED", "Failed to create account", err)
	}

	session, err := f.issueSession(account)
	if err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Message: "Account created successfully",
		Account: ToAuthAccountDTO(account),
		Session: session,
	}, nil
}

func (f *AuthFlowImpl) Login(ctx context.Context, req *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	account, err := f.accountRepo.ByEmail(ctx, email)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Failed to load account", err)
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if !utils.IsTrue(account.IsActive) {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrIncorrectPassword
	}

	session, err := f.issueSession(*account)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Account: ToAuthAccountDTO(*account),
		Session: session,
	}, nil
}

func (f *AuthFlowImpl) GetProfile(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.ProfileResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, accountID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		Message: "Profile retrieved successfully",
		Account: ToAuthAccountDTO(*account),
	}, nil
}

func (f *AuthFlowImpl) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest, metadata *ClientMetadata) (*dto.ProfileResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		account.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		account.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		account.Phone = req.Phone
	}
	if req.CompanyName != nil {
		account.CompanyName = req.CompanyName
	}
	account.UpdatedAt = utils.UTCNow()

	if err := f.accountRepo.Update(ctx, account); err != nil {
		return nil, NewBusinessError("PROFILE_UPDATE_FAILED", "Failed to update profile", err)
	}

	return &dto.ProfileResponse{
		Message: "Profile updated successfully",
		Account: ToAuthAccountDTO(*account),
	}, nil
}

func (f *AuthFlowImpl) ChangePassword(ctx context.Context, req *dto.ChangePasswordRequest, metadata *ClientMetadata) (*dto.ChangePasswordResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, req.AccountID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, ErrIncorrectPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewBusinessError("PASSWORD_CHANGE_FAILED", "Failed to hash password", err)
	}

	if err := f.accountRepo.UpdatePassword(ctx, account.ID, string(hash)); err != nil {
		return nil, NewBusinessError("PASSWORD_CHANGE_FAILED", "Failed to store new password", err)
	}

	return &dto.ChangePasswordResponse{Message: "Password changed successfully"}, nil
}

// ToggleLanguage flips the durable account locale between the two supported
// values. No other value can ever come out of the toggle.
func (f *AuthFlowImpl) ToggleLanguage(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.ToggleLanguageResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	next := utils.ToggleLocale(account.PreferredLanguage)
	if err := f.accountRepo.UpdateLanguage(ctx, account.ID, next); err != nil {
		return nil, NewBusinessError("LANGUAGE_TOGGLE_FAILED", "Failed to persist language", err)
	}

	return &dto.ToggleLanguageResponse{
		Message:           "Language updated successfully",
		PreferredLanguage: next,
	}, nil
}

func (f *AuthFlowImpl) GetStats(ctx context.Context, accountID uint, metadata *ClientMetadata) (*dto.AccountStatsResponse, error) {
	account, err := getAccount(ctx, f.accountRepo, accountID)
	if err != nil {
		return nil, err
	}

	unread, err := f.messageRepo.CountUnreadForParticipant(ctx, account.ID)
	if err != nil {
		return nil, NewBusinessError("STATS_FAILED", "Failed to count unread messages", err)
	}
	total, err := f.messageRepo.CountReceivedForParticipant(ctx, account.ID)
	if err != nil {
		return nil, NewBusinessError("STATS_FAILED", "Failed to count received messages", err)
	}
	conversations, err := f.conversationRepo.Count(ctx, models.ConversationFilter{ParticipantID: &account.ID})
	if err != nil {
		return nil, NewBusinessError("STATS_FAILED", "Failed to count conversations", err)
	}

	return &dto.AccountStatsResponse{
		Message:          "Stats retrieved successfully",
		Role:             account.Role,
		IsVerified:       utils.IsTrue(account.IsVerified),
		TotalReceived:    total,
		UnreadMessages:   unread,
		ConversationsNum: conversations,
	}, nil
}

func (f *AuthFlowImpl) issueSession(account models.Account) (dto.SessionDTO, error) {
	access, refresh, err := f.tokenService.GenerateTokens(account.ID, account.Role)
	if err != nil {
		return dto.SessionDTO{}, NewBusinessError("TOKEN_ISSUE_FAILED", "Failed to issue tokens", err)
	}
	return dto.SessionDTO{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(utils.AccessTokenTTL.Seconds()),
		TokenType:    "Bearer",
	}, nil
}
