package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub_backend/internal/auth"
	"internhub_backend/internal/email"
	"internhub_backend/internal/logger"
	"internhub_backend/internal/models"
	"internhub_backend/internal/repositories"
	"internhub_backend/internal/services/dto"
	"internhub_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(refreshToken string) (*dto.AuthResponse, error)
	Logout(userID string) error
	VerifyEmail(token string) error
	ForgotPassword(emailAddr string) error
	ResetPassword(token, password string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	subRepo     repositories.SubscriptionRepository
	issuer      *auth.TokenIssuer
	mailer      email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	subRepo repositories.SubscriptionRepository,
	issuer *auth.TokenIssuer,
	mailer email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		subRepo:     subRepo,
		issuer:      issuer,
		mailer:      mailer,
	}
}

func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	switch req.Role {
	case models.UserRoleCandidate, models.UserRoleIndustry, models.UserRoleInstitute:
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:      hash,
		Role:              req.Role,
		Status:            models.UserStatusPending,
		VerificationToken: randomToken(),
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.createProfile(user, req); err != nil {
		// Best effort rollback, the account is useless without a profile.
		_ = s.userRepo.Delete(user.ID)
		return nil, err
	}

	if err := s.mailer.SendVerification(user.Email, user.VerificationToken); err != nil {
		logger.Error("verification mail failed", "user_id", user.ID, "error", err)
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) createProfile(user *models.User, req *dto.RegisterRequest) error {
	switch user.Role {
	case models.UserRoleIndustry:
		if strings.TrimSpace(req.CompanyName) == "" {
			return apperrors.NewBadRequestError("company_name is required for industry accounts")
		}
		profile := &models.IndustryProfile{
			UserID:      user.ID,
			CompanyName: strings.TrimSpace(req.CompanyName),
			AnonymousID: newAnonymousID(),
			City:        req.City,
		}
		if err := s.profileRepo.CreateIndustry(profile); err != nil {
			return apperrors.InternalError(err)
		}
	case models.UserRoleInstitute:
		if strings.TrimSpace(req.InstituteName) == "" {
			return apperrors.NewBadRequestError("institute_name is required for institute accounts")
		}
		profile := &models.InstituteProfile{
			UserID: user.ID,
			Name:   strings.TrimSpace(req.InstituteName),
			City:   req.City,
		}
		if err := s.profileRepo.CreateInstitute(profile); err != nil {
			return apperrors.InternalError(err)
		}
	case models.UserRoleCandidate:
		profile := &models.CandidateProfile{
			UserID:    user.ID,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			City:      req.City,
			IsPublic:  true,
		}
		if err := s.profileRepo.CreateCandidate(profile); err != nil {
			return apperrors.InternalError(err)
		}
	}
	return nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if user.PasswordHash == "" || !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch user.Status {
	case models.UserStatusSuspended:
		return nil, apperrors.ErrUserSuspended
	case models.UserStatusBanned:
		return nil, apperrors.ErrUserBanned
	}

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Refresh(refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	// Rotate: the old token dies with the refresh.
	_ = s.userRepo.DeleteRefreshToken(refreshToken)

	return s.issueTokens(user)
}

func (s *AuthServiceImpl) Logout(userID string) error {
	if err := s.userRepo.DeleteUserRefreshTokens(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) VerifyEmail(token string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ForgotPassword(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		// Do not leak which emails exist.
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}

	user.ResetToken = randomToken()
	exp := time.Now().Add(time.Hour)
	user.ResetTokenExp = &exp
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.mailer.SendPasswordReset(user.Email, user.ResetToken); err != nil {
		logger.Error("reset mail failed", "user_id", user.ID, "error", err)
	}
	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, password string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if user.ResetTokenExp == nil || user.ResetTokenExp.Before(time.Now()) {
		return apperrors.ErrInvalidToken
	}
	if err := auth.ValidatePassword(password); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExp = nil
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	// Every session dies with the password.
	return s.Logout(user.ID)
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	premium := s.resolvePremium(user)
	user.IsPremium = premium

	accessToken, err := s.issuer.Generate(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     randomToken(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		UserID:       user.ID,
		Role:         user.Role,
		Premium:      premium,
	}, nil
}

// resolvePremium treats the user flag and an active subscription as equally
// authoritative. The expiry worker keeps them converging.
func (s *AuthServiceImpl) resolvePremium(user *models.User) bool {
	if user.HasActivePremium(time.Now()) {
		return true
	}
	if s.subRepo == nil {
		return false
	}
	sub, err := s.subRepo.FindActiveByUserID(user.ID)
	return err == nil && sub != nil
}

func randomToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}

// newAnonymousID mints a stable identifier used to build the redacted company
// label, see policy.DiscloseCompanyName.
func newAnonymousID() string {
	return "IND-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
