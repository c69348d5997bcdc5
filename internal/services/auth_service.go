package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/ArowuTest/community-center-backend/internal/config"
	"github.com/ArowuTest/community-center-backend/internal/content"
	"github.com/ArowuTest/community-center-backend/internal/models"
	"github.com/ArowuTest/community-center-backend/pkg/jwt"
	"go.uber.org/zap"
)

const (
	// AdminPage is the content document holding the admin password.
	AdminPage = "admin"
	// PasswordField is the document field storing the password.
	PasswordField = "password"

	minPasswordLength = 6
)

// AuthService handles the single admin account
type AuthService struct {
	content ContentStore
	tokens  *jwt.AdminTokenService
	cfg     config.AdminConfig
	logger  *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(store ContentStore, tokens *jwt.AdminTokenService, cfg config.AdminConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{content: store, tokens: tokens, cfg: cfg, logger: logger}
}

// Login checks the admin credentials and issues a session token when a
// signing secret is configured.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.cfg.Email) || !s.checkPassword(ctx, password) {
		s.logger.Warn("Rejected admin login", zap.String("email", email))
		return nil, models.ErrInvalidCredentials
	}

	result := &models.LoginResult{Success: true}
	if s.tokens != nil && s.tokens.Enabled() {
		token, err := s.tokens.Issue(s.cfg.Email)
		if err != nil {
			return nil, err
		}
		result.Token = token
	}
	s.logger.Info("Admin logged in")
	return result, nil
}

// UpdatePassword replaces the admin password after verifying the current one.
func (s *AuthService) UpdatePassword(ctx context.Context, current, next string) error {
	if !s.checkPassword(ctx, current) {
		return models.ErrInvalidCredentials
	}
	if len(next) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", models.ErrValidation, minPasswordLength)
	}
	res := s.content.SetRootField(ctx, AdminPage, PasswordField, next)
	if !res.Success {
		return errors.New(res.Error)
	}
	s.logger.Info("Admin password updated")
	return nil
}

// storedPassword returns the password from the admin document, or the
// configured default when none is stored.
func (s *AuthService) storedPassword(ctx context.Context) string {
	doc := s.content.Get(ctx, AdminPage)
	if v, ok := content.FromModel(doc).Field(PasswordField); ok {
		if pw, ok := v.(string); ok && pw != "" {
			return pw
		}
	}
	return s.cfg.DefaultPassword
}

func (s *AuthService) checkPassword(ctx context.Context, password string) bool {
	stored := s.storedPassword(ctx)
	return stored != "" && subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
