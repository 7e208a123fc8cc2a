package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

// Register creates an account. The first account becomes the administrator.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (entity.AuthResult, error) {
	email = NormalizeEmail(email)
	fullName = strings.TrimSpace(fullName)

	err := ValidateRegistration(email, password, fullName)
	if err != nil {
		return entity.AuthResult{}, err
	}

	_, err = s.repo.UserByEmail(ctx, email)
	if err == nil {
		return entity.AuthResult{}, fmt.Errorf("user %s: %w", email, entity.ErrAlreadyExists)
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}

	count, err := s.repo.CountUsers(ctx)
	if err != nil {
		return entity.AuthResult{}, fmt.Errorf("count users: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Email:        email,
		FullName:     fullName,
		Role:         entity.RoleUser,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}

	if count == 0 {
		user.Role = entity.RoleAdmin
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		return entity.AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	s.saveAttempt(ctx, entity.AttemptTypeRegister, email, true)

	token, err := s.generateToken(user)
	if err != nil {
		return entity.AuthResult{}, err
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)

	return entity.AuthResult{User: user, Token: token}, nil
}

// Login checks the credentials. After MaxAttempts failures inside the window
// further attempts are refused with a RateLimitError until the oldest
// counted failure leaves the window.
func (s *Service) Login(ctx context.Context, email, password string) (entity.AuthResult, error) {
	email = NormalizeEmail(email)

	if email == "" || password == "" {
		return entity.AuthResult{}, entity.NewValidationError(nil, "email", "E-mail e senha são obrigatórios")
	}

	err := s.checkLoginAttempts(ctx, email)
	if err != nil {
		return entity.AuthResult{}, err
	}

	user, err := s.repo.UserByEmail(ctx, email)
	if errors.Is(err, entity.ErrNotFound) {
		s.saveAttempt(ctx, entity.AttemptTypeLogin, email, false)
		return entity.AuthResult{}, entity.ErrInvalidCredentials
	}

	if err != nil {
		return entity.AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		s.saveAttempt(ctx, entity.AttemptTypeLogin, email, false)
		return entity.AuthResult{}, entity.ErrInvalidCredentials
	}

	err = s.repo.ClearFailedAttempts(ctx, email, entity.AttemptTypeLogin)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("clear failed attempts: %s", err), "email", email)
	}

	s.saveAttempt(ctx, entity.AttemptTypeLogin, email, true)

	token, err := s.generateToken(user)
	if err != nil {
		return entity.AuthResult{}, err
	}

	return entity.AuthResult{User: user, Token: token}, nil
}

func (s *Service) checkLoginAttempts(ctx context.Context, email string) error {
	if s.login.MaxAttempts <= 0 {
		return nil
	}

	now := s.now()

	attempts, err := s.repo.FailedAttempts(ctx, email, entity.AttemptTypeLogin, now.Add(-s.login.Window))
	if err != nil {
		return fmt.Errorf("get failed attempts: %w", err)
	}

	if len(attempts) < s.login.MaxAttempts {
		return nil
	}

	// attempts are newest first
	freedAt := attempts[s.login.MaxAttempts-1].CreatedAt.Add(s.login.Window)
	retryAfter := max(int(math.Ceil(freedAt.Sub(now).Seconds())), 1)

	slog.WarnContext(ctx, "login blocked", "email", email, "ip", entity.IPFromContext(ctx), "retry_after", retryAfter)

	return &entity.RateLimitError{RetryAfter: retryAfter, Err: entity.ErrTooManyAttempts}
}

func (s *Service) saveAttempt(ctx context.Context, t entity.AttemptType, email string, success bool) {
	err := s.repo.SaveAttempt(ctx, entity.Attempt{
		ID:        uuid.Must(uuid.NewV4()),
		Type:      t,
		Email:     email,
		IPAddress: entity.IPFromContext(ctx),
		Success:   success,
		CreatedAt: s.now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("save attempt: %s", err), "email", email, "type", t)
	}
}

func (s *Service) generateToken(user entity.User) (string, error) {
	now := s.now()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256,
		entity.UserJwtClaims{
			User: entity.UserJwtInfo{
				ID:       user.ID,
				Email:    user.Email,
				FullName: user.FullName,
				Role:     user.Role,
			},
			RegisteredClaims: jwt.RegisteredClaims{
				ID:        uuid.Must(uuid.NewV4()).String(),
				Subject:   user.ID.String(),
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(now.Add(s.jwt.TTL)),
			},
		}).SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return token, nil
}

func (s *Service) ValidateToken(_ context.Context, accessToken string) (entity.User, error) {
	var claims entity.UserJwtClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.jwt.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.User{}, fmt.Errorf("token expired: %w", entity.ErrTokenExpired)
		}

		return entity.User{}, fmt.Errorf("parse access token: %w: %w", entity.ErrInvalidToken, err)
	}

	if !token.Valid || claims.User.ID.IsNil() {
		return entity.User{}, fmt.Errorf("invalid access token: %w", entity.ErrInvalidToken)
	}

	return entity.User{
		ID:       claims.User.ID,
		Email:    claims.User.Email,
		FullName: claims.User.FullName,
		Role:     claims.User.Role,
	}, nil
}
