package user

import (
	"context"
	"encoding/json"
	"time"

	"pharmacart-be/internal/kvstore"
	"pharmacart-be/internal/logger"

	"go.uber.org/zap"
)

const sessionKey = "session"

// Service implements the session/auth stub: register, login, logout and
// profile lookup. The current session is persisted as a single record so
// the app can restore it on restart; checkout and the order archive do
// not depend on it.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Logout(ctx context.Context) error
	GetByID(id uint) (*User, error)
}

type service struct {
	repo      Repository
	kv        kvstore.Repository
	jwtSecret string
}

func NewService(repo Repository, kv kvstore.Repository, jwtSecret string) Service {
	return &service{repo: repo, kv: kv, jwtSecret: jwtSecret}
}

func (s *service) Register(ctx context.Context, name, email, password string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("email", email),
	)

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(name, email, hash)
	if err != nil {
		log.Warn("registration failed", zap.Error(err))
		return nil, err
	}

	log.Info("user registered", zap.Uint("user_id", u.ID))
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, *User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
		zap.String("email", email),
	)

	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		log.Warn("wrong password")
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(s.jwtSecret, u.ID, u.Email)
	if err != nil {
		return "", nil, err
	}

	// Best effort: a failed session write must not block login.
	session := Session{UserID: u.ID, Email: u.Email, IssuedAt: time.Now()}
	if doc, err := json.Marshal(session); err == nil {
		if err := s.kv.Set(ctx, sessionKey, doc); err != nil {
			log.Warn("failed to persist session", zap.Error(err))
		}
	}

	log.Info("user logged in", zap.Uint("user_id", u.ID))
	return token, u, nil
}

func (s *service) Logout(ctx context.Context) error {
	return s.kv.Delete(ctx, sessionKey)
}

func (s *service) GetByID(id uint) (*User, error) {
	return s.repo.GetByID(id)
}
