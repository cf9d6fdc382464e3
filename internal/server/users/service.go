// Package users contains the authentication service: registration, login,
// and token minting on top of the credential store.
package users

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/r2vault/internal/common"
	"github.com/dmitrijs2005/r2vault/internal/server/auth"
	"github.com/dmitrijs2005/r2vault/internal/server/config"
	"github.com/dmitrijs2005/r2vault/internal/server/models"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates an account. Duplicate usernames fail with
// common.ErrorAlreadyExists; empty fields fail with common.ErrorValidation.
// The account creation is the only side effect and happens once, on the
// success path.
func (s *Service) Register(ctx context.Context, username, password, displayName string) (*models.Account, error) {

	if username == "" || password == "" || displayName == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &models.Account{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: hash,
	}

	account, err = s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

// Login verifies the password against the stored hash and, on success,
// returns a signed token whose subject is the username.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {

	if username == "" || password == "" {
		return "", common.ErrorValidation
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return "", common.ErrorInvalidCredential
	}

	token, err := auth.GenerateToken(account.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
