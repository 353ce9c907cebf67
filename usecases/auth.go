package usecases

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"recipe-api/cache"
	"recipe-api/entities"
	"recipe-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase struct {
	UserRepo  repositories.UserRepository
	TokenRepo repositories.TokenRepository
	Cache     *cache.TokenCache
	TokenTTL  time.Duration
}

func NewAuthUseCase(userRepo repositories.UserRepository, tokenRepo repositories.TokenRepository, tokenCache *cache.TokenCache, tokenTTL time.Duration) *AuthUseCase {
	return &AuthUseCase{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Cache:     tokenCache,
		TokenTTL:  tokenTTL,
	}
}

// IssueToken exchanges credentials for an opaque bearer token. Every failure
// mode returns the same ErrInvalidCredentials so callers cannot tell which
// accounts exist.
func (uc *AuthUseCase) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := uc.UserRepo.GetByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()

	// Reuse a live token; replace any expired ones.
	if token, err := uc.TokenRepo.GetLiveByUserID(user.ID, now); err == nil {
		return token.Key, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	if err := uc.TokenRepo.DeleteByUserID(user.ID); err != nil {
		return "", err
	}

	key, err := generateTokenKey()
	if err != nil {
		return "", err
	}
	token := &entities.AuthToken{
		Key:       key,
		UserID:    user.ID,
		ExpiresAt: now.Add(uc.TokenTTL),
	}
	if err := uc.TokenRepo.Create(token); err != nil {
		return "", err
	}

	_ = uc.Cache.SetToken(ctx, token.Key, user.ID, token.ExpiresAt)
	return token.Key, nil
}

// Resolve maps a bearer token key to the active user it belongs to.
func (uc *AuthUseCase) Resolve(ctx context.Context, key string) (*entities.User, error) {
	userID, expiresAt, ok := uc.Cache.GetToken(ctx, key)
	if !ok {
		token, err := uc.TokenRepo.GetByKey(key)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		userID, expiresAt = token.UserID, token.ExpiresAt
		_ = uc.Cache.SetToken(ctx, key, userID, expiresAt)
	}

	if !expiresAt.After(time.Now()) {
		_ = uc.Cache.DeleteToken(ctx, key)
		return nil, ErrInvalidCredentials
	}

	user, ok := uc.Cache.GetUser(ctx, userID)
	if !ok {
		var err error
		user, err = uc.UserRepo.GetByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrInvalidCredentials
			}
			return nil, err
		}
		_ = uc.Cache.SetUser(ctx, user)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// generateTokenKey returns a 40-hex-char random key.
func generateTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
