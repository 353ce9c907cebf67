package usecases

import (
	"context"
	"errors"
	"strings"

	"recipe-api/cache"
	"recipe-api/entities"
	"recipe-api/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUseCase struct {
	UserRepo   repositories.UserRepository
	Cache      *cache.TokenCache
	BcryptCost int
}

func NewUserUseCase(userRepo repositories.UserRepository, tokenCache *cache.TokenCache, bcryptCost int) *UserUseCase {
	return &UserUseCase{
		UserRepo:   userRepo,
		Cache:      tokenCache,
		BcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// ProfileInput updates the caller's own account. Nil fields are left
// untouched on a partial update.
type ProfileInput struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
}

// Register creates a new active account with a bcrypt-hashed credential.
func (uc *UserUseCase) Register(in RegisterInput) (*entities.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	if len(in.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if _, err := uc.UserRepo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		Name:         in.Name,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := uc.UserRepo.Create(user); err != nil {
		// The pre-check races with concurrent registrations; the unique
		// index on email is the final arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// CreateSuperuser creates a staff account. Used by the admin-setup command.
func (uc *UserUseCase) CreateSuperuser(email, name, password string) (*entities.User, error) {
	user, err := uc.Register(RegisterInput{Email: email, Password: password, Name: name})
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	if err := uc.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile returns the account for an authenticated user id.
func (uc *UserUseCase) GetProfile(userID string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return user, err
}

// UpdateProfile applies a full or partial update to the caller's account and
// invalidates the cached auth snapshot.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in ProfileInput, partial bool) (*entities.User, error) {
	user, err := uc.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if !partial && in.Email == nil {
		return nil, ErrEmailRequired
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return nil, ErrEmailRequired
		}
		if email != user.Email {
			if _, err := uc.UserRepo.GetByEmail(email); err == nil {
				return nil, ErrEmailTaken
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), uc.BcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := uc.UserRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	// On cache failure the snapshot stays stale for at most the cache TTL.
	_ = uc.Cache.InvalidateUser(ctx, user.ID)
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
