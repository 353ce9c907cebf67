package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"recipe-api/cache"
	"recipe-api/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --- fakes ---

type fakeUserRepo struct {
	users     map[string]*entities.User // keyed by id
	byEmail   map[string]*entities.User
	nextID    int
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   map[string]*entities.User{},
		byEmail: map[string]*entities.User{},
	}
}

func (f *fakeUserRepo) Create(user *entities.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	user.ID = fmt.Sprintf("user-%d", f.nextID)
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	if user, ok := f.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*entities.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(user *entities.User) error {
	f.users[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func newUserUseCase(repo *fakeUserRepo) *UserUseCase {
	return NewUserUseCase(repo, cache.New(""), bcrypt.MinCost)
}

// --- tests ---

func TestRegister(t *testing.T) {
	t.Run("creates user with hashed password", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newUserUseCase(repo)

		user, err := uc.Register(RegisterInput{Email: "Test@Example.com", Password: "testpass", Name: "Test Name"})
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "test@example.com", user.Email)
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.NotEqual(t, "testpass", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("testpass")))
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newUserUseCase(repo)

		_, err := uc.Register(RegisterInput{Email: "test@example.com", Password: "testpass"})
		require.NoError(t, err)

		_, err = uc.Register(RegisterInput{Email: "TEST@example.com", Password: "otherpass"})
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Len(t, repo.users, 1)
	})

	t.Run("unique index violation maps to duplicate email", func(t *testing.T) {
		// A concurrent registration can slip past the pre-check and fail
		// on the index instead.
		repo := newFakeUserRepo()
		repo.createErr = gorm.ErrDuplicatedKey
		uc := newUserUseCase(repo)

		_, err := uc.Register(RegisterInput{Email: "test@example.com", Password: "testpass"})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("short password rejected and no user created", func(t *testing.T) {
		repo := newFakeUserRepo()
		uc := newUserUseCase(repo)

		_, err := uc.Register(RegisterInput{Email: "test@example.com", Password: "pw"})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
		assert.Empty(t, repo.users)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		uc := newUserUseCase(newFakeUserRepo())

		_, err := uc.Register(RegisterInput{Email: "   ", Password: "testpass"})
		assert.ErrorIs(t, err, ErrEmailRequired)
	})
}

func TestCreateSuperuser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUserUseCase(repo)

	user, err := uc.CreateSuperuser("admin@example.com", "Admin", "adminpass")
	require.NoError(t, err)

	assert.True(t, user.IsStaff)
	assert.True(t, user.IsActive)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fakeUserRepo, *UserUseCase, *entities.User) {
		repo := newFakeUserRepo()
		uc := newUserUseCase(repo)
		user, err := uc.Register(RegisterInput{Email: "test@example.com", Password: "testpass", Name: "Before"})
		require.NoError(t, err)
		return repo, uc, user
	}

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		_, uc, user := setup(t)

		name := "After"
		updated, err := uc.UpdateProfile(ctx, user.ID, ProfileInput{Name: &name}, true)
		require.NoError(t, err)

		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "test@example.com", updated.Email)
	})

	t.Run("password update re-hashes", func(t *testing.T) {
		_, uc, user := setup(t)

		password := "newpass123"
		updated, err := uc.UpdateProfile(ctx, user.ID, ProfileInput{Password: &password}, true)
		require.NoError(t, err)

		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(password)))
	})

	t.Run("full update requires email", func(t *testing.T) {
		_, uc, user := setup(t)

		name := "After"
		_, err := uc.UpdateProfile(ctx, user.ID, ProfileInput{Name: &name}, false)
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("email collision rejected", func(t *testing.T) {
		_, uc, user := setup(t)
		_, err := uc.Register(RegisterInput{Email: "other@example.com", Password: "testpass"})
		require.NoError(t, err)

		email := "other@example.com"
		_, err = uc.UpdateProfile(ctx, user.ID, ProfileInput{Email: &email}, true)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, uc, _ := setup(t)

		name := "x"
		_, err := uc.UpdateProfile(ctx, "missing", ProfileInput{Name: &name}, true)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
