package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bookreview-backend/internal/domains/user/model"
	"bookreview-backend/pkg/jwt"
)

// fakeUserRepo is an in-memory UserRepository.
type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return model.ErrEmailTaken
		}
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *model.User) error {
	stored, ok := f.users[user.ID]
	if !ok {
		return model.ErrUserNotFound
	}
	stored.Username = user.Username
	stored.Email = user.Email
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	stored, ok := f.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	stored.Password = passwordHash
	return nil
}

func newTestService() (ServiceInterface, *fakeUserRepo) {
	repo := newFakeUserRepo()
	tokens := jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
	return NewUserService(repo, tokens), repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		ID:       uuid.New(),
		Email:    email,
		Username: username,
		Password: string(hash),
	}
	repo.users[user.ID] = user
	return user
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestService()

		resp, err := svc.Register(ctx, model.RegisterRequest{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "correct horse",
			Password2: "correct horse",
		})
		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Username)
		assert.NotEqual(t, uuid.Nil, resp.ID)

		// The stored password is a bcrypt hash, never the plaintext.
		stored := repo.users[resp.ID]
		assert.NotEqual(t, "correct horse", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("correct horse")))
	})

	t.Run("password mismatch", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Register(ctx, model.RegisterRequest{
			Username:  "alice",
			Email:     "alice@example.com",
			Password:  "correct horse",
			Password2: "battery staple",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Password fields didn't match!")
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc, repo := newTestService()
		seedUser(t, repo, "alice", "alice@example.com", "irrelevant1")

		_, err := svc.Register(ctx, model.RegisterRequest{
			Username:  "alice2",
			Email:     "alice@example.com",
			Password:  "correct horse",
			Password2: "correct horse",
		})
		assert.ErrorIs(t, err, model.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token pair", func(t *testing.T) {
		svc, repo := newTestService()
		seedUser(t, repo, "alice", "alice@example.com", "correct horse")

		pair, err := svc.Login(ctx, model.LoginRequest{Email: "alice@example.com", Password: "correct horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, pair.Access)
		assert.NotEmpty(t, pair.Refresh)
		assert.NotEqual(t, pair.Access, pair.Refresh)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newTestService()
		seedUser(t, repo, "alice", "alice@example.com", "correct horse")

		_, err := svc.Login(ctx, model.LoginRequest{Email: "alice@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Login(ctx, model.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})
}

func TestRefreshAndVerify(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()
	seedUser(t, repo, "alice", "alice@example.com", "correct horse")

	pair, err := svc.Login(ctx, model.LoginRequest{Email: "alice@example.com", Password: "correct horse"})
	require.NoError(t, err)

	t.Run("refresh token yields a new access token", func(t *testing.T) {
		resp, err := svc.Refresh(ctx, pair.Refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Access)
	})

	t.Run("access token is rejected as refresh", func(t *testing.T) {
		_, err := svc.Refresh(ctx, pair.Access)
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("verify accepts both token types", func(t *testing.T) {
		assert.NoError(t, svc.Verify(pair.Access))
		assert.NoError(t, svc.Verify(pair.Refresh))
		assert.Error(t, svc.Verify("garbage"))
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()

	req := model.ChangePasswordRequest{
		OldPassword: "correct horse",
		Password:    "battery staple",
		Password2:   "battery staple",
	}

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestService()
		user := seedUser(t, repo, "alice", "alice@example.com", "correct horse")

		require.NoError(t, svc.ChangePassword(ctx, user.ID, "alice", req))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[user.ID].Password), []byte("battery staple")))
	})

	t.Run("wrong old password", func(t *testing.T) {
		svc, repo := newTestService()
		user := seedUser(t, repo, "alice", "alice@example.com", "correct horse")

		bad := req
		bad.OldPassword = "not it"
		assert.ErrorIs(t, svc.ChangePassword(ctx, user.ID, "alice", bad), model.ErrWrongOldPassword)
	})

	t.Run("caller may only change their own password", func(t *testing.T) {
		svc, repo := newTestService()
		seedUser(t, repo, "alice", "alice@example.com", "correct horse")
		mallory := seedUser(t, repo, "mallory", "mallory@example.com", "sneaky pass")

		assert.ErrorIs(t, svc.ChangePassword(ctx, mallory.ID, "alice", req), model.ErrNotSelf)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := newTestService()
		user := seedUser(t, repo, "alice", "alice@example.com", "correct horse")

		resp, err := svc.UpdateProfile(ctx, user.ID, "alice", model.UpdateProfileRequest{Username: "alice2"})
		require.NoError(t, err)
		assert.Equal(t, "alice2", resp.Username)
		assert.Equal(t, "alice@example.com", resp.Email)
		assert.Equal(t, "alice2", repo.users[user.ID].Username)
	})

	t.Run("caller may only edit their own profile", func(t *testing.T) {
		svc, repo := newTestService()
		seedUser(t, repo, "alice", "alice@example.com", "correct horse")
		mallory := seedUser(t, repo, "mallory", "mallory@example.com", "sneaky pass")

		_, err := svc.UpdateProfile(ctx, mallory.ID, "alice", model.UpdateProfileRequest{Email: "mallory@example.com"})
		assert.ErrorIs(t, err, model.ErrNotSelf)
	})
}
