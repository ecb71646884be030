package user

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository is an in-memory Repository. The mutex around createUser
// mirrors the unique email index: the loser of a concurrent registration gets
// ErrEmailAlreadyExists.
type mockRepository struct {
	mu    sync.Mutex
	users map[string]*User
	err   error
}

func newMockRepository() *mockRepository {
	return &mockRepository{users: make(map[string]*User)}
}

func (m *mockRepository) createUser(_ context.Context, user *User) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrEmailAlreadyExists
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *mockRepository) getUserByEmail(_ context.Context, email string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) getUserByID(_ context.Context, id string) (*User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) updateTheme(_ context.Context, userID, theme string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	user.Theme = theme
	return nil
}

func (m *mockRepository) listUsers(_ context.Context) ([]User, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	users := make([]User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, *user)
	}
	return users, nil
}

func TestRegister(t *testing.T) {
	service := NewUserService(newMockRepository())

	user, err := service.Register(context.Background(), "John", "john@example.com", "password123")
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "John", user.Name)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, ThemeLight, user.Theme)
	assert.NotEqual(t, "password123", user.PasswordHash, "password must never be stored in plain text")
}

func TestRegisterDefaultsNameFromEmail(t *testing.T) {
	service := NewUserService(newMockRepository())

	user, err := service.Register(context.Background(), "  ", "john@example.com", "password123")
	require.NoError(t, err)

	assert.Equal(t, "john", user.Name)
}

func TestRegisterValidation(t *testing.T) {
	service := NewUserService(newMockRepository())
	ctx := context.Background()

	_, err := service.Register(ctx, "John", "not-an-email", "password123")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = service.Register(ctx, "John", "john@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewUserService(newMockRepository())
	ctx := context.Background()

	_, err := service.Register(ctx, "John", "john@example.com", "password123")
	require.NoError(t, err)

	_, err = service.Register(ctx, "Johnny", "JOHN@example.com", "password456")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	service := NewUserService(newMockRepository())
	ctx := context.Background()

	registered, err := service.Register(ctx, "John", "john@example.com", "password123")
	require.NoError(t, err)

	user, err := service.Authenticate(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestAuthenticateDoesNotRevealWhichCredentialFailed(t *testing.T) {
	service := NewUserService(newMockRepository())
	ctx := context.Background()

	_, err := service.Register(ctx, "John", "john@example.com", "password123")
	require.NoError(t, err)

	_, wrongPassword := service.Authenticate(ctx, "john@example.com", "wrongpass")
	_, unknownEmail := service.Authenticate(ctx, "nobody@example.com", "password123")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestUpdateTheme(t *testing.T) {
	service := NewUserService(newMockRepository())
	ctx := context.Background()

	user, err := service.Register(ctx, "John", "john@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, service.UpdateTheme(ctx, user.ID, ThemeDark))

	updated, err := service.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, updated.Theme)
}

func TestUpdateThemeValidation(t *testing.T) {
	service := NewUserService(newMockRepository())

	err := service.UpdateTheme(context.Background(), "any-id", "neon")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestGetUserByIDNotFound(t *testing.T) {
	service := NewUserService(newMockRepository())

	_, err := service.GetUserByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	service := NewUserService(newMockRepository())
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.Register(ctx, "John", "john@example.com", "password123")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	}
	assert.Equal(t, 1, successes, "exactly one registration may win")
}
