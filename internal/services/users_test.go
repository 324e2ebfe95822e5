package services

import (
	"context"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/dreamjob/internal/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockUserRepository struct {
	users  map[string]entities.User
	nextID int
	fault  error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: map[string]entities.User{}}
}

func (m *mockUserRepository) Save(_ context.Context, user entities.User) (*entities.User, error) {
	if m.fault != nil {
		return nil, m.fault
	}
	if _, taken := m.users[user.Email]; taken {
		return nil, nil
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Email] = user
	return &user, nil
}

func (m *mockUserRepository) FindByEmailAndPassword(_ context.Context, email, password string) (*entities.User, error) {
	if m.fault != nil {
		return nil, m.fault
	}
	user, ok := m.users[email]
	if !ok || user.Password != password {
		return nil, nil
	}
	return &user, nil
}

func (m *mockUserRepository) FindAll(_ context.Context) ([]entities.User, error) {
	if m.fault != nil {
		return nil, m.fault
	}
	var all []entities.User
	for _, user := range m.users {
		all = append(all, user)
	}
	return all, nil
}

func Test_Register_ThenLogin(t *testing.T) {
	service := NewUserService(newMockUserRepository(), EventBus.New())

	user, err := service.Register(context.Background(), "user1@mail.ru", "user1", "password1")
	require.NoError(t, err)
	assert.Greater(t, user.ID, 0)

	loggedIn, err := service.Login(context.Background(), "user1@mail.ru", "password1")
	require.NoError(t, err)
	assert.Equal(t, user, loggedIn)
}

func Test_Register_TakenEmail(t *testing.T) {
	service := NewUserService(newMockUserRepository(), EventBus.New())

	_, err := service.Register(context.Background(), "user1@mail.ru", "user1", "password1")
	require.NoError(t, err)

	_, err = service.Register(context.Background(), "user1@mail.ru", "user2", "password2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func Test_Register_InvalidEmail(t *testing.T) {
	service := NewUserService(newMockUserRepository(), EventBus.New())

	_, err := service.Register(context.Background(), "not-an-email", "user1", "password1")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func Test_Register_StoreFaultIsNotCoercedIntoDuplicate(t *testing.T) {
	repo := newMockUserRepository()
	repo.fault = errors.New("connection lost")
	service := NewUserService(repo, EventBus.New())

	_, err := service.Register(context.Background(), "user1@mail.ru", "user1", "password1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailTaken)
}

func Test_Login_WrongCredentials(t *testing.T) {
	service := NewUserService(newMockUserRepository(), EventBus.New())

	_, err := service.Register(context.Background(), "user1@mail.ru", "user1", "password1")
	require.NoError(t, err)

	_, err = service.Login(context.Background(), "user1@mail.ru", "wrong")
	assert.ErrorIs(t, err, ErrWrongCredentials)

	_, err = service.Login(context.Background(), "unknown@mail.ru", "password1")
	assert.ErrorIs(t, err, ErrWrongCredentials)
}
