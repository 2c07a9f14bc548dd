package auth_test

import (
	"context"
	"fmt"
	"sync"

	auth "github.com/goliatone/sample-auth-api"
	"github.com/stretchr/testify/mock"
)

// MockUsers implements auth.Users
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) FindByUsernameOrEmail(ctx context.Context, identifier string) (*auth.User, error) {
	args := m.Called(ctx, identifier)
	user, _ := args.Get(0).(*auth.User)
	return user, args.Error(1)
}

func (m *MockUsers) FindForRegistration(ctx context.Context, email, username string) (*auth.User, *auth.User, error) {
	args := m.Called(ctx, email, username)
	byEmail, _ := args.Get(0).(*auth.User)
	byUsername, _ := args.Get(1).(*auth.User)
	return byEmail, byUsername, args.Error(2)
}

func (m *MockUsers) Register(ctx context.Context, user *auth.User) (*auth.User, error) {
	args := m.Called(ctx, user)
	record, _ := args.Get(0).(*auth.User)
	return record, args.Error(1)
}

// MockTokenService implements auth.TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(user *auth.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

// testLogger records what the flows report so tests can assert that
// internal detail lands in the sink and not in the envelope
type testLogger struct {
	errors []string
}

func (l *testLogger) Debug(format string, args ...any) {}
func (l *testLogger) Info(format string, args ...any)  {}
func (l *testLogger) Error(format string, args ...any) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// memoryUsers is a map backed Users implementation for end to end tests
type memoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*auth.User
	byName  map[string]*auth.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{
		byEmail: map[string]*auth.User{},
		byName:  map[string]*auth.User{},
	}
}

func (s *memoryUsers) FindByUsernameOrEmail(_ context.Context, identifier string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user, ok := s.byEmail[identifier]; ok {
		return user, nil
	}
	if user, ok := s.byName[identifier]; ok {
		return user, nil
	}
	return nil, auth.ErrUserNotFound
}

func (s *memoryUsers) FindForRegistration(_ context.Context, email, username string) (*auth.User, *auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byEmail[email], s.byName[username], nil
}

func (s *memoryUsers) Register(_ context.Context, user *auth.User) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byEmail[user.Email] != nil || s.byName[user.Username] != nil {
		return nil, auth.ErrUserExists
	}

	record := *user
	s.byEmail[record.Email] = &record
	s.byName[record.Username] = &record
	return &record, nil
}

func validSignup() auth.SignupRequest {
	return auth.SignupRequest{
		Username:       "alice1",
		Password:       "Pass123",
		RepeatPassword: "Pass123",
		Name:           "Alice A",
		Email:          "alice@example.com",
		Address:        auth.Address{City: "X", Zip: "12345"},
	}
}
