package http

import (
	"context"
	"io"

	"blogpress/internal/entity"
	"blogpress/internal/usecase"
	"blogpress/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthUseCase is a mock implementation of AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Signup(ctx context.Context, name, email, rawPassword string) (*entity.Admin, error) {
	args := m.Called(name, email, rawPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, rawPassword string) (*entity.Admin, string, error) {
	args := m.Called(email, rawPassword)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.Admin), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) ResolveSession(ctx context.Context, token string) (*entity.Admin, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Admin), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

// MockPostUseCase is a mock implementation of PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, authorID string, input entity.PostInput) (*entity.Post, error) {
	args := m.Called(authorID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) FindRelated(ctx context.Context, id string, limit int) ([]*entity.Post, error) {
	args := m.Called(id, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

func testLogger() *logger.Logger {
	return logger.NewWithWriters(io.Discard, io.Discard)
}

func setupTestRouter(auth usecase.AuthUseCase, posts usecase.PostUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterOptions{
		AuthUseCase: auth,
		PostUseCase: posts,
		Logger:      testLogger(),
	})
}
