package service

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateIfAbsent(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role model.Role) (*model.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UpdateResult), args.Error(1)
}

// MockScholarshipRepository is a mock implementation of ScholarshipRepository.
type MockScholarshipRepository struct {
	mock.Mock
}

func (m *MockScholarshipRepository) Top(ctx context.Context, limit int64) ([]model.Scholarship, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scholarship), args.Error(1)
}

func (m *MockScholarshipRepository) List(ctx context.Context) ([]model.Scholarship, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Scholarship), args.Error(1)
}

func (m *MockScholarshipRepository) FindDetail(ctx context.Context, id primitive.ObjectID) (*model.ScholarshipDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScholarshipDetail), args.Error(1)
}

func (m *MockScholarshipRepository) Create(ctx context.Context, s *model.Scholarship) (primitive.ObjectID, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

// MockGateway is a mock implementation of payment.Gateway.
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}
