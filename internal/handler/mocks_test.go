package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarhub/internal/db"
	"scholarhub/internal/model"
	"scholarhub/internal/service"
)

type testValidator struct{ v *validator.Validate }

func (tv testValidator) Validate(i interface{}) error { return tv.v.Struct(i) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	return e
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, displayName, email string) (*service.CreateUserResult, error) {
	args := m.Called(ctx, displayName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CreateUserResult), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) UpdateRole(ctx context.Context, id, role string) (*model.UpdateResult, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UpdateResult), args.Error(1)
}

type MockScholarshipService struct {
	mock.Mock
}

func (m *MockScholarshipService) Top(ctx context.Context) (*service.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Listing), args.Error(1)
}

func (m *MockScholarshipService) All(ctx context.Context) (*service.Listing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Listing), args.Error(1)
}

func (m *MockScholarshipService) Detail(ctx context.Context, id string) (*model.ScholarshipDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ScholarshipDetail), args.Error(1)
}

func (m *MockScholarshipService) Create(ctx context.Context, s *model.Scholarship) (primitive.ObjectID, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	args := m.Called(ctx, price)
	return args.String(0), args.Error(1)
}

type fixedStatus db.Status

func (f fixedStatus) Status() db.Status { return db.Status(f) }
