package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"scholarhub/internal/cache"
	apperrors "scholarhub/internal/errors"
	"scholarhub/internal/model"
	"scholarhub/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// CreateUserResult reports whether a user document was inserted.
type CreateUserResult struct {
	InsertedID *primitive.ObjectID
	Existed    bool
}

// UserService exposes domain operations.
type UserService interface {
	CreateUser(ctx context.Context, displayName, email string) (*CreateUserResult, error)
	// GetUserByEmail returns nil without error when no user matches.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateRole(ctx context.Context, id, role string) (*model.UpdateResult, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func emailKey(email string) string {
	return "user:email:" + email
}

func idKey(id primitive.ObjectID) string {
	return "user:id:" + id.Hex()
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

func (s *userService) CreateUser(ctx context.Context, displayName, email string) (*CreateUserResult, error) {
	user := &model.User{
		DisplayName: strings.TrimSpace(displayName),
		Email:       normalizeEmail(email),
		Role:        model.RoleUser,
	}
	id, err := s.repo.CreateIfAbsent(ctx, user)
	if err != nil {
		return nil, err
	}
	if id.IsZero() {
		return &CreateUserResult{Existed: true}, nil
	}
	return &CreateUserResult{InsertedID: &id}, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, nil
	}

	if data, _ := s.cache.Get(ctx, emailKey(email)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, emailKey(email), payload, userCacheTTL)
		// lets UpdateRole find the email key without another query
		_ = s.cache.Set(ctx, idKey(user.ID), []byte(email), userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.repo.List(ctx)
}

func (s *userService) UpdateRole(ctx context.Context, id, role string) (*model.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	r := model.Role(strings.ToLower(strings.TrimSpace(role)))
	if !r.Valid() {
		return nil, apperrors.ErrInvalidRole
	}

	res, err := s.repo.UpdateRole(ctx, oid, r)
	if err != nil {
		return nil, err
	}

	if email, _ := s.cache.Get(ctx, idKey(oid)); email != nil {
		_ = s.cache.Delete(ctx, emailKey(string(email)), idKey(oid))
	}
	return res, nil
}
