package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scholarhub/internal/errors"
	"scholarhub/internal/service"
)

// UserHandler bundles user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is sent by the client after sign-in.
type CreateUserRequest struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email" validate:"required,email"`
}

// CreateUserResponse carries the new id, or a marker when the user existed.
type CreateUserResponse struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// CreateUser godoc
// @Summary Create user on first sign-in
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 200 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /create-user [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	res, err := h.svc.CreateUser(c.Request().Context(), req.DisplayName, req.Email)
	if err != nil {
		return httpError(err)
	}
	if res.Existed {
		return c.JSON(http.StatusOK, CreateUserResponse{Message: "user already exists"})
	}
	id := res.InsertedID.Hex()
	return c.JSON(http.StatusOK, CreateUserResponse{InsertedID: &id})
}

// GetUser godoc
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} model.User
// @Failure 503 {object} errors.ErrorResponse
// @Router /users/{email} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.svc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return httpError(err)
	}
	if user == nil {
		return c.JSON(http.StatusOK, echo.Map{})
	}
	return c.JSON(http.StatusOK, user)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Param email query string true "Caller email (admin)"
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /all-users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateRole godoc
// @Summary Change a user's role
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Param role query string true "user, moderator or admin"
// @Param email query string true "Caller email (admin)"
// @Success 200 {object} model.UpdateResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /update-role/{id} [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	res, err := h.svc.UpdateRole(c.Request().Context(), c.Param("id"), c.QueryParam("role"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func httpError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
