package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contactbook/internal/model"
	"contactbook/internal/service"
)

// UserHandler bundles the user-management handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// AddUserRequest is the body of POST /users/add.
type AddUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=standard admin"`
}

// UsersData wraps the user list.
type UsersData struct {
	Users []model.User `json:"users"`
}

// GetAll godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=UsersData}
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/all [get]
func (h *UserHandler) GetAll(c echo.Context) error {
	users, err := h.svc.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Users retrieved successfully", UsersData{Users: users})
}

// Add godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddUserRequest true "User payload"
// @Success 201 {object} Response{data=UserData}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /users/add [post]
func (h *UserHandler) Add(c echo.Context) error {
	var req AddUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.svc.Create(c.Request().Context(), service.NewUser{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.ParseRole(req.Role),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "user added successfully", UserData{User: user})
}

// Update godoc
// @Summary Update user
// @Description Not implemented yet.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Failure 401 {object} errors.ErrorResponse
// @Failure 501 {object} errors.ErrorResponse
// @Router /users/update [put]
func (h *UserHandler) Update(c echo.Context) error {
	// The body is not read until profile updates exist.
	if err := h.svc.Update(c.Request().Context(), &model.User{}); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User updated successfully", nil)
}

// Delete godoc
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/delete/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "User deleted successfully", nil)
}
