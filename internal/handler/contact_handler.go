package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/service"
)

// ContactHandler bundles the address-book handlers.
type ContactHandler struct {
	svc service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(svc service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// CreateContactRequest is the body of POST /contacts/.
type CreateContactRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
}

// UpdateContactRequest is the body of PUT /contacts/:id. Omitted fields keep their value.
type UpdateContactRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,phone"`
}

// ContactData wraps a single contact.
type ContactData struct {
	Contact *model.Contact `json:"contact"`
}

// ContactsData wraps the contact list.
type ContactsData struct {
	Contacts []model.Contact `json:"contacts"`
}

// GetAll godoc
// @Summary List contacts, newest first
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=ContactsData}
// @Failure 401 {object} errors.ErrorResponse
// @Router /contacts/ [get]
func (h *ContactHandler) GetAll(c echo.Context) error {
	contacts, err := h.svc.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Contact retrieved successfully", ContactsData{Contacts: contacts})
}

// GetOne godoc
// @Summary Get contact by phone number
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param phoneNumber path string true "Phone number"
// @Success 200 {object} Response{data=ContactData}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{phoneNumber} [get]
func (h *ContactHandler) GetOne(c echo.Context) error {
	phone := c.Param("phoneNumber")
	if !model.ValidPhone(phone) {
		return apperrors.BadRequest("phoneNumber must be a valid phone number")
	}

	contact, err := h.svc.GetOne(c.Request().Context(), model.NormalizePhone(phone))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Contact retrieved successfully", ContactData{Contact: contact})
}

// Create godoc
// @Summary Create contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateContactRequest true "Contact payload"
// @Success 201 {object} Response{data=ContactData}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /contacts/ [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req CreateContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.svc.Create(c.Request().Context(), &model.Contact{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: model.NormalizePhone(req.PhoneNumber),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, "Contact created successfully", ContactData{Contact: contact})
}

// Update godoc
// @Summary Update contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body UpdateContactRequest true "Fields to change"
// @Success 200 {object} Response{data=ContactData}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	contact, err := h.svc.Update(c.Request().Context(), id, model.ContactPatch{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: model.NormalizePhone(req.PhoneNumber),
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Contact updated successfully", ContactData{Contact: contact})
}

// Delete godoc
// @Summary Delete contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Contact deleted successfully", nil)
}
