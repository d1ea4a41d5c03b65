package main

import (
	"net/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/fevziatanoglu/cafe-management/internal/service"
)

type CreateStaffPayload struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=waiter kitchen"`
	Image    string `json:"image" validate:"omitempty,url"`
}

type UpdateStaffPayload struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=waiter kitchen"`
	Image    string `json:"image" validate:"omitempty,url"`
}

// listStaffHandler godoc
//
//	@Summary		List staff accounts
//	@Tags			staff
//	@Produce		json
//	@Success		200	{array}	domain.User
//	@Security		ApiKeyAuth
//	@Router			/staff [get]
func (app *application) listStaffHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	staff, err := app.staffService.ListStaff(r.Context(), adminID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "staff fetched", staff); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getStaffHandler godoc
//
//	@Summary		Get a staff account
//	@Tags			staff
//	@Produce		json
//	@Param			id	path		string	true	"Staff ID"
//	@Success		200	{object}	domain.User
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/staff/{id} [get]
func (app *application) getStaffHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	user, err := app.staffService.GetStaff(r.Context(), adminID, id)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "staff fetched", user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createStaffHandler godoc
//
//	@Summary		Create a staff account
//	@Description	Creates a waiter or kitchen account under the admin's cafe
//	@Tags			staff
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateStaffPayload	true	"Staff account"
//	@Success		201		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/staff [post]
func (app *application) createStaffHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	var payload CreateStaffPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.staffService.CreateStaff(r.Context(), adminID, service.StaffInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     domain.Role(payload.Role),
		Image:    payload.Image,
	})
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, "staff created", user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateStaffHandler godoc
//
//	@Summary		Update a staff account
//	@Description	Empty password keeps the current one
//	@Tags			staff
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Staff ID"
//	@Param			payload	body		UpdateStaffPayload	true	"Staff account"
//	@Success		200		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/staff/{id} [put]
func (app *application) updateStaffHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var payload UpdateStaffPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.staffService.UpdateStaff(r.Context(), adminID, id, service.StaffInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     domain.Role(payload.Role),
		Image:    payload.Image,
	})
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "staff updated", user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteStaffHandler godoc
//
//	@Summary		Delete a staff account
//	@Tags			staff
//	@Produce		json
//	@Param			id	path		string	true	"Staff ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/staff/{id} [delete]
func (app *application) deleteStaffHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.staffService.DeleteStaff(r.Context(), adminID, id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "staff deleted", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
