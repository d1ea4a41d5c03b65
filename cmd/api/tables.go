package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

type TablePayload struct {
	Number string `json:"number" validate:"required,max=20"`
	Status string `json:"status" validate:"omitempty,oneof=empty occupied reserved"`
}

type UpdateTableStatusPayload struct {
	Status string `json:"status" validate:"required,oneof=empty occupied reserved"`
}

// listTablesHandler godoc
//
//	@Summary		List tables
//	@Tags			tables
//	@Produce		json
//	@Success		200	{array}	domain.Table
//	@Security		ApiKeyAuth
//	@Router			/tables [get]
func (app *application) listTablesHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	tables, err := app.tableService.ListTables(r.Context(), adminID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "tables fetched", tables); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listTablesWithOrdersHandler godoc
//
//	@Summary		List tables joined with their open orders
//	@Description	Each table carries the orders that are not paid yet
//	@Tags			tables
//	@Produce		json
//	@Success		200	{array}	domain.TableWithOrders
//	@Security		ApiKeyAuth
//	@Router			/tables/with-orders [get]
func (app *application) listTablesWithOrdersHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	tables, err := app.tableService.ListTablesWithOrders(r.Context(), adminID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "tables fetched", tables); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getTableHandler godoc
//
//	@Summary		Get table by ID
//	@Tags			tables
//	@Produce		json
//	@Param			id	path		string	true	"Table ID"
//	@Success		200	{object}	domain.Table
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/tables/{id} [get]
func (app *application) getTableHandler(w http.ResponseWriter, r *http.Request) {
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

	table, err := app.tableService.GetTable(r.Context(), adminID, id)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "table fetched", table); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createTableHandler godoc
//
//	@Summary		Create a table
//	@Tags			tables
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		TablePayload	true	"Table"
//	@Success		201		{object}	domain.Table
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/tables [post]
func (app *application) createTableHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	var payload TablePayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	status := domain.TableStatus(payload.Status)
	if payload.Status == "" {
		status = domain.TableStatusEmpty
	}

	table, err := app.tableService.CreateTable(r.Context(), adminID, payload.Number, status)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, "table created", table); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateTableHandler godoc
//
//	@Summary		Update a table
//	@Tags			tables
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Table ID"
//	@Param			payload	body		TablePayload	true	"Table"
//	@Success		200		{object}	domain.Table
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/tables/{id} [put]
func (app *application) updateTableHandler(w http.ResponseWriter, r *http.Request) {
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

	var payload TablePayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	status := domain.TableStatus(payload.Status)
	if payload.Status == "" {
		status = domain.TableStatusEmpty
	}

	table, err := app.tableService.UpdateTable(r.Context(), adminID, id, payload.Number, status)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "table updated", table); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateTableStatusHandler godoc
//
//	@Summary		Update table status
//	@Tags			tables
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Table ID"
//	@Param			payload	body		UpdateTableStatusPayload	true	"New status"
//	@Success		200		{object}	domain.Table
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/tables/{id}/status [patch]
func (app *application) updateTableStatusHandler(w http.ResponseWriter, r *http.Request) {
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

	var payload UpdateTableStatusPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	table, err := app.tableService.UpdateTableStatus(r.Context(), adminID, id, domain.TableStatus(payload.Status))
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "table status updated", table); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteTableHandler godoc
//
//	@Summary		Delete a table
//	@Description	Refuses to delete a table that still has unpaid orders
//	@Tags			tables
//	@Produce		json
//	@Param			id	path		string	true	"Table ID"
//	@Success		200	{object}	map[string]string
//	@Failure		400	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/tables/{id} [delete]
func (app *application) deleteTableHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := app.tableService.DeleteTable(r.Context(), adminID, id); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to delete table: %w", err))
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "table deleted", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
