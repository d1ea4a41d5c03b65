package main

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxImportFileSize = 10 << 20 // 10mb

// createImportTaskHandler godoc
//
//	@Summary		Import menu products from a spreadsheet
//	@Description	Accepts an xlsx upload and queues it for async processing
//	@Tags			menus
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Menu spreadsheet (xlsx)"
//	@Success		202		{object}	map[string]string
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menus/import [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxImportFileSize); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to parse upload: %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("missing file field: %w", err))
		return
	}
	defer file.Close()

	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext != ".xlsx" {
		app.badRequestResponse(w, r, fmt.Errorf("unsupported file type %q, expected .xlsx", ext))
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImportFileSize))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	taskID, err := app.importService.CreateImportTask(r.Context(), adminID, header.Filename, data)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusAccepted, "import queued", map[string]string{
		"taskId": taskID.Hex(),
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary		Get import task status
//	@Tags			menus
//	@Produce		json
//	@Param			id	path		string	true	"Task ID"
//	@Success		200	{object}	domain.ImportTask
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/menus/import/{id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
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

	task, err := app.importService.GetTaskStatus(r.Context(), adminID, id)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "task fetched", task); err != nil {
		app.internalServerError(w, r, err)
	}
}
