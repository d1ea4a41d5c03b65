package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fevziatanoglu/cafe-management/internal/service"
)

type CafePayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=200"`
	Image   string `json:"image" validate:"omitempty,url"`
}

// parseCafeForm decodes a multipart cafe submit with an optional image file.
func parseCafeForm(r *http.Request) (CafePayload, []byte, string, error) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return CafePayload{}, nil, "", fmt.Errorf("failed to parse form: %w", err)
	}

	payload := CafePayload{
		Name:    r.FormValue("name"),
		Address: r.FormValue("address"),
	}

	image, imageName, err := formImage(r)
	if err != nil {
		return CafePayload{}, nil, "", err
	}

	return payload, image, imageName, nil
}

// getCafeHandler godoc
//
//	@Summary		Get the cafe profile
//	@Tags			cafes
//	@Produce		json
//	@Success		200	{object}	domain.Cafe
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/cafes [get]
func (app *application) getCafeHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	cafe, err := app.cafeService.GetCafe(r.Context(), adminID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "cafe fetched", cafe); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCafeHandler godoc
//
//	@Summary		Create the cafe profile
//	@Description	Each admin owns exactly one cafe profile
//	@Tags			cafes
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			payload	body		CafePayload	true	"Cafe"
//	@Success		201		{object}	domain.Cafe
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/cafes [post]
func (app *application) createCafeHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	var payload CafePayload
	var image []byte
	var imageName string

	if isMultipart(r) {
		payload, image, imageName, err = parseCafeForm(r)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	} else if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	imageURL, err := app.storeFormImage(r, image, imageName)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if imageURL != "" {
		payload.Image = imageURL
	}

	cafe, err := app.cafeService.CreateCafe(r.Context(), adminID, service.CafeInput{
		Name:    payload.Name,
		Address: payload.Address,
		Image:   payload.Image,
	})
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, "cafe created", cafe); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateCafeHandler godoc
//
//	@Summary		Update the cafe profile
//	@Tags			cafes
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		string		true	"Cafe ID"
//	@Param			payload	body		CafePayload	true	"Cafe"
//	@Success		200		{object}	domain.Cafe
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/cafes/{id} [put]
func (app *application) updateCafeHandler(w http.ResponseWriter, r *http.Request) {
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

	var payload CafePayload
	var image []byte
	var imageName string

	if isMultipart(r) {
		payload, image, imageName, err = parseCafeForm(r)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	} else if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	imageURL, err := app.storeFormImage(r, image, imageName)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if imageURL != "" {
		payload.Image = imageURL
	}

	cafe, err := app.cafeService.UpdateCafe(r.Context(), adminID, id, service.CafeInput{
		Name:    payload.Name,
		Address: payload.Address,
		Image:   payload.Image,
	})
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "cafe updated", cafe); err != nil {
		app.internalServerError(w, r, err)
	}
}
