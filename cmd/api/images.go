package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const maxImageSize = 5 << 20 // 5MB

// getImageHandler godoc
//
//	@Summary		Serve an uploaded image
//	@Tags			images
//	@Produce		octet-stream
//	@Param			id	path	string	true	"Image ID"
//	@Success		200
//	@Failure		404	{object}	map[string]string
//	@Router			/images/{id} [get]
func (app *application) getImageHandler(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	data, err := app.imageService.GetImage(r.Context(), id)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

// formImage pulls the optional image file out of an already-parsed multipart
// form.
func formImage(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read image: %w", err)
	}

	return data, header.Filename, nil
}

// storeFormImage saves the uploaded image and returns the path it will be
// served from. The empty string means the form carried no image.
func (app *application) storeFormImage(r *http.Request, image []byte, name string) (string, error) {
	if image == nil {
		return "", nil
	}

	id, err := app.imageService.SaveImage(r.Context(), name, image)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/api/v1/images/%s", app.config.apiURL, id.Hex()), nil
}
