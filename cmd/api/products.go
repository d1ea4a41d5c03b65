package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fevziatanoglu/cafe-management/internal/service"
)

type ProductPayload struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description string  `json:"description" validate:"max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"max=50"`
	Available   bool    `json:"available"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

type SetAvailabilityPayload struct {
	Available *bool `json:"available" validate:"required"`
}

// parseProductForm decodes a multipart product submit: text fields plus an
// optional image file. The image bytes come back separately so the handler
// can store them after validation.
func parseProductForm(r *http.Request) (ProductPayload, []byte, string, error) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		return ProductPayload{}, nil, "", fmt.Errorf("failed to parse form: %w", err)
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		return ProductPayload{}, nil, "", fmt.Errorf("invalid price: %w", err)
	}

	available := false
	if v := r.FormValue("available"); v != "" {
		available, err = strconv.ParseBool(v)
		if err != nil {
			return ProductPayload{}, nil, "", fmt.Errorf("invalid available flag: %w", err)
		}
	}

	payload := ProductPayload{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		Available:   available,
	}

	image, imageName, err := formImage(r)
	if err != nil {
		return ProductPayload{}, nil, "", err
	}

	return payload, image, imageName, nil
}

func (p ProductPayload) toInput() service.ProductInput {
	return service.ProductInput{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Available:   p.Available,
		Image:       p.Image,
	}
}

// listProductsHandler godoc
//
//	@Summary		List products
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	domain.Product
//	@Security		ApiKeyAuth
//	@Router			/products [get]
func (app *application) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	products, err := app.productService.ListProducts(r.Context(), adminID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "products fetched", products); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getProductHandler godoc
//
//	@Summary		Get product by ID
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	domain.Product
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/products/{id} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
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

	product, err := app.productService.GetProduct(r.Context(), adminID, id)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "product fetched", product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createProductHandler godoc
//
//	@Summary		Create a product
//	@Description	Adds a product to the cafe's menu. Multipart form when an image file is attached, JSON otherwise.
//	@Tags			products
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			payload	body		ProductPayload	true	"Product"
//	@Success		201		{object}	domain.Product
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/products [post]
func (app *application) createProductHandler(w http.ResponseWriter, r *http.Request) {
	adminID, _, err := tenantFromRequest(r)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	var payload ProductPayload
	var image []byte
	var imageName string

	if isMultipart(r) {
		payload, image, imageName, err = parseProductForm(r)
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

	product, err := app.productService.CreateProduct(r.Context(), adminID, payload.toInput())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, "product created", product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateProductHandler godoc
//
//	@Summary		Update a product
//	@Tags			products
//	@Accept			json
//	@Accept			mpfd
//	@Produce		json
//	@Param			id		path		string			true	"Product ID"
//	@Param			payload	body		ProductPayload	true	"Product"
//	@Success		200		{object}	domain.Product
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/products/{id} [put]
func (app *application) updateProductHandler(w http.ResponseWriter, r *http.Request) {
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

	var payload ProductPayload
	var image []byte
	var imageName string

	if isMultipart(r) {
		payload, image, imageName, err = parseProductForm(r)
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

	product, err := app.productService.UpdateProduct(r.Context(), adminID, id, payload.toInput())
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "product updated", product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// setProductAvailabilityHandler godoc
//
//	@Summary		Toggle product availability
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Product ID"
//	@Param			payload	body		SetAvailabilityPayload	true	"Availability"
//	@Success		200		{object}	domain.Product
//	@Failure		400		{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/products/{id}/availability [patch]
func (app *application) setProductAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
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

	var payload SetAvailabilityPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.productService.SetProductAvailability(r.Context(), adminID, id, *payload.Available)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "product availability updated", product); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteProductHandler godoc
//
//	@Summary		Delete a product
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Security		ApiKeyAuth
//	@Router			/products/{id} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
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

	if err := app.productService.DeleteProduct(r.Context(), adminID, id); err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "product deleted", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
