package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi"
)

// getPublicMenuHandler godoc
//
//	@Summary		Public menu by slug
//	@Description	Customer-facing menu with available products, no auth required
//	@Tags			menus
//	@Produce		json
//	@Param			slug	path		string	true	"Menu slug"
//	@Success		200		{object}	domain.PublicMenu
//	@Failure		404		{object}	map[string]string
//	@Router			/menu/{slug} [get]
func (app *application) getPublicMenuHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		app.badRequestResponse(w, r, fmt.Errorf("missing menu slug"))
		return
	}

	menu, err := app.productService.GetPublicMenu(r.Context(), slug)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, "menu fetched", menu); err != nil {
		app.internalServerError(w, r, err)
	}
}
