package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
)

const refreshCookieName = "refresh_token"

type RegisterPayload struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registerHandler godoc
//
//	@Summary		Register an admin account
//	@Description	Creates the admin user for a new cafe along with its public menu
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterPayload	true	"Admin credentials"
//	@Success		201		{object}	domain.User
//	@Failure		400		{object}	map[string]string
//	@Router			/auth/register [post]
func (app *application) registerHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	user, err := app.authService.RegisterAdmin(r.Context(), payload.Username, payload.Email, payload.Password)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, "account created", user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// loginHandler godoc
//
//	@Summary		Log in
//	@Description	Returns an access token and user, sets the refresh token cookie
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		LoginPayload	true	"Credentials"
//	@Success		200		{object}	domain.Session
//	@Failure		401		{object}	map[string]string
//	@Router			/auth/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	session, refresh, err := app.authService.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		app.unauthorizedResponse(w, r, err)
		return
	}

	app.setRefreshCookie(w, refresh)

	if err := app.jsonRespone(w, http.StatusOK, "logged in", session); err != nil {
		app.internalServerError(w, r, err)
	}
}

// refreshHandler godoc
//
//	@Summary		Refresh the session
//	@Description	Rotates the refresh token cookie and returns a new access token
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	domain.Session
//	@Failure		401	{object}	map[string]string
//	@Router			/auth/refresh [post]
func (app *application) refreshHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil {
		app.unauthorizedResponse(w, r, fmt.Errorf("missing refresh token"))
		return
	}

	session, refresh, err := app.authService.Refresh(r.Context(), cookie.Value)
	if err != nil {
		app.clearRefreshCookie(w)
		app.unauthorizedResponse(w, r, err)
		return
	}

	app.setRefreshCookie(w, refresh)

	if err := app.jsonRespone(w, http.StatusOK, "session refreshed", session); err != nil {
		app.internalServerError(w, r, err)
	}
}

// logoutHandler godoc
//
//	@Summary		Log out
//	@Description	Revokes the refresh token and clears the cookie
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/auth/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		if err := app.authService.Logout(r.Context(), cookie.Value); err != nil {
			app.logger.Warnw("failed to revoke refresh token", "error", err)
		}
	}

	app.clearRefreshCookie(w)

	if err := app.jsonRespone(w, http.StatusOK, "logged out", nil); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) setRefreshCookie(w http.ResponseWriter, token *domain.RefreshToken) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token.Value,
		Path:     "/api/v1/auth",
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   app.config.env == "production",
		SameSite: http.SameSiteStrictMode,
	})
}

func (app *application) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		MaxAge:   -1,
	})
}
