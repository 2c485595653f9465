package handlers

import (
	"context"
	"net/http"
	"net/url"

	"gharBack/internal/models"
	"gharBack/internal/render"
)

const (
	flashCookie      = "flash"
	flashErrorCookie = "flash_error"
)

func userIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value("user_id").(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

func setFlash(w http.ResponseWriter, message string) {
	setFlashCookie(w, flashCookie, message)
}

func setFlashError(w http.ResponseWriter, message string) {
	setFlashCookie(w, flashErrorCookie, message)
}

func setFlashCookie(w http.ResponseWriter, name, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// popFlash reads and clears the one-shot notification cookies.
func popFlash(w http.ResponseWriter, r *http.Request) (flash, flashError string) {
	for _, name := range []string{flashCookie, flashErrorCookie} {
		cookie, err := r.Cookie(name)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			value = ""
		}
		http.SetCookie(w, &http.Cookie{Name: name, Path: "/", MaxAge: -1})
		if name == flashCookie {
			flash = value
		} else {
			flashError = value
		}
	}
	return flash, flashError
}

// pageData assembles the render payload common to every page: identity,
// flashes, and an empty page map for handler-specific values.
func pageData(w http.ResponseWriter, r *http.Request, userFetch func(context.Context, int) (models.User, error)) *render.Data {
	data := &render.Data{
		Form: url.Values{},
		Page: map[string]interface{}{},
	}
	data.Flash, data.FlashError = popFlash(w, r)

	if userID, ok := userIDFromContext(r.Context()); ok {
		data.IsAuthenticated = true
		if userFetch != nil {
			if user, err := userFetch(r.Context(), userID); err == nil {
				data.User = user
			}
		}
	}
	return data
}
