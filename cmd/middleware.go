package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gharBack/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// authenticate resolves the requester's identity from the session cookies.
// An expired access token is re-issued from a still-valid refresh session;
// anything else leaves the request anonymous rather than failing it.
func (app *application) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var claims *models.Claims

		if cookie, err := r.Cookie("access_token"); err == nil {
			claims, _ = app.tokenManager.ParseAccessToken(cookie.Value)
		}

		if claims == nil {
			cookie, err := r.Cookie("refresh_token")
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			session, err := app.userRepo.GetSessionByToken(r.Context(), cookie.Value)
			if err != nil || session == (models.Session{}) || session.ExpiresAt.Before(time.Now()) {
				next.ServeHTTP(w, r)
				return
			}

			newAccessToken, err := app.tokenManager.NewAccessToken(session.UserID, app.accessTTL)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			http.SetCookie(w, &http.Cookie{
				Name:     "access_token",
				Value:    newAccessToken,
				Path:     "/",
				HttpOnly: true,
				MaxAge:   int(app.accessTTL.Seconds()),
			})

			claims = &models.Claims{UserID: uint(session.UserID)}
		}

		ctx := context.WithValue(r.Context(), "user_id", int(claims.UserID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth gates the dashboard and posting routes.
func (app *application) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value("user_id").(int); !ok {
			http.Redirect(w, r, "/login/", http.StatusSeeOther)
			return
		}
		w.Header().Add("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Output(2, err.Error())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
