package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"gharBack/internal/models"
	"gharBack/internal/render"
	"gharBack/internal/services"
)

type UserHandler struct {
	Service    *services.UserService
	Render     *render.Engine
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (h *UserHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	data := pageData(w, r, h.Service.GetUserByID)
	if err := h.Render.Render(w, http.StatusOK, "register.page.tmpl", data); err != nil {
		log.Printf("RegisterForm: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// Register creates an account and signs it in. Every rejection re-renders
// the form with the submitted values and a message; no account is created
// and nobody is logged in.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	user := models.User{
		Username:  strings.TrimSpace(r.PostForm.Get("username")),
		Email:     strings.TrimSpace(r.PostForm.Get("email")),
		FirstName: strings.TrimSpace(r.PostForm.Get("first_name")),
		LastName:  strings.TrimSpace(r.PostForm.Get("last_name")),
	}

	user, tokens, err := h.Service.Register(r.Context(), user,
		r.PostForm.Get("password"), r.PostForm.Get("password2"))
	if err != nil {
		var message string
		switch {
		case errors.Is(err, models.ErrPasswordMismatch):
			message = "Passwords do not match."
		case errors.Is(err, models.ErrDuplicateUsername):
			message = "Username already taken."
		case errors.Is(err, models.ErrDuplicateEmail):
			message = "Email already registered."
		default:
			log.Printf("Register: %v", err)
			message = "Failed to create your account. Please try again."
		}
		h.redisplayAuthForm(w, r, "register.page.tmpl", message)
		return
	}

	h.setSessionCookies(w, tokens)
	setFlash(w, fmt.Sprintf("Welcome, %s! Account created.", user.FirstName))
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}

func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := pageData(w, r, h.Service.GetUserByID)
	if err := h.Render.Render(w, http.StatusOK, "login.page.tmpl", data); err != nil {
		log.Printf("LoginForm: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// Login signs a user in. The failure message never distinguishes an unknown
// username from a wrong password.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	_, tokens, err := h.Service.SignIn(r.Context(),
		strings.TrimSpace(r.PostForm.Get("username")), r.PostForm.Get("password"))
	if err != nil {
		if !errors.Is(err, models.ErrInvalidCredentials) {
			log.Printf("Login: %v", err)
		}
		h.redisplayAuthForm(w, r, "login.page.tmpl", "Invalid username or password.")
		return
	}

	h.setSessionCookies(w, tokens)
	http.Redirect(w, r, "/dashboard/", http.StatusSeeOther)
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if userID, ok := userIDFromContext(r.Context()); ok {
		if err := h.Service.SignOut(r.Context(), userID); err != nil {
			log.Printf("Logout: %v", err)
		}
	}

	h.clearSessionCookies(w)
	setFlash(w, "Logged out successfully.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *UserHandler) redisplayAuthForm(w http.ResponseWriter, r *http.Request, page, message string) {
	data := pageData(w, r, h.Service.GetUserByID)
	data.FlashError = message
	data.Form = r.PostForm

	if err := h.Render.Render(w, http.StatusOK, page, data); err != nil {
		log.Printf("redisplayAuthForm: render failed: %v", err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (h *UserHandler) setSessionCookies(w http.ResponseWriter, tokens models.Tokens) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    tokens.AccessToken,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.AccessTTL.Seconds()),
	})
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    tokens.RefreshToken,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(h.RefreshTTL.Seconds()),
	})
}

func (h *UserHandler) clearSessionCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: "access_token", Path: "/", MaxAge: -1})
	http.SetCookie(w, &http.Cookie{Name: "refresh_token", Path: "/", MaxAge: -1})
}
