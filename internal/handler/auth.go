package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/iliyamo/movie-catalog/internal/config"
	"github.com/iliyamo/movie-catalog/internal/model"
	"github.com/iliyamo/movie-catalog/internal/queue"
	"github.com/iliyamo/movie-catalog/internal/repository"
	"github.com/iliyamo/movie-catalog/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  *repository.UserRepo
	events emitter
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, pub EventPublisher, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, events: emitter{pub: pub, log: log}}
}

type authResp struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type profileResp struct {
	*model.User
	Count struct {
		Movies int64 `json:"movies"`
	} `json:"_count"`
}

// Signup creates the account and returns it with a fresh token.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	taken, err := h.Users.ExistsByEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return err
	}
	if taken {
		return fail(c, http.StatusBadRequest, "User with this email or username already exists")
	}

	// A concurrent signup can still hit the unique index; that surfaces as
	// ErrDuplicate and is rendered by the error handler.
	u, err := h.Users.Create(ctx, req.Email, req.Username, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}
	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.JWTExpiresIn)
	if err != nil {
		return err
	}

	h.events.emit(queue.NewActivityEvent(queue.EventUserSignedUp, u.ID, "", ""))
	return ok(c, http.StatusCreated, authResp{User: u, Token: tok.Token})
}

// Signin verifies credentials.  Unknown email and wrong password get the
// same answer.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "Invalid email or password")
	}

	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Email, h.Cfg.JWTExpiresIn)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, authResp{User: u, Token: tok.Token})
}

// Profile returns the caller with the number of catalog entries they own.
func (h *AuthHandler) Profile(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "User not found")
		}
		return err
	}
	n, err := h.Users.CountMovies(ctx, uid)
	if err != nil {
		return err
	}
	resp := profileResp{User: u}
	resp.Count.Movies = n
	return ok(c, http.StatusOK, resp)
}
