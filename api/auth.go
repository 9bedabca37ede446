package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glasscart/storefront/auth"
	"github.com/glasscart/storefront/models"
	"github.com/glasscart/storefront/store"
)

type registerRequest struct {
	Name string `json:"name" binding:"required"`
	// Email lookups are exact-match; the address is stored as given.
	Email string `json:"email" binding:"required,email"`
	// Carries the plain-text password on input and is hashed before
	// the document is stored. The field name is part of the wire
	// contract this service replaces.
	PasswordHash string `json:"password_hash" binding:"required"`
	AvatarURL    string `json:"avatar_url"`
}

type userOut struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

func (a *API) register(c *gin.Context) {
	if a.Users == nil {
		a.unavailable(c)
		return
	}
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx := c.Request.Context()

	if _, err := a.Users.ByEmail(ctx, req.Email); err == nil {
		respondError(c, http.StatusBadRequest, "Email already registered")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		a.storeError(c, err)
		return
	}

	hash, err := auth.HashPassword(req.PasswordHash)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not hash password")
		return
	}
	id, err := a.Users.Insert(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AvatarURL:    req.AvatarURL,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		a.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, userOut{ID: id, Name: req.Name, Email: req.Email, AvatarURL: req.AvatarURL})
}

// login takes the credentials as form fields (username holds the
// email) and answers with a bearer token.
func (a *API) login(c *gin.Context) {
	if a.Users == nil {
		a.unavailable(c)
		return
	}
	email := c.PostForm("username")
	password := c.PostForm("password")

	user, err := a.Users.ByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !auth.CheckPassword(password, user.PasswordHash)) {
		respondError(c, http.StatusBadRequest, "Incorrect email or password")
		return
	}
	if err != nil {
		a.storeError(c, err)
		return
	}

	token, err := a.Tokens.Issue(user.ID.Hex())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Could not issue token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (a *API) me(c *gin.Context) {
	user := c.MustGet("user").(models.User)
	c.JSON(http.StatusOK, userOut{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		AvatarURL: user.AvatarURL,
	})
}

// requireAuth rejects requests without a valid bearer token whose
// subject resolves to an existing user.
func (a *API) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if a.Users == nil {
			a.unavailable(c)
			c.Abort()
			return
		}
		user, ok := a.identity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detailBadCredentials})
			return
		}
		c.Set("user", user)
		c.Next()
	}
}

// identity resolves the bearer token to a user when one is present
// and valid. Routes that allow anonymous callers use this directly
// and fall back to no identity on any failure.
func (a *API) identity(c *gin.Context) (models.User, bool) {
	if a.Users == nil {
		return models.User{}, false
	}
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, prefix) {
		return models.User{}, false
	}
	sub, err := a.Tokens.Subject(strings.TrimPrefix(header, prefix))
	if err != nil {
		return models.User{}, false
	}
	user, err := a.Users.ByID(c.Request.Context(), sub)
	if err != nil {
		return models.User{}, false
	}
	return user, true
}
