package api

import (
	"context"
	"net/http"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
)

// Register creates an account and returns its id.
// A duplicate phone fails with ErrAccountExists.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (models.UserID, error) {
	var out models.Identity
	err := c.call(ctx, http.MethodPost, endpoint(c.cfg.AuthURL, "auth", "register"), req, &out,
		statusIs(http.StatusConflict, KindAccountExists))
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// Login resolves a phone number to its account id.
// An unknown phone fails with ErrPhoneNotFound.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (models.UserID, error) {
	var out models.Identity
	err := c.call(ctx, http.MethodPost, endpoint(c.cfg.AuthURL, "auth", "login"), req, &out,
		statusIs(http.StatusBadRequest, KindPhoneNotFound))
	if err != nil {
		return "", err
	}
	return out.ID, nil
}
