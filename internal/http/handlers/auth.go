package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hongminglow/yapekuna/internal/http/respond"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
	"github.com/hongminglow/yapekuna/internal/storage"
)

// AuthHandler owns the register and login endpoints of the auth service.
type AuthHandler struct {
	store       storage.AccountStore
	initBalance decimal.Decimal
	logger      zerolog.Logger
}

// NewAuthHandler constructs the handler. New accounts open with initBalance.
func NewAuthHandler(store storage.AccountStore, initBalance decimal.Decimal, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{store: store, initBalance: initBalance, logger: logger}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r *mux.Router) {
	r.HandleFunc("/auth/register", h.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, tagInvalidPayload)
		return
	}
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || !validPhone(phone) {
		respond.Error(w, http.StatusBadRequest, tagInvalidPayload)
		return
	}

	created, err := h.store.CreateUser(r.Context(), name, phone, h.initBalance)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusConflict, tagAccountExists)
		default:
			h.logger.Error().Err(err).Msg("create user")
			respond.Error(w, http.StatusInternalServerError, tagInternal)
		}
		return
	}

	respond.JSON(w, http.StatusCreated, models.Identity{ID: created.ID})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, tagInvalidPayload)
		return
	}
	user, err := h.store.FindByPhone(r.Context(), strings.TrimSpace(req.Phone))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, tagPhoneNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("find user by phone")
		respond.Error(w, http.StatusInternalServerError, tagInternal)
		return
	}
	respond.JSON(w, http.StatusOK, models.Identity{ID: user.ID})
}

func validPhone(phone string) bool {
	if len(phone) != 9 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
