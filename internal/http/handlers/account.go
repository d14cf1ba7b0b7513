package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hongminglow/yapekuna/internal/http/respond"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/storage"
)

// AccountHandler serves balance and display name lookups.
type AccountHandler struct {
	store  storage.AccountStore
	logger zerolog.Logger
}

func NewAccountHandler(store storage.AccountStore, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{store: store, logger: logger}
}

func (h *AccountHandler) Register(r *mux.Router) {
	r.HandleFunc("/account/{id}/balance", h.handleBalance).Methods(http.MethodGet)
	r.HandleFunc("/account/{id}/name", h.handleName).Methods(http.MethodGet)
}

func (h *AccountHandler) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := h.store.Balance(r.Context(), models.UserID(mux.Vars(r)["id"]))
	if err != nil {
		h.fail(w, err, "balance")
		return
	}
	respond.JSON(w, http.StatusOK, models.Balance{Balance: balance})
}

func (h *AccountHandler) handleName(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.FindUser(r.Context(), models.UserID(mux.Vars(r)["id"]))
	if err != nil {
		h.fail(w, err, "display name")
		return
	}
	respond.JSON(w, http.StatusOK, models.DisplayName{Name: user.Name})
}

func (h *AccountHandler) fail(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, tagAccountNotFound)
		return
	}
	h.logger.Error().Err(err).Str("op", op).Msg("account lookup")
	respond.Error(w, http.StatusInternalServerError, tagInternal)
}
