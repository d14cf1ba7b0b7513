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

// HistoryHandler lists past transfers and promotion payments.
type HistoryHandler struct {
	store  storage.Store
	logger zerolog.Logger
}

func NewHistoryHandler(store storage.Store, logger zerolog.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, logger: logger}
}

func (h *HistoryHandler) Register(r *mux.Router) {
	r.HandleFunc("/transfers/{id}/outgoing", h.handleOutgoing).Methods(http.MethodGet)
	r.HandleFunc("/transfers/{id}/incoming", h.handleIncoming).Methods(http.MethodGet)
	r.HandleFunc("/payments/{id}", h.handlePayments).Methods(http.MethodGet)
}

func (h *HistoryHandler) handleOutgoing(w http.ResponseWriter, r *http.Request) {
	out, err := h.store.Outgoing(r.Context(), models.UserID(mux.Vars(r)["id"]))
	if err != nil {
		h.fail(w, err, "outgoing transfers")
		return
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *HistoryHandler) handleIncoming(w http.ResponseWriter, r *http.Request) {
	in, err := h.store.Incoming(r.Context(), models.UserID(mux.Vars(r)["id"]))
	if err != nil {
		h.fail(w, err, "incoming transfers")
		return
	}
	respond.JSON(w, http.StatusOK, in)
}

// handlePayments answers 404 when the account has no payments at all.
func (h *HistoryHandler) handlePayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.store.Payments(r.Context(), models.UserID(mux.Vars(r)["id"]))
	if err != nil {
		h.fail(w, err, "payments")
		return
	}
	if len(payments) == 0 {
		respond.Error(w, http.StatusNotFound, tagNoPayments)
		return
	}
	respond.JSON(w, http.StatusOK, payments)
}

func (h *HistoryHandler) fail(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, tagAccountNotFound)
		return
	}
	h.logger.Error().Err(err).Str("op", op).Msg("history lookup")
	respond.Error(w, http.StatusInternalServerError, tagInternal)
}
