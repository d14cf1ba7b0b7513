package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hongminglow/yapekuna/internal/http/respond"
	"github.com/hongminglow/yapekuna/internal/models/dto"
	"github.com/hongminglow/yapekuna/internal/storage"
)

// PromotionsHandler serves the promotion catalogue.
type PromotionsHandler struct {
	store  storage.PromotionStore
	logger zerolog.Logger
}

func NewPromotionsHandler(store storage.PromotionStore, logger zerolog.Logger) *PromotionsHandler {
	return &PromotionsHandler{store: store, logger: logger}
}

func (h *PromotionsHandler) Register(r *mux.Router) {
	r.HandleFunc("/promotions", h.handleList).Methods(http.MethodGet)
	r.HandleFunc("/promotion/{id}", h.handleDetail).Methods(http.MethodGet)
}

func (h *PromotionsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	promos, err := h.store.Promotions(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("list promotions")
		respond.Error(w, http.StatusInternalServerError, tagInternal)
		return
	}
	respond.JSON(w, http.StatusOK, promos)
}

func (h *PromotionsHandler) handleDetail(w http.ResponseWriter, r *http.Request) {
	promo, err := h.store.Promotion(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, dto.TagPromotionNotFound)
			return
		}
		h.logger.Error().Err(err).Msg("promotion detail")
		respond.Error(w, http.StatusInternalServerError, tagInternal)
		return
	}
	respond.JSON(w, http.StatusOK, promo)
}
