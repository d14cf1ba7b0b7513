package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/hongminglow/yapekuna/internal/http/respond"
	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
	"github.com/hongminglow/yapekuna/internal/storage"
)

// MovementsHandler owns the endpoints that move money: transfers between
// accounts and promotion payments.
type MovementsHandler struct {
	store  storage.Store
	logger zerolog.Logger
	now    func() time.Time
}

func NewMovementsHandler(store storage.Store, logger zerolog.Logger, now func() time.Time) *MovementsHandler {
	if now == nil {
		now = time.Now
	}
	return &MovementsHandler{store: store, logger: logger, now: now}
}

func (h *MovementsHandler) Register(r *mux.Router) {
	r.HandleFunc("/transfer/{sender}", h.handleTransfer).Methods(http.MethodPost)
	r.HandleFunc("/promotion-payment/{id}", h.handlePromotionPayment).Methods(http.MethodPost)
}

func (h *MovementsHandler) handleTransfer(w http.ResponseWriter, r *http.Request) {
	sender := models.UserID(mux.Vars(r)["sender"])

	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, tagInvalidPayload)
		return
	}
	recipient := strings.TrimSpace(req.Recipient)
	if recipient == "" || !req.Amount.IsPositive() {
		respond.Error(w, http.StatusBadRequest, tagInvalidPayload)
		return
	}
	if _, err := h.store.FindUser(r.Context(), sender); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, tagSenderNotFound)
			return
		}
		h.internal(w, err, "find sender")
		return
	}

	err := h.store.Transfer(r.Context(), sender, recipient, req.Amount, strings.TrimSpace(req.Description), h.now())
	switch {
	case err == nil:
		h.logger.Info().Str("sender", sender.String()).Str("amount", req.Amount.String()).Msg("transfer completed")
		respond.JSON(w, http.StatusOK, nil)
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, tagRecipientMissing)
	case errors.Is(err, storage.ErrInsufficientBalance):
		respond.Error(w, http.StatusUnauthorized, dto.TagInsufficientBalance)
	default:
		h.internal(w, err, "transfer")
	}
}

func (h *MovementsHandler) handlePromotionPayment(w http.ResponseWriter, r *http.Request) {
	promotionID := mux.Vars(r)["id"]

	var req dto.PromotionPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, tagInvalidPayload)
		return
	}
	payer := models.UserID(strings.TrimSpace(req.PayerID))
	if _, err := h.store.FindUser(r.Context(), payer); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusBadRequest, tagPayerNotFound)
			return
		}
		h.internal(w, err, "find payer")
		return
	}

	payment, err := h.store.PayPromotion(r.Context(), promotionID, payer, newPaymentCode(), h.now())
	switch {
	case err == nil:
		h.logger.Info().Str("payer", payer.String()).Str("promotion", promotionID).Str("code", payment.Code).Msg("promotion paid")
		respond.JSON(w, http.StatusOK, models.PaymentReceipt{Code: payment.Code})
	case errors.Is(err, storage.ErrNotFound):
		respond.Error(w, http.StatusNotFound, dto.TagPromotionNotFound)
	case errors.Is(err, storage.ErrStoreNotFound):
		respond.Error(w, http.StatusNotFound, dto.TagStoreNotFound)
	case errors.Is(err, storage.ErrExpired):
		respond.Error(w, http.StatusUnauthorized, dto.TagPromotionExpired)
	case errors.Is(err, storage.ErrInsufficientBalance):
		respond.Error(w, http.StatusUnauthorized, dto.TagInsufficientBalance)
	default:
		h.internal(w, err, "pay promotion")
	}
}

func (h *MovementsHandler) internal(w http.ResponseWriter, err error, op string) {
	h.logger.Error().Err(err).Str("op", op).Msg("movements")
	respond.Error(w, http.StatusInternalServerError, tagInternal)
}

// newPaymentCode returns a short code the customer shows at the store.
func newPaymentCode() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "PROMO" + id[:8]
}
