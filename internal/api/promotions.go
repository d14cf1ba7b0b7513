package api

import (
	"context"
	"net/http"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
)

func (c *Client) Promotions(ctx context.Context) ([]models.PromotionSummary, error) {
	var out []models.PromotionSummary
	if err := c.call(ctx, http.MethodGet, endpoint(c.cfg.PromotionsURL, "promotions"), nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Promotion(ctx context.Context, id string) (models.Promotion, error) {
	var out models.Promotion
	if err := c.call(ctx, http.MethodGet, endpoint(c.cfg.PromotionsURL, "promotion", id), nil, &out, nil); err != nil {
		return models.Promotion{}, err
	}
	return out, nil
}

// PayPromotion buys a promotion on behalf of payer and returns the confirmation code.
// 401 and 404 responses are told apart by the error tag in the body.
func (c *Client) PayPromotion(ctx context.Context, promotionID string, payer models.UserID) (string, error) {
	var out models.PaymentReceipt
	err := c.call(ctx, http.MethodPost, endpoint(c.cfg.MovementsURL, "promotion-payment", promotionID),
		dto.PromotionPaymentRequest{PayerID: payer.String()}, &out, classifyPayment)
	if err != nil {
		return "", err
	}
	return out.Code, nil
}

func classifyPayment(status int, tag string) (Kind, bool) {
	switch {
	case status == http.StatusUnauthorized && tag == dto.TagInsufficientBalance:
		return KindInsufficientBalance, true
	case status == http.StatusUnauthorized && tag == dto.TagPromotionExpired:
		return KindPromotionExpired, true
	case status == http.StatusNotFound && tag == dto.TagStoreNotFound:
		return KindStoreNotFound, true
	case status == http.StatusNotFound && tag == dto.TagPromotionNotFound:
		return KindPromotionNotFound, true
	}
	return 0, false
}
