package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/skinovaai/skinova/internal/httpx"
	"github.com/skinovaai/skinova/internal/store"
	"github.com/skinovaai/skinova/pkg/api"
)

// purchasablePlans are the plans accepted at checkout.
var purchasablePlans = map[string]bool{
	"Pro":             true,
	store.PlanPremium: true,
}

func (h *Handlers) applyCoupon(w http.ResponseWriter, r *http.Request) error {
	var req api.CouponRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if req.Code == "" {
		return httpx.ErrBadRequest("coupon code is required")
	}

	discount, err := h.store.CouponDiscount(req.Code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.ErrBadRequest("Invalid or expired coupon code.")
		}
		return err
	}

	httpx.JSON(w, http.StatusOK, api.CouponResponse{Discount: discount})
	return nil
}

func (h *Handlers) checkout(w http.ResponseWriter, r *http.Request) error {
	var req api.CheckoutRequest
	if err := httpx.Decode(r, &req); err != nil {
		return err
	}
	if !purchasablePlans[req.Plan] {
		return httpx.ErrBadRequest("unknown plan")
	}
	if price, err := strconv.ParseFloat(req.Price, 64); err != nil || price < 0 {
		return httpx.ErrBadRequest("invalid price")
	}
	if req.Coupon != "" {
		if _, err := h.store.CouponDiscount(req.Coupon); err != nil {
			return httpx.ErrBadRequest("Invalid or expired coupon code.")
		}
	}

	u, err := h.currentUser(r)
	if err != nil {
		return err
	}

	updated, err := h.store.Checkout(u.ID, req.Plan)
	if err != nil {
		return err
	}

	httpx.JSON(w, http.StatusOK, apiUser(updated))
	return nil
}
