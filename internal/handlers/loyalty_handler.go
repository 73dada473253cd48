package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/heritagecuts/barbershop-api/internal/httperr"
	"github.com/heritagecuts/barbershop-api/internal/httpresp"
	"github.com/heritagecuts/barbershop-api/internal/middleware"
	ucLoyalty "github.com/heritagecuts/barbershop-api/internal/usecase/loyalty"
)

type LoyaltyHandler struct {
	snapshot     *ucLoyalty.GetSnapshot
	transactions *ucLoyalty.ListTransactions
	redeem       *ucLoyalty.RedeemPoints
}

func NewLoyaltyHandler(
	snapshot *ucLoyalty.GetSnapshot,
	transactions *ucLoyalty.ListTransactions,
	redeem *ucLoyalty.RedeemPoints,
) *LoyaltyHandler {
	return &LoyaltyHandler{
		snapshot:     snapshot,
		transactions: transactions,
		redeem:       redeem,
	}
}

func (h *LoyaltyHandler) GetSnapshot(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	snap, err := h.snapshot.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_loyalty", "Could not load loyalty information.")
		return
	}

	c.JSON(http.StatusOK, snap)
}

func (h *LoyaltyHandler) ListTransactions(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	txs, err := h.transactions.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_transactions", "Could not load the points history.")
		return
	}

	httpresp.List(c, txs)
}

type RedeemRequest struct {
	Points      int    `json:"points" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	var req RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	actor := middleware.ActorFromContext(c)

	err := h.redeem.Execute(c.Request.Context(), actor.UserID, req.Points, req.Description)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "insufficient_points"):
			httperr.BadRequest(c, "insufficient_points", "Not enough points for this redemption.")
		case httperr.IsBusiness(err, "invalid_points"):
			httperr.BadRequest(c, "invalid_points", "Points must be positive.")
		default:
			httperr.Internal(c, "failed_to_redeem", "Could not redeem points.")
		}
		return
	}

	snap, err := h.snapshot.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_loyalty", "Could not load loyalty information.")
		return
	}

	c.JSON(http.StatusOK, snap)
}
