package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/dto"
	"github.com/SscSPs/contractor_marketplace/internal/middleware"
	"github.com/SscSPs/contractor_marketplace/internal/utils"
	"github.com/gin-gonic/gin"
)

// balanceHandler handles HTTP requests that move money into profile balances
type balanceHandler struct {
	balanceService portssvc.BalanceSvc
	posthogClient  *utils.PosthogClientWrapper
}

// newBalanceHandler creates a new balanceHandler
func newBalanceHandler(bs portssvc.BalanceSvc, posthogClient *utils.PosthogClientWrapper) *balanceHandler {
	return &balanceHandler{
		balanceService: bs,
		posthogClient:  posthogClient,
	}
}

// registerBalanceRoutes registers routes related to balances
func registerBalanceRoutes(rg *gin.RouterGroup, balanceService portssvc.BalanceSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newBalanceHandler(balanceService, posthogClient)

	balances := rg.Group("/balances")
	{
		balances.POST("/deposit/:userId", h.deposit)
	}
}

// deposit godoc
// @Summary Deposit into a balance
// @Description Adds money to a profile balance. A deposit may not exceed 25% of the client's unpaid in-progress jobs.
// @Tags balances
// @Accept json
// @Produce json
// @Param profile_id header int true "Calling profile ID"
// @Param userId path int true "Profile ID receiving the deposit"
// @Param deposit body dto.DepositRequest true "Deposit amount"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string "Invalid amount or deposit cap exceeded"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Profile may not receive deposits"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Failed to deposit"
// @Router /balances/deposit/{userId} [post]
func (h *balanceHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, ok := callerProfile(c); !ok {
		return
	}

	profileID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || profileID <= 0 {
		logger.Warn("Invalid profile ID in path", slog.String("userId", c.Param("userId")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile ID"})
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind deposit request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("target_profile_id", profileID))
	logger.Info("Received request to deposit")

	profile, err := h.balanceService.Deposit(c.Request.Context(), profileID, *req.Amount)
	if err != nil {
		respondError(c, logger, err, "Failed to deposit")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "balance_deposited", map[string]any{
		"target_profile_id": profile.ID,
		"amount":            req.Amount.String(),
	})

	logger.Info("Deposit applied", slog.String("balance", profile.Balance.String()))
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
