package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/dto"
	"github.com/SscSPs/contractor_marketplace/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contractHandler handles HTTP requests related to contracts
type contractHandler struct {
	contractService portssvc.ContractSvcFacade
}

// newContractHandler creates a new contractHandler
func newContractHandler(cs portssvc.ContractSvcFacade) *contractHandler {
	return &contractHandler{
		contractService: cs,
	}
}

// registerContractRoutes registers routes related to contracts
func registerContractRoutes(rg *gin.RouterGroup, contractService portssvc.ContractSvcFacade) {
	h := newContractHandler(contractService)

	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.listContracts)
		contracts.GET("/:id", h.getContract)
	}
}

// getContract godoc
// @Summary Get a contract
// @Description Returns the contract if the calling profile is its client or contractor
// @Tags contracts
// @Produce json
// @Param profile_id header int true "Calling profile ID"
// @Param id path int true "Contract ID"
// @Success 200 {object} dto.ContractResponse
// @Failure 400 {object} map[string]string "Invalid contract ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Contract not found"
// @Failure 500 {object} map[string]string "Failed to get contract"
// @Router /contracts/{id} [get]
func (h *contractHandler) getContract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerProfile(c)
	if !ok {
		return
	}

	contractID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || contractID <= 0 {
		logger.Warn("Invalid contract ID in path", slog.String("id", c.Param("id")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract ID"})
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), caller.ID, contractID)
	if err != nil {
		respondError(c, logger, err, "Failed to get contract")
		return
	}

	c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

// listContracts godoc
// @Summary List contracts
// @Description Lists the calling profile's contracts that are not terminated
// @Tags contracts
// @Produce json
// @Param profile_id header int true "Calling profile ID"
// @Success 200 {array} dto.ContractResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list contracts"
// @Router /contracts [get]
func (h *contractHandler) listContracts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	caller, ok := callerProfile(c)
	if !ok {
		return
	}

	contracts, err := h.contractService.ListContracts(c.Request.Context(), caller.ID)
	if err != nil {
		respondError(c, logger, err, "Failed to list contracts")
		return
	}

	logger.Debug("Listed contracts", slog.Int("count", len(contracts)))
	c.JSON(http.StatusOK, dto.ToContractResponses(contracts))
}
