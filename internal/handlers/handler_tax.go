package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lukemcknight/reserve/internal/apperrors"
	portssvc "github.com/lukemcknight/reserve/internal/core/ports/services"
	"github.com/lukemcknight/reserve/internal/dto"
	"github.com/lukemcknight/reserve/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxHandler handles HTTP requests related to tax estimation.
type taxHandler struct {
	taxService  portssvc.TaxSvcFacade
	rateService portssvc.StateRateSvcFacade
}

// newTaxHandler creates a new taxHandler.
func newTaxHandler(ts portssvc.TaxSvcFacade, rs portssvc.StateRateSvcFacade) *taxHandler {
	return &taxHandler{
		taxService:  ts,
		rateService: rs,
	}
}

// RegisterTaxRoutes registers routes related to tax estimation. The reload
// route is only mounted when enableRateReload is set.
func RegisterTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade, rateService portssvc.StateRateSvcFacade, enableRateReload bool) {
	h := newTaxHandler(taxService, rateService)

	tax := rg.Group("/tax")
	{
		tax.POST("/calculate", h.calculateReserve)
		tax.GET("/state-rates", h.listStateRates)
		tax.GET("/federal-brackets", h.listFederalBrackets)
		if enableRateReload {
			tax.PUT("/state-rates", h.replaceStateRates)
		}
	}
}

// calculateReserve godoc
// @Summary Estimate the tax reserve for one payment
// @Description Computes self-employment, federal and state tax on a gross NIL payment and the recommended cash reserve
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateTaxRequest true "Gross amount, state code and federal effective rate"
// @Success 200 {object} dto.TaxEstimateResponse
// @Failure 400 {object} map[string]string "Invalid amount or federal rate"
// @Failure 500 {object} map[string]string "Failed to calculate reserve"
// @Router /tax/calculate [post]
func (h *taxHandler) calculateReserve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateTaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CalculateReserve", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to calculate reserve", slog.String("state", req.State))

	estimate, err := h.taxService.CalculateReserve(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error calculating reserve", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to calculate reserve in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate reserve"})
		}
		return
	}

	logger.Info("Reserve calculated successfully")
	c.JSON(http.StatusOK, dto.ToTaxEstimateResponse(estimate))
}

// listStateRates godoc
// @Summary List state tax rates
// @Description Retrieves every curated state rate entry, sorted by display name, for the client state selector
// @Tags tax
// @Produce  json
// @Success 200 {object} dto.StateRatesResponse
// @Failure 500 {object} map[string]string "Failed to list state rates"
// @Router /tax/state-rates [get]
func (h *taxHandler) listStateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list state rates")

	rates, err := h.rateService.ListStateRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list state rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list state rates"})
		return
	}

	logger.Info("State rates listed successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToStateRatesResponse(rates))
}

// listFederalBrackets godoc
// @Summary List the federal effective-rate menu
// @Description Retrieves the representative federal effective rates clients offer in their rate selector
// @Tags tax
// @Produce  json
// @Success 200 {object} dto.FederalBracketsResponse
// @Router /tax/federal-brackets [get]
func (h *taxHandler) listFederalBrackets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list federal brackets")

	brackets := h.taxService.ListFederalBrackets(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToFederalBracketsResponse(brackets))
}

// replaceStateRates godoc
// @Summary Replace the state rate table
// @Description Atomically swaps in a full replacement rate table (only mounted when rate reload is enabled)
// @Tags tax
// @Accept  json
// @Produce  json
// @Param   request body dto.ReplaceStateRatesRequest true "Full replacement table"
// @Success 204 "Table replaced"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Duplicate state code"
// @Failure 500 {object} map[string]string "Failed to replace state rates"
// @Router /tax/state-rates [put]
func (h *taxHandler) replaceStateRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceStateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceStateRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to replace state rates", slog.Int("count", len(req.States)))

	if err := h.rateService.ReplaceStateRates(c.Request.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate state code in replacement table", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error replacing state rates", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to replace state rates in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace state rates"})
		}
		return
	}

	logger.Info("State rates replaced successfully")
	c.Status(http.StatusNoContent)
}
