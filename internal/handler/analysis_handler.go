package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"wolfstreet/internal/middleware"
	"wolfstreet/internal/service"
)

// AnalysisHandler handles market analysis requests.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// AnalyzeRequest represents an analysis request body.
type AnalyzeRequest struct {
	Symbol    string `json:"symbol" validate:"required"`
	Timeframe string `json:"timeframe"`
	Strategy  string `json:"strategy"`
	Lookback  int    `json:"lookback" validate:"omitempty,gte=2,lte=500"`
}

// Analyze godoc
// @Summary Compute a moving-average signal for a symbol
// @Tags analysis
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AnalyzeRequest true "Analysis query"
// @Success 200 {object} service.AnalysisResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /analysis [post]
func (h *AnalysisHandler) Analyze(c echo.Context) error {
	if _, ok := middleware.PrincipalFrom(c); !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.analysisService.Analyze(c.Request().Context(), service.AnalysisRequest{
		Symbol:    req.Symbol,
		Timeframe: req.Timeframe,
		Strategy:  req.Strategy,
		Lookback:  req.Lookback,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "analysis failed")
	}
	return c.JSON(http.StatusOK, result)
}
