package rest

import (
	"context"
	"errors"
	"net/http"
	"shopsight/domain"
	"shopsight/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type AnalyticsService interface {
	GetSummary(ctx context.Context, storeID string) (*domain.AnalyticsSummary, error)
}

type AnalyticsHandler struct {
	analyticsService AnalyticsService
	timeout          time.Duration
}

func NewAnalyticsHandler(analyticsService AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		timeout:          10 * time.Second,
	}
}

func (h *AnalyticsHandler) GetAnalytics(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	summary, err := h.analyticsService.GetSummary(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get analytics summary", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}
