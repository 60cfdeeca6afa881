package rest

import (
	"context"
	"errors"
	"net/http"
	"shopsight/domain"
	"shopsight/pkg/logger"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type StoreService interface {
	Connect(ctx context.Context, shopDomain, shopName string) (domain.Store, error)
	GetStores(ctx context.Context) ([]domain.Store, error)
	GetStoreByID(ctx context.Context, id string) (domain.Store, error)
	Disconnect(ctx context.Context, id string) error
	GetProducts(ctx context.Context, storeID string, limit int) ([]domain.Product, error)
	GetOrders(ctx context.Context, storeID string, limit int) ([]domain.Order, error)
	GetCustomers(ctx context.Context, storeID string, limit int) ([]domain.Customer, error)
}

type StoreHandler struct {
	storeService StoreService
	validator    *validator.Validate
	timeout      time.Duration
}

func NewStoreHandler(storeService StoreService) *StoreHandler {
	return &StoreHandler{
		storeService: storeService,
		validator:    validator.New(),
		timeout:      10 * time.Second,
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

type ConnectStoreRequest struct {
	ShopDomain string `json:"shop_domain" validate:"required"`
	ShopName   string `json:"shop_name" validate:"required"`
}

type ListQuery struct {
	Limit int `query:"limit" validate:"gte=0,lte=200"`
}

func (h *StoreHandler) ConnectStore(c echo.Context) error {
	var req ConnectStoreRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate store connect request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newStore, err := h.storeService.Connect(ctx, req.ShopDomain, req.ShopName)
	if err != nil {
		logger.Error("Failed to connect store", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newStore))
}

func (h *StoreHandler) GetStores(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	stores, err := h.storeService.GetStores(ctx)
	if err != nil {
		logger.Error("Failed to get stores", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(stores))
}

func (h *StoreHandler) GetStoreByID(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	foundStore, err := h.storeService.GetStoreByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to get store", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(foundStore))
}

func (h *StoreHandler) DisconnectStore(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.storeService.Disconnect(ctx, c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		logger.Error("Failed to disconnect store", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("Store disconnected successfully"))
}

func (h *StoreHandler) GetProducts(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.storeService.GetProducts(ctx, c.Param("id"), q.Limit)
	if err != nil {
		logger.Error("Failed to get products", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *StoreHandler) GetOrders(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	orders, err := h.storeService.GetOrders(ctx, c.Param("id"), q.Limit)
	if err != nil {
		logger.Error("Failed to get orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}

func (h *StoreHandler) GetCustomers(c echo.Context) error {
	var q ListQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validator.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	customers, err := h.storeService.GetCustomers(ctx, c.Param("id"), q.Limit)
	if err != nil {
		logger.Error("Failed to get customers", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(customers))
}
