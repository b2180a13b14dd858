package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/service"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(svc service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type CreateOrderRequest struct {
	ShopID        string `json:"shopId"`
	Paper         string `json:"paper"`
	Color         string `json:"color"`
	Copies        int    `json:"copies"`
	FileURL       string `json:"fileUrl"`
	FileName      string `json:"fileName"`
	PaymentStatus string `json:"paymentStatus"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	name, _ := c.Get("displayName").(string)
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	o, err := h.svc.Create(c.Request().Context(), service.CreateOrderInput{
		UserID:        uid,
		CustomerName:  name,
		ShopID:        req.ShopID,
		Paper:         req.Paper,
		Color:         req.Color,
		Copies:        req.Copies,
		FileURL:       req.FileURL,
		FileName:      req.FileName,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

type OrderListResponse struct {
	Orders []model.Order `json:"orders"`
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	orders, err := h.svc.ListByCustomer(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}

func (h *OrderHandler) ListOwner(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	orders, err := h.svc.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := h.svc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *OrderHandler) StreamMine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	sub := h.svc.WatchCustomer(c.Request().Context(), uid)
	return streamOrders(c, sub.Updates, sub.Close)
}

func (h *OrderHandler) StreamOwner(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	sub := h.svc.WatchOwner(c.Request().Context(), uid)
	return streamOrders(c, sub.Updates, sub.Close)
}

// streamOrders relays live result sets over server-sent events until the
// client disconnects or the subscription is replaced.
func streamOrders(c echo.Context, updates func() <-chan []model.Order, closeFn func()) error {
	defer closeFn()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case orders, ok := <-updates():
			if !ok {
				return nil
			}
			payload, err := json.Marshal(OrderListResponse{Orders: orders})
			if err != nil {
				continue
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
