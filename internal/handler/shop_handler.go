package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/service"
)

type ShopHandler struct {
	svc service.ShopService
}

func NewShopHandler(svc service.ShopService) *ShopHandler {
	return &ShopHandler{svc: svc}
}

type ShopListResponse struct {
	Shops []model.Shop `json:"shops"`
}

func (h *ShopHandler) List(c echo.Context) error {
	shops, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, ShopListResponse{Shops: shops})
}

func (h *ShopHandler) Mine(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	shop, err := h.svc.MyShop(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, shop)
}
