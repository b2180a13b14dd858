package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eprinting/printshop-backend/internal/service"
)

type TransactionHandler struct {
	svc service.TransactionService
}

func NewTransactionHandler(svc service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) Today(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	summary, err := h.svc.DailySummary(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
