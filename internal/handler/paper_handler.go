package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/service"
)

type PaperHandler struct {
	svc service.PaperService
}

func NewPaperHandler(svc service.PaperService) *PaperHandler {
	return &PaperHandler{svc: svc}
}

type PaperListResponse struct {
	PaperOptions []model.PaperOption `json:"paperOptions"`
}

func (h *PaperHandler) List(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	options, err := h.svc.Load(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, PaperListResponse{PaperOptions: options})
}

func (h *PaperHandler) Add(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var option model.PaperOption
	if err := c.Bind(&option); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := h.svc.Add(c.Request().Context(), uid, option); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, PaperListResponse{PaperOptions: h.svc.Options()})
}

func (h *PaperHandler) Update(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid index"))
	}
	var option model.PaperOption
	if err := c.Bind(&option); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if err := h.svc.Update(c.Request().Context(), uid, index, option); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, PaperListResponse{PaperOptions: h.svc.Options()})
}

func (h *PaperHandler) Delete(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid index"))
	}
	if err := h.svc.Delete(c.Request().Context(), uid, index); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, PaperListResponse{PaperOptions: h.svc.Options()})
}
