package handler

import (
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"github.com/eprinting/printshop-backend/internal/service"
)

type UploadHandler struct {
	svc service.UploadService
}

func NewUploadHandler(svc service.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

type UploadResponse struct {
	FileURL  string `json:"fileUrl"`
	FileName string `json:"fileName"`
}

func (h *UploadHandler) Upload(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "file is required"))
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "cannot read file"))
	}
	defer src.Close()

	fileName := path.Base(fh.Filename)
	url, err := h.svc.Upload(c.Request().Context(), fileName, fh.Header.Get("Content-Type"), src)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, UploadResponse{FileURL: url, FileName: fileName})
}
