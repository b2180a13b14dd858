package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/service"
)

type UserHandler struct {
	svc service.AuthService
}

func NewUserHandler(svc service.AuthService) *UserHandler {
	return &UserHandler{svc: svc}
}

type SignUpRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	UserType      string `json:"userType"`
	Gcash         string `json:"gcash"`
	ContactNumber string `json:"contactNumber"`
	ShopName      string `json:"shopName"`
	ShopLocation  string `json:"shopLocation"`
}

func (h *UserHandler) SignUp(c echo.Context) error {
	var req SignUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	u, err := h.svc.SignUp(c.Request().Context(), service.SignUpInput{
		Name:          req.Name,
		Email:         req.Email,
		Password:      req.Password,
		UserType:      req.UserType,
		Gcash:         req.Gcash,
		ContactNumber: req.ContactNumber,
		ShopName:      req.ShopName,
		ShopLocation:  req.ShopLocation,
	})
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserHandler) Me(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	u, err := h.svc.Profile(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

type UpdateProfileRequest struct {
	Name          string `json:"name"`
	Gcash         string `json:"gcash"`
	ContactNumber string `json:"contactNumber"`
	ShopName      string `json:"shopName"`
	ShopLocation  string `json:"shopLocation"`
}

// UpdateMe updates the caller's profile. Owners may also update their mirrored
// shop fields; customers only their name and payout handle.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	u, err := h.svc.Profile(c.Request().Context(), uid)
	if err != nil {
		return errJSON(c, err)
	}
	if u.Role == model.RoleOwner {
		err = h.svc.UpdateOwner(c.Request().Context(), uid, req.Name, req.Gcash, req.ContactNumber, req.ShopName, req.ShopLocation)
	} else {
		err = h.svc.UpdateCustomer(c.Request().Context(), uid, req.Name, req.Gcash)
	}
	if err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

func (h *UserHandler) ChangePassword(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if uid == "" {
		return c.JSON(http.StatusUnauthorized, NewErrorResponse("unauthorized", "missing uid"))
	}
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if len(req.NewPassword) < 6 {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "password must be at least 6 characters"))
	}
	if err := h.svc.ChangePassword(c.Request().Context(), uid, req.NewPassword); err != nil {
		return errJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
