package server

import (
	"net/http"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/eprinting/printshop-backend/internal/config"
	"github.com/eprinting/printshop-backend/internal/db"
	"github.com/eprinting/printshop-backend/internal/handler"
	appmw "github.com/eprinting/printshop-backend/internal/middleware"
	"github.com/eprinting/printshop-backend/internal/repository"
	"github.com/eprinting/printshop-backend/internal/service"
)

type Server struct {
	e        *echo.Echo
	orderSvc service.OrderService
}

func New(clients *db.Clients, storageClient *storage.Client, cfg *config.Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			u, err := url.Parse(origin)
			if err != nil {
				return false, nil
			}
			return u.Scheme == "capacitor" || u.Scheme == "ionic", nil
		},
	}))

	orderRepo := repository.NewOrderRepository(clients.Firestore)
	shopRepo := repository.NewShopRepository(clients.Firestore)
	userRepo := repository.NewUserRepository(clients.Firestore)

	orderSvc := service.NewOrderService(orderRepo, shopRepo)
	paperSvc := service.NewPaperService(shopRepo)
	shopSvc := service.NewShopService(shopRepo)
	txSvc := service.NewTransactionService(orderRepo)
	authSvc := service.NewAuthService(clients.Auth, userRepo, shopRepo)
	uploadSvc := service.NewUploadService(storageClient, cfg.StorageBucket, cfg.UploadFolder)

	orderHandler := handler.NewOrderHandler(orderSvc)
	paperHandler := handler.NewPaperHandler(paperSvc)
	shopHandler := handler.NewShopHandler(shopSvc)
	txHandler := handler.NewTransactionHandler(txSvc)
	userHandler := handler.NewUserHandler(authSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	paymentHandler := handler.NewPaymentHandler()

	authMw := appmw.NewAuthMiddleware(clients.Auth)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})

	api := e.Group("/api")
	api.POST("/auth/signup", userHandler.SignUp)
	api.GET("/shops", shopHandler.List)
	api.POST("/payments/outcome", paymentHandler.Outcome, authMw.RequireAuth)

	api.GET("/me", userHandler.Me, authMw.RequireAuth)
	api.PUT("/me", userHandler.UpdateMe, authMw.RequireAuth)
	api.POST("/me/password", userHandler.ChangePassword, authMw.RequireAuth)

	api.POST("/uploads", uploadHandler.Upload, authMw.RequireAuth)

	api.POST("/orders", orderHandler.Create, authMw.RequireAuth)
	api.POST("/orders/:id/status", orderHandler.UpdateStatus, authMw.RequireAuth)
	api.GET("/me/orders", orderHandler.ListMine, authMw.RequireAuth)
	api.GET("/me/orders/stream", orderHandler.StreamMine, authMw.RequireAuth)

	api.GET("/owner/shop", shopHandler.Mine, authMw.RequireAuth)
	api.GET("/owner/orders", orderHandler.ListOwner, authMw.RequireAuth)
	api.GET("/owner/orders/stream", orderHandler.StreamOwner, authMw.RequireAuth)
	api.GET("/owner/papers", paperHandler.List, authMw.RequireAuth)
	api.POST("/owner/papers", paperHandler.Add, authMw.RequireAuth)
	api.PUT("/owner/papers/:index", paperHandler.Update, authMw.RequireAuth)
	api.DELETE("/owner/papers/:index", paperHandler.Delete, authMw.RequireAuth)
	api.GET("/owner/transactions/today", txHandler.Today, authMw.RequireAuth)

	return &Server{e: e, orderSvc: orderSvc}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Shutdown tears down live subscriptions before closing the listener.
func (s *Server) Shutdown() {
	s.orderSvc.Close()
	_ = s.e.Close()
}
