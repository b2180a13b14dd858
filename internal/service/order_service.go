package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/repository"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthenticated = errors.New("user not logged in")
	ErrShopRequired    = errors.New("please select a shop")
	ErrPaperRequired   = errors.New("please select paper")
	ErrFileRequired    = errors.New("please upload a file")
	ErrInvalidCopies   = errors.New("copies must be at least 1")
	ErrInvalidStatus   = errors.New("unknown order status")
)

type CreateOrderInput struct {
	UserID        string
	CustomerName  string
	ShopID        string
	Paper         string // paper option label, e.g. "Glossy A4"
	Color         string
	Copies        int
	FileURL       string
	FileName      string
	PaymentStatus string
}

type OrderService interface {
	Create(ctx context.Context, in CreateOrderInput) (*model.Order, error)
	ListByCustomer(ctx context.Context, userID string) ([]model.Order, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
	WatchCustomer(ctx context.Context, userID string) *repository.OrderSubscription
	WatchOwner(ctx context.Context, ownerID string) *repository.OrderSubscription
	Close()
}

type orderService struct {
	orders repository.OrderRepository
	shops  repository.ShopRepository

	mu          sync.Mutex
	customerSub *repository.OrderSubscription
	ownerSub    *repository.OrderSubscription
}

func NewOrderService(orders repository.OrderRepository, shops repository.ShopRepository) OrderService {
	return &orderService{orders: orders, shops: shops}
}

// Create validates every precondition locally before touching the store, then
// writes the order with its price frozen from the shop's current catalog.
func (s *orderService) Create(ctx context.Context, in CreateOrderInput) (*model.Order, error) {
	if in.UserID == "" {
		return nil, ErrUnauthenticated
	}
	if in.ShopID == "" {
		return nil, ErrShopRequired
	}
	if in.Paper == "" {
		return nil, ErrPaperRequired
	}
	if in.FileURL == "" {
		return nil, ErrFileRequired
	}
	if in.Copies < 1 {
		return nil, ErrInvalidCopies
	}

	shop, err := s.shops.FindByID(ctx, in.ShopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, ErrShopRequired
		}
		return nil, err
	}
	var paper *model.PaperOption
	for i := range shop.PaperOptions {
		if shop.PaperOptions[i].Name() == in.Paper {
			paper = &shop.PaperOptions[i]
			break
		}
	}
	if paper == nil {
		return nil, ErrPaperRequired
	}

	color := model.ColorModeBW
	if in.Color == model.ColorModeColored {
		color = model.ColorModeColored
	}
	payment, _ := model.PaymentStatusFromString(in.PaymentStatus)
	name := in.CustomerName
	if name == "" {
		name = "Unknown"
	}

	o := &model.Order{
		UserID:        in.UserID,
		ShopID:        shop.ID,
		OwnerID:       shop.OwnerID,
		CustomerName:  name,
		FileURL:       in.FileURL,
		FileName:      in.FileName,
		Copies:        in.Copies,
		Price:         paper.UnitPrice(color) * float64(in.Copies),
		Status:        model.OrderStatusPending,
		PaymentStatus: payment,
		Date:          time.Now().UnixMilli(),
		Paper:         paper.Name(),
		Color:         color,
		ShopName:      shop.ShopName,
	}
	if _, err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *orderService) ListByCustomer(ctx context.Context, userID string) ([]model.Order, error) {
	if userID == "" {
		return nil, ErrUnauthenticated
	}
	orders, err := s.orders.FindByCustomer(ctx, userID)
	if err != nil {
		return nil, err
	}
	SortCustomerOrders(orders)
	return orders, nil
}

func (s *orderService) ListByOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	orders, err := s.orders.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	SortOwnerOrders(orders)
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID, status string) error {
	if orderID == "" {
		return ErrNotFound
	}
	st, ok := model.OrderStatusFromString(status)
	if !ok {
		return ErrInvalidStatus
	}
	return s.orders.UpdateStatus(ctx, orderID, st)
}

// WatchCustomer installs the customer-orders subscription slot. A previous
// subscription in the slot is closed first so only one listener is ever live
// per slot.
func (s *orderService) WatchCustomer(ctx context.Context, userID string) *repository.OrderSubscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customerSub != nil {
		s.customerSub.Close()
	}
	inner := s.orders.SubscribeByCustomer(ctx, userID)
	s.customerSub = wrapSorted(inner, SortCustomerOrders)
	return s.customerSub
}

func (s *orderService) WatchOwner(ctx context.Context, ownerID string) *repository.OrderSubscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ownerSub != nil {
		s.ownerSub.Close()
	}
	inner := s.orders.SubscribeByOwner(ctx, ownerID)
	s.ownerSub = wrapSorted(inner, SortOwnerOrders)
	return s.ownerSub
}

func (s *orderService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customerSub != nil {
		s.customerSub.Close()
		s.customerSub = nil
	}
	if s.ownerSub != nil {
		s.ownerSub.Close()
		s.ownerSub = nil
	}
}

// wrapSorted forwards snapshots from inner with the view ordering applied.
// Sends are latest-wins: an unread pending snapshot is replaced rather than
// blocking the listener goroutine.
func wrapSorted(inner *repository.OrderSubscription, sortFn func([]model.Order)) *repository.OrderSubscription {
	out := make(chan []model.Order, 1)
	sub := repository.NewOrderSubscription(out, inner.Close)
	go func() {
		defer close(out)
		for orders := range inner.Updates() {
			sortFn(orders)
			select {
			case out <- orders:
			default:
				select {
				case <-out:
				default:
				}
				out <- orders
			}
		}
	}()
	return sub
}

// SortCustomerOrders orders the customer history newest first.
func SortCustomerOrders(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date > orders[j].Date
	})
}

// SortOwnerOrders orders the management view newest first, with completed
// orders moved to the end regardless of date.
func SortOwnerOrders(orders []model.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date > orders[j].Date
	})
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Status != model.OrderStatusCompleted && orders[j].Status == model.OrderStatusCompleted
	})
}
