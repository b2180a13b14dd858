package service

import (
	"context"
	"errors"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/repository"
)

type fakeOrderRepo struct {
	byCustomer map[string][]model.Order
	byOwner    map[string][]model.Order

	created       []model.Order
	statusUpdates map[string]model.OrderStatus
	findErr       error

	customerFeeds map[string]chan []model.Order
	ownerFeeds    map[string]chan []model.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		byCustomer:    map[string][]model.Order{},
		byOwner:       map[string][]model.Order{},
		statusUpdates: map[string]model.OrderStatus{},
		customerFeeds: map[string]chan []model.Order{},
		ownerFeeds:    map[string]chan []model.Order{},
	}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *model.Order) (string, error) {
	o.ID = "order-fake"
	f.created = append(f.created, *o)
	return o.ID, nil
}

func (f *fakeOrderRepo) FindByCustomer(ctx context.Context, userID string) ([]model.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]model.Order(nil), f.byCustomer[userID]...), nil
}

func (f *fakeOrderRepo) FindByOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]model.Order(nil), f.byOwner[ownerID]...), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	f.statusUpdates[orderID] = status
	return nil
}

func (f *fakeOrderRepo) SubscribeByCustomer(ctx context.Context, userID string) *repository.OrderSubscription {
	ch := make(chan []model.Order, 4)
	f.customerFeeds[userID] = ch
	return repository.NewOrderSubscription(ch, func() { close(ch) })
}

func (f *fakeOrderRepo) SubscribeByOwner(ctx context.Context, ownerID string) *repository.OrderSubscription {
	ch := make(chan []model.Order, 4)
	f.ownerFeeds[ownerID] = ch
	return repository.NewOrderSubscription(ch, func() { close(ch) })
}

type fakeShopRepo struct {
	shops    []model.Shop
	setCalls int
	lastSet  []model.PaperOption
	setErr   error
}

func (f *fakeShopRepo) List(ctx context.Context) ([]model.Shop, error) {
	return append([]model.Shop(nil), f.shops...), nil
}

func (f *fakeShopRepo) FindByID(ctx context.Context, shopID string) (*model.Shop, error) {
	for i := range f.shops {
		if f.shops[i].ID == shopID {
			s := f.shops[i]
			return &s, nil
		}
	}
	return nil, repository.ErrShopNotFound
}

func (f *fakeShopRepo) FindByOwner(ctx context.Context, ownerID string) (*model.Shop, error) {
	for i := range f.shops {
		if f.shops[i].OwnerID == ownerID {
			s := f.shops[i]
			return &s, nil
		}
	}
	return nil, repository.ErrShopNotFound
}

func (f *fakeShopRepo) Create(ctx context.Context, s *model.Shop) (string, error) {
	s.ID = "shop-fake"
	f.shops = append(f.shops, *s)
	return s.ID, nil
}

func (f *fakeShopRepo) SetPaperOptions(ctx context.Context, shopID string, options []model.PaperOption) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls++
	f.lastSet = append([]model.PaperOption(nil), options...)
	for i := range f.shops {
		if f.shops[i].ID == shopID {
			f.shops[i].PaperOptions = append([]model.PaperOption(nil), options...)
			return nil
		}
	}
	return errors.New("no such shop")
}
