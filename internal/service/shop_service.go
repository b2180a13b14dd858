package service

import (
	"context"
	"errors"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/repository"
)

type ShopService interface {
	List(ctx context.Context) ([]model.Shop, error)
	MyShop(ctx context.Context, ownerID string) (*model.Shop, error)
}

type shopService struct {
	shops repository.ShopRepository
}

func NewShopService(shops repository.ShopRepository) ShopService {
	return &shopService{shops: shops}
}

func (s *shopService) List(ctx context.Context) ([]model.Shop, error) {
	return s.shops.List(ctx)
}

func (s *shopService) MyShop(ctx context.Context, ownerID string) (*model.Shop, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	shop, err := s.shops.FindByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return shop, nil
}
