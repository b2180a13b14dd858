package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/repository"
)

var (
	ErrIndexOutOfRange = errors.New("paper option index out of range")
	ErrInvalidPaper    = errors.New("paper option needs a type, a size and non-negative prices")
)

// PaperService keeps an in-memory mirror of one shop's paper catalog and
// writes the whole array back on every mutation. Catalogs are small and
// single-owner; concurrent sessions race last-writer-wins.
type PaperService interface {
	Load(ctx context.Context, ownerID string) ([]model.PaperOption, error)
	Options() []model.PaperOption
	Add(ctx context.Context, ownerID string, option model.PaperOption) error
	Update(ctx context.Context, ownerID string, index int, option model.PaperOption) error
	Delete(ctx context.Context, ownerID string, index int) error
}

type paperService struct {
	shops repository.ShopRepository

	mu      sync.Mutex
	shopID  string
	options []model.PaperOption
}

func NewPaperService(shops repository.ShopRepository) PaperService {
	return &paperService{shops: shops}
}

// Load replaces the mirror wholesale from the owner's shop document.
func (s *paperService) Load(ctx context.Context, ownerID string) ([]model.PaperOption, error) {
	shop, err := s.shops.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopID = shop.ID
	s.options = append([]model.PaperOption(nil), shop.PaperOptions...)
	return append([]model.PaperOption(nil), s.options...), nil
}

func (s *paperService) Options() []model.PaperOption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.PaperOption(nil), s.options...)
}

func (s *paperService) Add(ctx context.Context, ownerID string, option model.PaperOption) error {
	if err := validatePaperOption(option); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, ownerID); err != nil {
		return err
	}
	next := append(append([]model.PaperOption(nil), s.options...), option)
	if err := s.shops.SetPaperOptions(ctx, s.shopID, next); err != nil {
		return err
	}
	s.options = next
	return nil
}

// Update replaces the option at index. An out-of-range index is a no-op: the
// mirror is untouched and no remote write is issued.
func (s *paperService) Update(ctx context.Context, ownerID string, index int, option model.PaperOption) error {
	if err := validatePaperOption(option); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, ownerID); err != nil {
		return err
	}
	if index < 0 || index >= len(s.options) {
		return ErrIndexOutOfRange
	}
	next := append([]model.PaperOption(nil), s.options...)
	next[index] = option
	if err := s.shops.SetPaperOptions(ctx, s.shopID, next); err != nil {
		return err
	}
	s.options = next
	return nil
}

func (s *paperService) Delete(ctx context.Context, ownerID string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLoaded(ctx, ownerID); err != nil {
		return err
	}
	if index < 0 || index >= len(s.options) {
		return ErrIndexOutOfRange
	}
	next := append([]model.PaperOption(nil), s.options[:index]...)
	next = append(next, s.options[index+1:]...)
	if err := s.shops.SetPaperOptions(ctx, s.shopID, next); err != nil {
		return err
	}
	s.options = next
	return nil
}

// ensureLoaded resolves the shop document on first use. Callers hold s.mu.
func (s *paperService) ensureLoaded(ctx context.Context, ownerID string) error {
	if s.shopID != "" {
		return nil
	}
	shop, err := s.shops.FindByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	s.shopID = shop.ID
	s.options = append([]model.PaperOption(nil), shop.PaperOptions...)
	return nil
}

func validatePaperOption(p model.PaperOption) error {
	if strings.TrimSpace(p.Type) == "" || strings.TrimSpace(p.Size) == "" {
		return ErrInvalidPaper
	}
	if p.PriceBW < 0 || p.PriceColored < 0 {
		return ErrInvalidPaper
	}
	return nil
}
