package repository

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/eprinting/printshop-backend/internal/model"
)

const shopsCollection = "shops"

var ErrShopNotFound = errors.New("shop not found")

type ShopRepository interface {
	List(ctx context.Context) ([]model.Shop, error)
	FindByID(ctx context.Context, shopID string) (*model.Shop, error)
	FindByOwner(ctx context.Context, ownerID string) (*model.Shop, error)
	Create(ctx context.Context, s *model.Shop) (string, error)
	// SetPaperOptions overwrites the shop's entire paperOptions array. The
	// catalog is always written whole; there is no per-element update.
	SetPaperOptions(ctx context.Context, shopID string, options []model.PaperOption) error
}

type shopRepository struct {
	client *firestore.Client
}

func NewShopRepository(client *firestore.Client) ShopRepository {
	return &shopRepository{client: client}
}

func (r *shopRepository) List(ctx context.Context) ([]model.Shop, error) {
	it := r.client.Collection(shopsCollection).Documents(ctx)
	defer it.Stop()

	shops := []model.Shop{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		s, err := model.ShopFromDoc(doc)
		if err != nil {
			logger.Debug().Str("doc", doc.Ref.ID).Msg("skipping malformed shop document")
			continue
		}
		shops = append(shops, s)
	}
	return shops, nil
}

func (r *shopRepository) FindByID(ctx context.Context, shopID string) (*model.Shop, error) {
	doc, err := r.client.Collection(shopsCollection).Doc(shopID).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, ErrShopNotFound
		}
		return nil, err
	}
	s, err := model.ShopFromDoc(doc)
	if err != nil {
		return nil, ErrShopNotFound
	}
	return &s, nil
}

// FindByOwner returns the owner's shop. Each owner is expected to have exactly
// one; if duplicates exist the first match wins.
func (r *shopRepository) FindByOwner(ctx context.Context, ownerID string) (*model.Shop, error) {
	it := r.client.Collection(shopsCollection).Where("ownerId", "==", ownerID).Limit(1).Documents(ctx)
	defer it.Stop()

	doc, err := it.Next()
	if err == iterator.Done {
		return nil, ErrShopNotFound
	}
	if err != nil {
		return nil, err
	}
	s, err := model.ShopFromDoc(doc)
	if err != nil {
		return nil, ErrShopNotFound
	}
	return &s, nil
}

func (r *shopRepository) Create(ctx context.Context, s *model.Shop) (string, error) {
	ref, _, err := r.client.Collection(shopsCollection).Add(ctx, s)
	if err != nil {
		return "", err
	}
	s.ID = ref.ID
	return ref.ID, nil
}

func (r *shopRepository) SetPaperOptions(ctx context.Context, shopID string, options []model.PaperOption) error {
	_, err := r.client.Collection(shopsCollection).Doc(shopID).Update(ctx, []firestore.Update{
		{Path: "paperOptions", Value: options},
	})
	return err
}
