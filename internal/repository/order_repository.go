package repository

import (
	"context"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog"
	"google.golang.org/api/iterator"

	"github.com/eprinting/printshop-backend/internal/model"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

const ordersCollection = "orders"

type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) (string, error)
	FindByCustomer(ctx context.Context, userID string) ([]model.Order, error)
	FindByOwner(ctx context.Context, ownerID string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	SubscribeByCustomer(ctx context.Context, userID string) *OrderSubscription
	SubscribeByOwner(ctx context.Context, ownerID string) *OrderSubscription
}

// OrderSubscription owns one live query listener. Updates delivers the full
// current result set on every remote change until Close releases the listener,
// after which the channel is closed.
type OrderSubscription struct {
	updates chan []model.Order
	cancel  context.CancelFunc
	once    sync.Once
}

func NewOrderSubscription(updates chan []model.Order, cancel context.CancelFunc) *OrderSubscription {
	return &OrderSubscription{updates: updates, cancel: cancel}
}

func (s *OrderSubscription) Updates() <-chan []model.Order { return s.updates }

func (s *OrderSubscription) Close() {
	s.once.Do(s.cancel)
}

type orderRepository struct {
	client *firestore.Client
}

func NewOrderRepository(client *firestore.Client) OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) Create(ctx context.Context, o *model.Order) (string, error) {
	ref, _, err := r.client.Collection(ordersCollection).Add(ctx, o)
	if err != nil {
		return "", err
	}
	o.ID = ref.ID
	return ref.ID, nil
}

func (r *orderRepository) FindByCustomer(ctx context.Context, userID string) ([]model.Order, error) {
	return r.findByField(ctx, "userId", userID)
}

func (r *orderRepository) FindByOwner(ctx context.Context, ownerID string) ([]model.Order, error) {
	return r.findByField(ctx, "ownerId", ownerID)
}

func (r *orderRepository) findByField(ctx context.Context, field, value string) ([]model.Order, error) {
	it := r.client.Collection(ordersCollection).Where(field, "==", value).Documents(ctx)
	defer it.Stop()

	orders := []model.Order{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		o, err := model.OrderFromDoc(doc)
		if err != nil {
			// Malformed documents are dropped, not fatal.
			logger.Debug().Str("doc", doc.Ref.ID).Msg("skipping malformed order document")
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	_, err := r.client.Collection(ordersCollection).Doc(orderID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
	})
	return err
}

func (r *orderRepository) SubscribeByCustomer(ctx context.Context, userID string) *OrderSubscription {
	return r.subscribe(ctx, "userId", userID)
}

func (r *orderRepository) SubscribeByOwner(ctx context.Context, ownerID string) *OrderSubscription {
	return r.subscribe(ctx, "ownerId", ownerID)
}

func (r *orderRepository) subscribe(ctx context.Context, field, value string) *OrderSubscription {
	sctx, cancel := context.WithCancel(ctx)
	updates := make(chan []model.Order, 1)
	sub := NewOrderSubscription(updates, cancel)

	go func() {
		defer close(updates)
		it := r.client.Collection(ordersCollection).Where(field, "==", value).Snapshots(sctx)
		defer it.Stop()
		for {
			snap, err := it.Next()
			if err != nil {
				if sctx.Err() == nil {
					logger.Error().Err(err).Str(field, value).Msg("orders listen failed")
				}
				return
			}
			orders := []model.Order{}
			for {
				doc, err := snap.Documents.Next()
				if err == iterator.Done {
					break
				}
				if err != nil {
					logger.Error().Err(err).Msg("orders snapshot read failed")
					break
				}
				o, err := model.OrderFromDoc(doc)
				if err != nil {
					logger.Debug().Str("doc", doc.Ref.ID).Msg("skipping malformed order document")
					continue
				}
				orders = append(orders, o)
			}
			select {
			case updates <- orders:
			case <-sctx.Done():
				return
			}
		}
	}()

	return sub
}
