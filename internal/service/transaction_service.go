package service

import (
	"context"
	"time"

	"github.com/eprinting/printshop-backend/internal/model"
	"github.com/eprinting/printshop-backend/internal/repository"
)

// DailySummary is the owner's "today's earnings" view.
type DailySummary struct {
	All               []model.Transaction `json:"allTransactions"`
	Today             []model.Transaction `json:"todayTransactions"`
	TotalEarningToday float64             `json:"totalEarningToday"`
}

type TransactionService interface {
	DailySummary(ctx context.Context, ownerID string) (*DailySummary, error)
}

type transactionService struct {
	orders repository.OrderRepository
	now    func() time.Time
}

func NewTransactionService(orders repository.OrderRepository) TransactionService {
	return &transactionService{orders: orders, now: time.Now}
}

// DailySummary refetches the owner's full order history, projects it onto
// transaction records and reduces the local calendar day's slice. It is a pure
// read: invoked twice on an unchanged order set it returns the same result.
func (s *transactionService) DailySummary(ctx context.Context, ownerID string) (*DailySummary, error) {
	if ownerID == "" {
		return nil, ErrUnauthenticated
	}
	orders, err := s.orders.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	all := make([]model.Transaction, 0, len(orders))
	for _, o := range orders {
		all = append(all, model.TransactionFromOrder(o))
	}

	start, end := DayBounds(s.now())
	today := []model.Transaction{}
	total := 0.0
	for _, t := range all {
		if t.Date >= start && t.Date <= end {
			today = append(today, t)
			total += t.Price
		}
	}
	return &DailySummary{All: all, Today: today, TotalEarningToday: total}, nil
}

// DayBounds returns the inclusive epoch-milli bounds of now's local calendar
// day, [00:00:00.000, 23:59:59.999].
func DayBounds(now time.Time) (start, end int64) {
	y, m, d := now.Date()
	s := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return s.UnixMilli(), s.AddDate(0, 0, 1).UnixMilli() - 1
}
