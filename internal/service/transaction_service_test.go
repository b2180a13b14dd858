package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eprinting/printshop-backend/internal/model"
)

func TestDayBounds(t *testing.T) {
	loc := time.FixedZone("PHT", 8*60*60)
	now := time.Date(2024, 3, 15, 14, 30, 45, 123e6, loc)

	start, end := DayBounds(now)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc).UnixMilli(), start)
	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999e6, loc).UnixMilli(), end)
	assert.Equal(t, int64(24*60*60*1000-1), end-start)
}

func TestDailySummary(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	repo := newFakeOrderRepo()
	repo.byOwner["owner-1"] = []model.Order{
		{ID: "o1", UserID: "u1", OwnerID: "owner-1", CustomerName: "Ana", Price: 100, Date: yesterday.UnixMilli()},
		{ID: "o2", UserID: "u2", OwnerID: "owner-1", CustomerName: "Ben", Price: 50, Date: now.UnixMilli()},
		{ID: "o3", UserID: "u3", OwnerID: "owner-1", CustomerName: "Cara", Price: 75, Date: now.Add(2 * time.Hour).UnixMilli()},
	}
	svc := &transactionService{orders: repo, now: func() time.Time { return now }}

	summary, err := svc.DailySummary(context.Background(), "owner-1")
	require.NoError(t, err)

	assert.Len(t, summary.All, 3)
	require.Len(t, summary.Today, 2)
	assert.Equal(t, "Ben", summary.Today[0].CustomerName)
	assert.Equal(t, "Cara", summary.Today[1].CustomerName)
	assert.Equal(t, 125.0, summary.TotalEarningToday)
}

func TestDailySummaryIsIdempotent(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := newFakeOrderRepo()
	repo.byOwner["owner-1"] = []model.Order{
		{ID: "o1", UserID: "u1", OwnerID: "owner-1", Price: 42, Date: now.UnixMilli()},
	}
	svc := &transactionService{orders: repo, now: func() time.Time { return now }}

	first, err := svc.DailySummary(context.Background(), "owner-1")
	require.NoError(t, err)
	second, err := svc.DailySummary(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDailySummaryEdges(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	start, end := DayBounds(now)

	repo := newFakeOrderRepo()
	repo.byOwner["owner-1"] = []model.Order{
		{ID: "first-ms", OwnerID: "owner-1", Price: 1, Date: start},
		{ID: "last-ms", OwnerID: "owner-1", Price: 2, Date: end},
		{ID: "next-day", OwnerID: "owner-1", Price: 4, Date: end + 1},
	}
	svc := &transactionService{orders: repo, now: func() time.Time { return now }}

	summary, err := svc.DailySummary(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Len(t, summary.Today, 2)
	assert.Equal(t, 3.0, summary.TotalEarningToday)
}

func TestDailySummaryRequiresOwner(t *testing.T) {
	svc := &transactionService{orders: newFakeOrderRepo(), now: time.Now}
	_, err := svc.DailySummary(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestTransactionFromOrder(t *testing.T) {
	o := model.Order{ID: "o1", CustomerName: "", Paper: "Glossy A4", Copies: 3, Price: 18, Date: 1700000000000}
	tr := model.TransactionFromOrder(o)
	assert.Equal(t, "Unknown", tr.CustomerName)
	assert.Equal(t, "Glossy A4", tr.Paper)
	assert.Equal(t, 18.0, tr.Price)
}
