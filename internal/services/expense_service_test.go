package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"expenzo/internal/core"
	"expenzo/internal/storage"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, store storage.Store) *ExpenseService {
	t.Helper()
	svc := NewExpenseService(store)
	svc.now = func() time.Time { return fixedNow }
	if err := svc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return svc
}

func draft(amount, desc string, cat core.Category) core.Draft {
	return core.Draft{
		Amount:      decimal.RequireFromString(amount),
		Description: desc,
		Category:    cat,
	}
}

func TestAddAssignsIDAndDefaultsDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemoryStore())

	first, err := svc.Add(ctx, draft("12.50", "lunch", core.Food))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected id 1, got %d", first.ID)
	}
	if !first.Date.Equal(fixedNow) {
		t.Fatalf("expected date defaulted to now, got %v", first.Date)
	}

	second, err := svc.Add(ctx, draft("3", "coffee", core.Food))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected id 2, got %d", second.ID)
	}

	// Newest first.
	list := svc.List()
	if len(list) != 2 || list[0].ID != 2 || list[1].ID != 1 {
		t.Fatalf("expected [2 1], got %+v", list)
	}
}

func TestAddKeepsExplicitDate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemoryStore())

	d := draft("5", "museum", core.Entertainment)
	d.Date = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	tx, err := svc.Add(ctx, d)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !tx.Date.Equal(d.Date) {
		t.Fatalf("expected explicit date kept, got %v", tx.Date)
	}
}

func TestAddRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := newTestService(t, store)

	bads := []core.Draft{
		{Amount: decimal.NewFromInt(-1), Description: "a", Category: core.Food},
		{Amount: decimal.NewFromInt(1), Description: "", Category: core.Food},
		{Amount: decimal.NewFromInt(1), Description: "a", Category: core.Category("Rent")},
	}
	for i, d := range bads {
		if _, err := svc.Add(ctx, d); !errors.Is(err, core.ErrInvalidTransaction) {
			t.Fatalf("case %d expected ErrInvalidTransaction, got %v", i, err)
		}
	}

	if len(svc.List()) != 0 {
		t.Fatal("collection must stay unchanged after rejected adds")
	}
	if _, ok, _ := store.Get(ctx, storage.KeyExpenses); ok {
		t.Fatal("nothing should have been persisted")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemoryStore())

	tx, err := svc.Add(ctx, draft("10", "snack", core.Food))
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, tx.ID); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if err := svc.Delete(ctx, 999); err != nil {
		t.Fatalf("deleting an unknown id must be a no-op, got %v", err)
	}
	if len(svc.List()) != 0 {
		t.Fatalf("expected empty collection, got %d", len(svc.List()))
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	svc := newTestService(t, store)
	if _, err := svc.Add(ctx, draft("12.34", "lunch", core.Food)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.Add(ctx, draft("7", "bus", core.Transportation)); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A fresh service over the same store sees the same collection.
	reloaded := newTestService(t, store)
	list := reloaded.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(list))
	}
	if list[0].Description != "bus" || list[1].Description != "lunch" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if !list[1].Amount.Equal(decimal.RequireFromString("12.34")) {
		t.Fatalf("amount lost precision: %s", list[1].Amount)
	}

	// IDs keep growing past the persisted maximum.
	tx, err := reloaded.Add(ctx, draft("1", "gum", core.Other))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if tx.ID != 3 {
		t.Fatalf("expected next id 3, got %d", tx.ID)
	}
}

func TestLoadDiscardsMalformedBlob(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	if err := store.Set(ctx, storage.KeyExpenses, []byte("{not json")); err != nil {
		t.Fatalf("seed store: %v", err)
	}

	svc := newTestService(t, store)
	if len(svc.List()) != 0 {
		t.Fatal("malformed blob must yield an empty collection, not an error")
	}

	// The service still works afterwards.
	if _, err := svc.Add(ctx, draft("2", "water", core.Food)); err != nil {
		t.Fatalf("add after recovery: %v", err)
	}
}

func TestListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, storage.NewMemoryStore())
	if _, err := svc.Add(ctx, draft("10", "snack", core.Food)); err != nil {
		t.Fatalf("add: %v", err)
	}

	list := svc.List()
	list[0].Description = "tampered"

	if svc.List()[0].Description != "snack" {
		t.Fatal("List must return a copy the caller cannot mutate in place")
	}
}
