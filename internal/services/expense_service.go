// Package services owns the mutable application state: the canonical
// transaction list and the display settings, both synchronized with the
// persistent store on every mutation.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"expenzo/internal/core"
	"expenzo/internal/storage"
)

// ExpenseService holds the canonical in-memory transaction list. Every
// mutation writes the whole collection back to the store before it commits
// in memory, so a failed write leaves the visible state unchanged.
type ExpenseService struct {
	store    storage.Store
	now      func() time.Time
	expenses []core.Transaction
	nextID   int64
}

func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{
		store:  store,
		now:    time.Now,
		nextID: 1,
	}
}

// Load reads the persisted collection. An absent key yields an empty
// collection; a blob that no longer parses is discarded with a warning
// rather than treated as fatal.
func (s *ExpenseService) Load(ctx context.Context) error {
	s.expenses = nil
	s.nextID = 1

	blob, ok, err := s.store.Get(ctx, storage.KeyExpenses)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	if !ok {
		return nil
	}

	var txs []core.Transaction
	if err := json.Unmarshal(blob, &txs); err != nil {
		slog.WarnContext(ctx, "Discarding malformed expenses blob",
			"error", err, "bytes", len(blob))
		return nil
	}

	s.expenses = txs
	for _, t := range txs {
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	return nil
}

// Add validates the draft, assigns the next ID, defaults a zero date to the
// current time and prepends the new transaction.
func (s *ExpenseService) Add(ctx context.Context, d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}

	date := d.Date
	if date.IsZero() {
		date = s.now()
	}

	tx := core.Transaction{
		ID:          s.nextID,
		Amount:      d.Amount,
		Description: d.Description,
		Category:    d.Category,
		Date:        date,
	}

	next := make([]core.Transaction, 0, len(s.expenses)+1)
	next = append(next, tx)
	next = append(next, s.expenses...)

	if err := s.persist(ctx, next); err != nil {
		return core.Transaction{}, err
	}
	s.expenses = next
	s.nextID++

	slog.InfoContext(ctx, "Expense recorded",
		"id", tx.ID,
		"description", tx.Description,
		"amount", tx.Amount.String(),
		"category", string(tx.Category))
	return tx, nil
}

// Delete removes the transaction with the given ID. Unknown IDs are a no-op,
// keeping deletion idempotent.
func (s *ExpenseService) Delete(ctx context.Context, id int64) error {
	idx := -1
	for i, t := range s.expenses {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := make([]core.Transaction, 0, len(s.expenses)-1)
	next = append(next, s.expenses[:idx]...)
	next = append(next, s.expenses[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.expenses = next

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// List returns a copy of the current collection. Order is storage order,
// newest first; presentation order comes from the query engine.
func (s *ExpenseService) List() []core.Transaction {
	return append([]core.Transaction(nil), s.expenses...)
}

func (s *ExpenseService) persist(ctx context.Context, txs []core.Transaction) error {
	if txs == nil {
		txs = []core.Transaction{}
	}
	blob, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encode expenses: %w", err)
	}
	if err := s.store.Set(ctx, storage.KeyExpenses, blob); err != nil {
		return fmt.Errorf("persist expenses: %w", err)
	}
	return nil
}
