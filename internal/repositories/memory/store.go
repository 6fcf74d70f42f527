// Package memory provides the session-scoped in-memory store drivers.
// All repositories share one Store guarded by a single RWMutex, so a
// multi-entity mutation like posting a transfer happens in one critical
// section and is observed all-or-nothing.
package memory

import (
	"sync"

	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

// Store holds every in-memory collection. Slices keep insertion order;
// maps index by identifier for O(1) lookups.
type Store struct {
	mu sync.RWMutex

	accounts     []domain.Account
	accountIdx   map[string]int // code -> index into accounts
	transactions []domain.Transaction
	txnIdx       map[string]int // transactionID -> index into transactions
	transfers    []domain.InternalTransfer
	transferIdx  map[string]int
	invoices     []domain.Invoice
	invoiceIdx   map[string]int
	locations    []domain.Location
	locationIdx  map[string]int
	vehicles     []domain.Vehicle
	vehicleIdx   map[string]int
	users        []domain.User
	userIdx      map[string]int
	currencies   []domain.Currency
	currencyIdx  map[string]int
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		accountIdx:  make(map[string]int),
		txnIdx:      make(map[string]int),
		transferIdx: make(map[string]int),
		invoiceIdx:  make(map[string]int),
		locationIdx: make(map[string]int),
		vehicleIdx:  make(map[string]int),
		userIdx:     make(map[string]int),
		currencyIdx: make(map[string]int),
	}
}

// NewRepositoryProvider wires every repository facade over one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  &accountRepository{store: store},
		CurrencyRepo: &currencyRepository{store: store},
		LedgerRepo:   &ledgerRepository{store: store},
		TransferRepo: &transferRepository{store: store},
		InvoiceRepo:  &invoiceRepository{store: store},
		LocationRepo: &locationRepository{store: store},
		VehicleRepo:  &vehicleRepository{store: store},
		UserRepo:     &userRepository{store: store},
	}
}

// IsEmpty reports whether the store holds no data yet; used by seeding.
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts) == 0 && len(s.transactions) == 0 &&
		len(s.locations) == 0 && len(s.users) == 0
}

// paginate applies limit/offset to a copied slice. limit 0 means all;
// a negative offset is treated as 0.
func paginate[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
