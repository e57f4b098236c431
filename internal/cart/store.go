package cart

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/parentsfood/shopkit/internal/domain"
	"github.com/parentsfood/shopkit/internal/storage"
	"github.com/parentsfood/shopkit/internal/telemetry"
)

// StorageKey is the fixed durable-storage key the cart persists under.
const StorageKey = "shopping-cart"

// Store owns the authoritative shopping-cart line list for the session.
// It is constructed once at application start and shared by reference;
// mutations are serialized internally and persisted to durable storage
// before the mutator returns.
type Store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	subs    []func([]domain.CartLine)
	storage storage.Storage
	logger  zerolog.Logger
	metrics *telemetry.Metrics
}

// NewStore creates the cart store and rehydrates it from durable storage.
// A missing or unreadable stored cart yields an empty cart, never an error.
func NewStore(st storage.Storage, logger zerolog.Logger, metrics *telemetry.Metrics) *Store {
	s := &Store{
		storage: st,
		logger:  logger,
		metrics: metrics,
	}

	data, err := st.Get(StorageKey)
	if err != nil {
		if !storage.IsNotFound(err) {
			logger.Warn().Err(err).Msg("could not read stored cart, starting empty")
		}
		return s
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.Warn().Err(err).Msg("stored cart is corrupt, starting empty")
		return s
	}

	s.lines = lines
	return s
}

// Add merges a product into the cart. If a line for the product already
// exists, only its quantity changes by delta; the price/name/image snapshot
// taken at first add is left untouched. Otherwise a new line is appended
// with quantity delta. Negative deltas are the quantity-decrement path; the
// store does not clamp, that is the caller's contract.
func (s *Store) Add(p domain.Product, delta int) {
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += delta
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, domain.NewCartLine(p, delta))
	}
	s.persistLocked()
	total := totalOf(s.lines)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.RecordCartAdd(p.ID, total)
	s.notify(snapshot)
}

// Remove deletes the line with the given product id. Removing an absent id
// is a no-op, not an error.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	s.persistLocked()
	total := totalOf(s.lines)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.RecordCartRemove(total)
	s.notify(snapshot)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.persistLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.metrics.RecordCartClear()
	s.notify(snapshot)
}

// Lines returns a copy of the current line list.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Total recomputes the cart's monetary total from the current lines on
// every call; it is never cached.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalOf(s.lines)
}

// Subscribe registers fn to be called with a snapshot of the line list
// after every mutation. Intended for presentation code; fn must not block.
func (s *Store) Subscribe(fn func([]domain.CartLine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func totalOf(lines []domain.CartLine) float64 {
	var total float64
	for _, line := range lines {
		total += line.LineTotal()
	}
	return total
}

// persistLocked writes the whole line list to durable storage. Persistence
// is best-effort: a write failure is logged and the in-memory cart stays
// authoritative for the rest of the session.
func (s *Store) persistLocked() {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{} // persist an empty list, not null
	}
	data, err := json.Marshal(lines)
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not serialize cart")
		return
	}
	if err := s.storage.Put(StorageKey, data); err != nil {
		s.logger.Warn().Err(err).Msg("could not persist cart")
	}
}

func (s *Store) snapshotLocked() []domain.CartLine {
	snapshot := make([]domain.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

func (s *Store) notify(snapshot []domain.CartLine) {
	s.mu.Lock()
	subs := make([]func([]domain.CartLine), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
