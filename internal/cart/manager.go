package cart

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/afkcodes/storefront/internal/domain"
)

// saveTimeout bounds each background persistence write. Writes are
// fire-and-forget, so a hung store must not leak goroutines forever.
const saveTimeout = 5 * time.Second

// Manager owns the authoritative in-memory cart state. It restores a
// previously saved cart once at startup, applies mutations in call order,
// and writes a full snapshot back to the store after every mutation.
//
// Mutations never fail from the caller's perspective: persistence is
// asynchronous and storage errors are logged and swallowed. The in-memory
// state is the source of truth for all reads; a lost write only risks
// dropping the most recent edits if the process dies before it lands.
//
// Callers never see the live line slice, only copies, so the ordered
// collection cannot be mutated out-of-band.
type Manager struct {
	store  Store
	logger *slog.Logger

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewManager creates a cart manager starting from an empty cart.
// Call Load once before serving traffic to restore saved state.
func NewManager(store Store, logger *slog.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// Load restores the saved cart, replacing the in-memory state wholesale.
// A missing, unreadable, or unparseable blob leaves the cart empty; those
// failures are logged and never surfaced. Load does not write back: the
// store already holds exactly what was just read.
func (m *Manager) Load(ctx context.Context) {
	blob, err := m.store.Load(ctx)
	if err != nil {
		if err != ErrNoSavedCart {
			m.logger.Error("failed to load saved cart, starting empty", "error", err)
		}
		return
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(blob, &lines); err != nil {
		m.logger.Error("failed to parse saved cart, starting empty", "error", err)
		return
	}

	m.mu.Lock()
	m.lines = lines
	m.mu.Unlock()

	m.logger.Info("cart restored", "lines", len(lines))
}

// Items returns a snapshot of the cart lines in insertion order.
func (m *Manager) Items() []domain.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]domain.CartLine, len(m.lines))
	copy(items, m.lines)
	return items
}

// Summary derives the pricing summary from the current lines.
// It is pure and never fails.
func (m *Manager) Summary() domain.CartSummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.Summarize(m.lines)
}

// AddItem puts one unit of the product into the cart. If a line for the
// product already exists its quantity grows by exactly 1 and its position is
// preserved; otherwise a new line with quantity 1 is appended. The product's
// stock ceiling is not enforced here; the client disables the control instead.
func (m *Manager) AddItem(product domain.Product) {
	m.mu.Lock()
	found := false
	for i := range m.lines {
		if m.lines[i].ID == product.ID {
			m.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		m.lines = append(m.lines, domain.CartLine{Product: product, Quantity: 1})
	}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.persist(snapshot)
}

// RemoveItem deletes the line for the given product ID.
// Removing an absent ID is a no-op, not an error.
func (m *Manager) RemoveItem(productID int) {
	m.mu.Lock()
	for i := range m.lines {
		if m.lines[i].ID == productID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			break
		}
	}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.persist(snapshot)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero
// or less removes the line entirely; an absent ID is a no-op either way.
func (m *Manager) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		m.RemoveItem(productID)
		return
	}

	m.mu.Lock()
	for i := range m.lines {
		if m.lines[i].ID == productID {
			m.lines[i].Quantity = quantity
			break
		}
	}
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.persist(snapshot)
}

// Clear empties the cart.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.lines = nil
	snapshot := m.snapshotLocked()
	m.mu.Unlock()

	m.persist(snapshot)
}

// snapshotLocked serializes the current lines. Caller must hold mu.
// An empty cart serializes as an empty array so a restored cart and a
// never-saved cart look the same on load.
func (m *Manager) snapshotLocked() []byte {
	lines := m.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}

	blob, err := json.Marshal(lines)
	if err != nil {
		// Cart lines are plain data; marshaling cannot realistically fail.
		m.logger.Error("failed to serialize cart", "error", err)
		return nil
	}
	return blob
}

// persist writes the snapshot in the background. Writes are not queued or
// coalesced: each one carries a full snapshot, so whichever lands last wins
// and the store converges to the latest state.
func (m *Manager) persist(snapshot []byte) {
	if snapshot == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := m.store.Save(ctx, snapshot); err != nil {
			m.logger.Error("failed to save cart", "error", err)
		}
	}()
}
