// Package inventory holds the authoritative available/total counters for
// every resource and provides the all-or-nothing reservation primitives.
// All mutation goes through TryReserve/Release; no caller may read a
// counter and write it back directly.
package inventory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"netgrid/internal/shared/errors"
	"netgrid/internal/shared/logger"
)

// DefaultLockWait bounds how long a reservation waits for a contended
// resource lock before failing with a retryable lock timeout.
const DefaultLockWait = 500 * time.Millisecond

// ResourceCount is a point-in-time counter pair for one resource.
type ResourceCount struct {
	ResourceID uint
	Total      int
	Available  int
}

// entry guards one resource's counters. The 1-buffered channel acts as a
// mutex that supports bounded and context-aware acquisition.
type entry struct {
	lock      chan struct{}
	total     int
	available int
}

func newEntry(total, available int) *entry {
	return &entry{
		lock:      make(chan struct{}, 1),
		total:     total,
		available: available,
	}
}

// Inventory is the reservation engine. The registry mutex only guards the
// id->entry map; counter access goes through the per-resource locks,
// always acquired in ascending resource-id order to prevent deadlock
// between overlapping reservations.
type Inventory struct {
	mu       sync.RWMutex
	entries  map[uint]*entry
	lockWait time.Duration
	logger   logger.Interface
}

func New(lockWait time.Duration, log logger.Interface) *Inventory {
	if lockWait <= 0 {
		lockWait = DefaultLockWait
	}
	return &Inventory{
		entries:  make(map[uint]*entry),
		lockWait: lockWait,
		logger:   log.Named("inventory"),
	}
}

// Load replaces the registry with the given counters. Called once at
// startup from persisted resource rows, before the engine serves traffic.
func (inv *Inventory) Load(counts []ResourceCount) error {
	entries := make(map[uint]*entry, len(counts))
	for _, c := range counts {
		if c.Available < 0 || c.Available > c.Total {
			return errors.NewConsistencyError(
				"persisted availability violates inventory invariant",
				fmt.Sprintf("resource %d: available %d, total %d", c.ResourceID, c.Available, c.Total),
			)
		}
		entries[c.ResourceID] = newEntry(c.Total, c.Available)
	}

	inv.mu.Lock()
	inv.entries = entries
	inv.mu.Unlock()

	inv.logger.Infow("inventory loaded", "resources", len(counts))
	return nil
}

// AddResource registers a new resource with the given counters.
func (inv *Inventory) AddResource(resourceID uint, total, available int) error {
	if available < 0 || available > total {
		return errors.NewConsistencyError(
			"availability violates inventory invariant",
			fmt.Sprintf("resource %d: available %d, total %d", resourceID, available, total),
		)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.entries[resourceID]; exists {
		return errors.NewConflictError(fmt.Sprintf("resource %d already registered", resourceID))
	}
	inv.entries[resourceID] = newEntry(total, available)
	return nil
}

// RemoveResource drops a resource from the registry. The caller ensures
// no non-terminal request still references it.
func (inv *Inventory) RemoveResource(resourceID uint) {
	inv.mu.Lock()
	delete(inv.entries, resourceID)
	inv.mu.Unlock()
}

// SetCapacity changes a resource's total, moving available by the same
// delta so the reserved amount stays fixed. Totals below the reserved
// amount are rejected.
func (inv *Inventory) SetCapacity(resourceID uint, total int) error {
	e, err := inv.entry(resourceID)
	if err != nil {
		return err
	}

	if !inv.acquire(context.Background(), e) {
		return errors.NewLockTimeoutError("timed out waiting for resource lock",
			fmt.Sprintf("resource %d", resourceID))
	}
	defer inv.release(e)

	reserved := e.total - e.available
	if total < reserved {
		return errors.NewConflictError(
			"total quantity is below the reserved amount",
			fmt.Sprintf("resource %d: total %d, reserved %d", resourceID, total, reserved),
		)
	}

	e.total = total
	e.available = total - reserved
	return nil
}

// TryReserve atomically decrements availability for every line, or leaves
// every counter untouched. Locks are taken in ascending resource-id order
// with a bounded wait; contention surfaces as a retryable lock timeout,
// never as an indefinite block.
func (inv *Inventory) TryReserve(ctx context.Context, lines map[uint]int) error {
	if len(lines) == 0 {
		return errors.NewValidationError("at least one resource line is required")
	}
	for resourceID, quantity := range lines {
		if quantity <= 0 {
			return errors.NewValidationError("quantity must be positive",
				fmt.Sprintf("resource %d", resourceID))
		}
	}

	ids, entries, err := inv.entriesFor(lines)
	if err != nil {
		return err
	}

	locked, err := inv.acquireAll(ctx, ids, entries)
	if err != nil {
		return err
	}
	defer inv.releaseAll(locked)

	// Check every line before touching any counter: other callers only
	// ever observe the fully-applied state.
	for _, id := range ids {
		if entries[id].available < lines[id] {
			return errors.NewInsufficientResourceError(
				"insufficient resource quantity available",
				fmt.Sprintf("resource %d: requested %d, available %d", id, lines[id], entries[id].available),
			)
		}
	}

	for _, id := range ids {
		entries[id].available -= lines[id]
	}

	return nil
}

// Release atomically increments availability for every line. An increment
// that would push available past total indicates a double release; the
// counter is pinned at total and a consistency error is surfaced rather
// than silently corrected.
func (inv *Inventory) Release(lines map[uint]int) error {
	if len(lines) == 0 {
		return nil
	}
	for resourceID, quantity := range lines {
		if quantity <= 0 {
			return errors.NewValidationError("quantity must be positive",
				fmt.Sprintf("resource %d", resourceID))
		}
	}

	ids, entries, err := inv.entriesFor(lines)
	if err != nil {
		return err
	}

	locked, err := inv.acquireAll(context.Background(), ids, entries)
	if err != nil {
		return err
	}
	defer inv.releaseAll(locked)

	var clampErr error
	for _, id := range ids {
		e := entries[id]
		prev := e.available
		next := prev + lines[id]
		if next > e.total {
			inv.logger.Errorw("release exceeds total quantity, counter pinned at total",
				"resource_id", id,
				"available", prev,
				"release", lines[id],
				"total", e.total)
			e.available = e.total
			clampErr = errors.NewConsistencyError(
				"release exceeds total quantity",
				fmt.Sprintf("resource %d: available %d + release %d > total %d", id, prev, lines[id], e.total),
			)
			continue
		}
		e.available = next
	}

	return clampErr
}

// Snapshot returns a point-in-time copy of all counters. Each entry lock
// is held only for the copy of its two integers, so reservations are
// never blocked for longer than that.
func (inv *Inventory) Snapshot() []ResourceCount {
	inv.mu.RLock()
	ids := make([]uint, 0, len(inv.entries))
	for id := range inv.entries {
		ids = append(ids, id)
	}
	inv.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	counts := make([]ResourceCount, 0, len(ids))
	for _, id := range ids {
		e, err := inv.entry(id)
		if err != nil {
			// Removed between the id scan and now; skip.
			continue
		}
		if !inv.acquire(context.Background(), e) {
			inv.logger.Warnw("resource lock contended during snapshot, counters omitted",
				"resource_id", id)
			continue
		}
		counts = append(counts, ResourceCount{
			ResourceID: id,
			Total:      e.total,
			Available:  e.available,
		})
		inv.release(e)
	}

	return counts
}

// Available returns the current availability for one resource.
func (inv *Inventory) Available(resourceID uint) (int, error) {
	e, err := inv.entry(resourceID)
	if err != nil {
		return 0, err
	}

	if !inv.acquire(context.Background(), e) {
		return 0, errors.NewLockTimeoutError("timed out waiting for resource lock",
			fmt.Sprintf("resource %d", resourceID))
	}
	defer inv.release(e)

	return e.available, nil
}

func (inv *Inventory) entry(resourceID uint) (*entry, error) {
	inv.mu.RLock()
	e, ok := inv.entries[resourceID]
	inv.mu.RUnlock()

	if !ok {
		return nil, errors.NewNotFoundError(fmt.Sprintf("resource %d not found", resourceID))
	}
	return e, nil
}

// entriesFor resolves all lines to entries and returns the resource ids
// in ascending order, the lock acquisition order.
func (inv *Inventory) entriesFor(lines map[uint]int) ([]uint, map[uint]*entry, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	ids := make([]uint, 0, len(lines))
	entries := make(map[uint]*entry, len(lines))
	for resourceID := range lines {
		e, ok := inv.entries[resourceID]
		if !ok {
			return nil, nil, errors.NewNotFoundError(fmt.Sprintf("resource %d not found", resourceID))
		}
		ids = append(ids, resourceID)
		entries[resourceID] = e
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, entries, nil
}

// acquireAll takes every entry lock in ascending id order. On timeout it
// releases everything acquired so far and reports a retryable error.
func (inv *Inventory) acquireAll(ctx context.Context, ids []uint, entries map[uint]*entry) ([]*entry, error) {
	locked := make([]*entry, 0, len(ids))
	for _, id := range ids {
		e := entries[id]
		if !inv.acquire(ctx, e) {
			inv.releaseAll(locked)
			// A cancelled caller gets its own cancellation back, not a
			// reservation error.
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return nil, errors.NewLockTimeoutError(
				"timed out waiting for resource lock",
				fmt.Sprintf("resource %d", id),
			)
		}
		locked = append(locked, e)
	}
	return locked, nil
}

func (inv *Inventory) acquire(ctx context.Context, e *entry) bool {
	timer := time.NewTimer(inv.lockWait)
	defer timer.Stop()

	select {
	case e.lock <- struct{}{}:
		return true
	case <-ctx.Done():
		return false
	case <-timer.C:
		return false
	}
}

func (inv *Inventory) release(e *entry) {
	<-e.lock
}

func (inv *Inventory) releaseAll(locked []*entry) {
	for i := len(locked) - 1; i >= 0; i-- {
		inv.release(locked[i])
	}
}
