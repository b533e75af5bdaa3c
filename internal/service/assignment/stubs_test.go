package assignment_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"truck-dispatch/internal/domain"
	"truck-dispatch/internal/ports/assignmenttx"
)

// memStore is an in-memory assignmenttx store. WithTx holds a global lock,
// so transactions are fully serialized and rolled back on error.
type memStore struct {
	mu          sync.Mutex
	drivers     map[uuid.UUID]domain.Driver
	loads       map[uuid.UUID]domain.Load
	assignments map[uuid.UUID]domain.Assignment
}

func newMemStore() *memStore {
	return &memStore{
		drivers:     map[uuid.UUID]domain.Driver{},
		loads:       map[uuid.UUID]domain.Load{},
		assignments: map[uuid.UUID]domain.Assignment{},
	}
}

func (m *memStore) addDriver(status domain.DriverStatus) uuid.UUID {
	id := uuid.New()
	m.drivers[id] = domain.Driver{ID: id, Name: "J. Doe", LicenseNumber: "CDL1-" + id.String()[:4], Status: status}
	return id
}

func (m *memStore) addLoad(status domain.LoadStatus) uuid.UUID {
	id := uuid.New()
	m.loads[id] = domain.Load{ID: id, Origin: "NYC", Destination: "LAX", CargoType: "Grain", Status: status}
	return id
}

func (m *memStore) WithTx(_ context.Context, fn func(tx assignmenttx.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{
		drivers:     cloneMap(m.drivers),
		loads:       cloneMap(m.loads),
		assignments: cloneMap(m.assignments),
	}
	if err := fn(tx); err != nil {
		return err
	}
	m.drivers, m.loads, m.assignments = tx.drivers, tx.loads, tx.assignments
	return nil
}

func (m *memStore) GetWithRelations(_ context.Context, id uuid.UUID) (*domain.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &memTx{drivers: m.drivers, loads: m.loads, assignments: m.assignments}
	return tx.GetAssignment(context.Background(), id)
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

type memTx struct {
	drivers     map[uuid.UUID]domain.Driver
	loads       map[uuid.UUID]domain.Load
	assignments map[uuid.UUID]domain.Assignment
}

func (t *memTx) GetDriver(_ context.Context, id uuid.UUID) (*domain.Driver, error) {
	d, ok := t.drivers[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (t *memTx) GetLoad(_ context.Context, id uuid.UUID) (*domain.Load, error) {
	l, ok := t.loads[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (t *memTx) HasActiveAssignment(_ context.Context, driverID uuid.UUID) (bool, error) {
	for _, a := range t.assignments {
		if a.DriverID == driverID && a.Status == domain.AssignmentAssigned {
			return true, nil
		}
	}
	return false, nil
}

func (t *memTx) InsertAssignment(ctx context.Context, a *domain.Assignment) error {
	for _, e := range t.assignments {
		if e.DriverID == a.DriverID && e.LoadID == a.LoadID {
			return assignmenttx.ErrAssignmentPairExists
		}
	}
	if active, _ := t.HasActiveAssignment(ctx, a.DriverID); active {
		return assignmenttx.ErrActiveAssignmentExists
	}
	t.assignments[a.ID] = *a
	return nil
}

func (t *memTx) GetAssignment(_ context.Context, id uuid.UUID) (*domain.Assignment, error) {
	a, ok := t.assignments[id]
	if !ok {
		return nil, nil
	}
	d, l := t.drivers[a.DriverID], t.loads[a.LoadID]
	a.Driver, a.Load = &d, &l
	return &a, nil
}

func (t *memTx) GetAssignmentForUpdate(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	return t.GetAssignment(ctx, id)
}

func (t *memTx) UpdateAssignmentStatus(
	ctx context.Context,
	id uuid.UUID,
	status domain.AssignmentStatus,
	completedAt *time.Time,
) error {
	a := t.assignments[id]
	if status == domain.AssignmentAssigned && a.Status != domain.AssignmentAssigned {
		if active, _ := t.HasActiveAssignment(ctx, a.DriverID); active {
			return assignmenttx.ErrActiveAssignmentExists
		}
	}
	a.Status, a.CompletedAt = status, completedAt
	t.assignments[id] = a
	return nil
}

func (t *memTx) SetDriverStatus(
	_ context.Context,
	id uuid.UUID,
	to domain.DriverStatus,
	from ...domain.DriverStatus,
) (bool, error) {
	d, ok := t.drivers[id]
	if !ok || !matches(d.Status, from) {
		return false, nil
	}
	d.Status = to
	t.drivers[id] = d
	return true, nil
}

func (t *memTx) SetLoadStatus(
	_ context.Context,
	id uuid.UUID,
	to domain.LoadStatus,
	from ...domain.LoadStatus,
) (bool, error) {
	l, ok := t.loads[id]
	if !ok || !matches(l.Status, from) {
		return false, nil
	}
	l.Status = to
	t.loads[id] = l
	return true, nil
}

func matches[S comparable](cur S, from []S) bool {
	if len(from) == 0 {
		return true
	}
	for _, f := range from {
		if f == cur {
			return true
		}
	}
	return false
}

// rcStore runs transactions concurrently over committed snapshots, like READ
// COMMITTED. The partial unique index on active assignments is the only
// cross-transaction check. Every transaction waits at its load read until all
// expected transactions have passed their precondition reads.
type rcStore struct {
	*memStore
	reads  sync.WaitGroup
	active map[uuid.UUID]uuid.UUID
}

func newRCStore(m *memStore, txs int) *rcStore {
	s := &rcStore{memStore: m, active: map[uuid.UUID]uuid.UUID{}}
	for id, a := range m.assignments {
		if a.Status == domain.AssignmentAssigned {
			s.active[a.DriverID] = id
		}
	}
	s.reads.Add(txs)
	return s
}

func (s *rcStore) WithTx(_ context.Context, fn func(tx assignmenttx.Repository) error) error {
	s.mu.Lock()
	tx := &rcTx{
		memTx: &memTx{
			drivers:     cloneMap(s.drivers),
			loads:       cloneMap(s.loads),
			assignments: cloneMap(s.assignments),
		},
		store:        s,
		dirtyDrivers: map[uuid.UUID]struct{}{},
		dirtyLoads:   map[uuid.UUID]struct{}{},
	}
	s.mu.Unlock()

	if err := fn(tx); err != nil {
		s.mu.Lock()
		if tx.reserved != uuid.Nil {
			delete(s.active, tx.reserved)
		}
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range tx.dirtyDrivers {
		s.drivers[id] = tx.drivers[id]
	}
	for id := range tx.dirtyLoads {
		s.loads[id] = tx.loads[id]
	}
	for id, a := range tx.assignments {
		s.assignments[id] = a
	}
	return nil
}

type rcTx struct {
	*memTx
	store        *rcStore
	arrived      bool
	reserved     uuid.UUID
	dirtyDrivers map[uuid.UUID]struct{}
	dirtyLoads   map[uuid.UUID]struct{}
}

func (t *rcTx) GetLoad(ctx context.Context, id uuid.UUID) (*domain.Load, error) {
	l, err := t.memTx.GetLoad(ctx, id)
	if !t.arrived {
		t.arrived = true
		t.store.reads.Done()
		t.store.reads.Wait()
	}
	return l, err
}

func (t *rcTx) InsertAssignment(ctx context.Context, a *domain.Assignment) error {
	t.store.mu.Lock()
	if _, held := t.store.active[a.DriverID]; held {
		t.store.mu.Unlock()
		return assignmenttx.ErrActiveAssignmentExists
	}
	t.store.active[a.DriverID] = a.ID
	t.store.mu.Unlock()
	t.reserved = a.DriverID
	return t.memTx.InsertAssignment(ctx, a)
}

func (t *rcTx) SetDriverStatus(
	ctx context.Context,
	id uuid.UUID,
	to domain.DriverStatus,
	from ...domain.DriverStatus,
) (bool, error) {
	t.dirtyDrivers[id] = struct{}{}
	return t.memTx.SetDriverStatus(ctx, id, to, from...)
}

func (t *rcTx) SetLoadStatus(
	ctx context.Context,
	id uuid.UUID,
	to domain.LoadStatus,
	from ...domain.LoadStatus,
) (bool, error) {
	t.dirtyLoads[id] = struct{}{}
	return t.memTx.SetLoadStatus(ctx, id, to, from...)
}
