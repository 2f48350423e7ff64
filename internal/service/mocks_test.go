package service

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/taskhive/task-api/internal/domain"
	"github.com/taskhive/task-api/internal/store"
)

// fakeTaskStore is an in-memory store.TaskStore that counts calls so tests
// can observe which operations touched the store.
type fakeTaskStore struct {
	mu    sync.Mutex
	tasks []*domain.Task // insertion order

	createCalls int
	getCalls    int
	listCalls   int
	updateCalls int
	deleteCalls int

	createErr error
	listErr   error
}

var _ store.TaskStore = (*fakeTaskStore)(nil)

func (f *fakeTaskStore) Create(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	copied := *task
	f.tasks = append(f.tasks, &copied)
	return nil
}

func (f *fakeTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	for _, t := range f.tasks {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

func (f *fakeTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}

	// Newest first; reversing insertion order before the stable sort keeps
	// created_at ties in last-inserted-first order, matching the store query.
	result := make([]*domain.Task, 0, len(f.tasks))
	for i := len(f.tasks) - 1; i >= 0; i-- {
		copied := *f.tasks[i]
		result = append(result, &copied)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (f *fakeTaskStore) Update(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	for i, t := range f.tasks {
		if t.ID == task.ID {
			copied := *task
			copied.CreatedAt = t.CreatedAt
			f.tasks[i] = &copied
			return nil
		}
	}
	return store.ErrTaskNotFound
}

func (f *fakeTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrTaskNotFound
}

// fakeListingCache is an in-memory store.ListingCache with injectable
// failures and call counters.
type fakeListingCache struct {
	mu      sync.Mutex
	payload []byte
	cached  bool

	getCalls        int
	setCalls        int
	invalidateCalls int

	getErr        error
	setErr        error
	invalidateErr error
}

var _ store.ListingCache = (*fakeListingCache)(nil)

func (f *fakeListingCache) Get(ctx context.Context) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	if !f.cached {
		return nil, false, nil
	}
	return f.payload, true, nil
}

func (f *fakeListingCache) Set(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.payload = payload
	f.cached = true
	return nil
}

func (f *fakeListingCache) Invalidate(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidateCalls++
	if f.invalidateErr != nil {
		return f.invalidateErr
	}
	f.payload = nil
	f.cached = false
	return nil
}
