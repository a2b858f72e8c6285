package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Without function overrides it behaves as an in-memory store that assigns
// increasing IDs and never reuses them.
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Task, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id int64) error
	ListFn    func(ctx context.Context, limit, offset int) ([]*domain.Task, error)
	CountFn   func(ctx context.Context) (int, error)
	RunInTxFn func(ctx context.Context, fn func(ctx context.Context, txStore store.TaskStore) error) error

	// Data for default implementation
	Tasks  map[int64]*domain.Task
	NextID int64

	// TxCalls counts RunInTx invocations.
	TxCalls int

	mu sync.Mutex
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
	}
}

var _ store.TaskStore = (*MockTaskStore)(nil)

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureInit()

	now := time.Now().UTC()
	task.ID = m.NextID
	task.CreatedAt = now
	task.UpdatedAt = now
	m.NextID++

	stored := *task
	m.Tasks[task.ID] = &stored
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task, ok := m.Tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	found := *task
	return &found, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	task.UpdatedAt = time.Now().UTC()
	stored := *task
	m.Tasks[task.ID] = &stored
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// List implements the TaskStore interface
func (m *MockTaskStore) List(ctx context.Context, limit, offset int) ([]*domain.Task, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, limit, offset)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]int64, 0, len(m.Tasks))
	for id := range m.Tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if offset < 0 {
		offset = 0
	}

	tasks := []*domain.Task{}
	for i := offset; i < len(ids) && len(tasks) < limit; i++ {
		task := *m.Tasks[ids[i]]
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

// Count implements the TaskStore interface
func (m *MockTaskStore) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Tasks), nil
}

// RunInTx implements the TaskStore interface by calling fn with the mock itself.
func (m *MockTaskStore) RunInTx(
	ctx context.Context,
	fn func(ctx context.Context, txStore store.TaskStore) error,
) error {
	m.mu.Lock()
	m.TxCalls++
	m.mu.Unlock()

	if m.RunInTxFn != nil {
		return m.RunInTxFn(ctx, fn)
	}
	return fn(ctx, m)
}

func (m *MockTaskStore) ensureInit() {
	if m.Tasks == nil {
		m.Tasks = make(map[int64]*domain.Task)
	}
	if m.NextID == 0 {
		m.NextID = 1
	}
}
