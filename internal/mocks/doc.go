// Package mocks provides shared test doubles for the store and service
// interfaces.
//
// Each mock exposes function fields that override individual methods. When a
// field is nil the mock falls back to a default: MockTaskStore keeps tasks in
// memory, MockTaskService returns its Task, Page and DefaultError fields.
//
//	taskStore := mocks.NewMockTaskStore()
//	taskStore.DeleteFn = func(ctx context.Context, id int64) error {
//	    return store.ErrTaskNotFound
//	}
package mocks
