package testdoubles

import (
	"context"
	"sync"
)

// Operation names accepted by WithError.
const (
	OperationGetByID = "GetByID"
	OperationGetAll  = "GetAll"
	OperationAdd     = "Add"
	OperationUpdate  = "Update"
	OperationDelete  = "Delete"
)

// callRecorder keeps the programmed errors and the per-operation call counts shared by all repository spies.
type callRecorder struct {
	mu        sync.Mutex
	errors    map[string]error
	callCount map[string]int
	onGetByID func(ctx context.Context)
}

func newCallRecorder() callRecorder {
	return callRecorder{
		errors:    make(map[string]error),
		callCount: make(map[string]int),
	}
}

// record counts the call and returns the programmed error of the operation, must be called with mu held.
func (r *callRecorder) record(operation string) error {
	r.callCount[operation]++

	return r.errors[operation]
}

// CallCount returns how often the given operation was called.
func (r *callRecorder) CallCount(operation string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.callCount[operation]
}

// WriteCount returns the number of Add, Update, and Delete calls.
func (r *callRecorder) WriteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.callCount[OperationAdd] + r.callCount[OperationUpdate] + r.callCount[OperationDelete]
}

func (r *callRecorder) runOnGetByID(ctx context.Context) {
	r.mu.Lock()
	hook := r.onGetByID
	r.mu.Unlock()

	if hook != nil {
		hook(ctx)
	}
}
