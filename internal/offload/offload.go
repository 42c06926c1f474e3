// Package offload implements a helper for moving blocking calls off the
// caller's goroutine. A dispatched function runs on its own goroutine to
// completion, with the single result buffered for a later await.
package offload

import (
	"context"
	"fmt"
)

// Task is the single-use completion signal for a dispatched function. Its
// result is consumed through [Task.Await].
type Task[T any] struct {
	resultChan chan T
}

// Run dispatches the given function onto a new goroutine and returns a
// pointer to a [Task] resolving with its result. The function always runs to
// completion once dispatched; there is no cancellation of in-flight work. A
// panicking function crashes the program, as that is a programming error and
// not part of the recoverable error vocabulary.
//
// Each call spawns a fresh goroutine. This is acceptable for discrete,
// infrequent asset loads and must not be used on hot paths.
func Run[T any](taskedFunc func() T) *Task[T] {
	task := &Task[T]{
		resultChan: make(chan T, 1),
	}

	go func() {
		task.resultChan <- taskedFunc()
	}()

	return task
}

// Await suspends the caller until the dispatched function's result is
// available and returns it. An error is only returned in case of a
// mid-flight context cancellation; the dispatched function itself still runs
// to completion in that case, with its result discarded.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	select {
	case result := <-t.resultChan:
		return result, nil
	case <-ctx.Done():
		var zeroVal T

		return zeroVal, fmt.Errorf("(offload) %w", ctx.Err())
	}
}
