// Package workers runs the console's periodic background jobs: the status
// long-poll of the polling event source and the chat list / conversation
// refreshers of the chat views.
package workers

import "context"

// Worker is a restartable background job. Start replaces a running instance;
// Stop blocks until the job goroutine has exited and is safe to call on an
// idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
