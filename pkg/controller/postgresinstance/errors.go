package postgresinstance

import (
	"fmt"
	"time"
)

// TransientError marks a failure that is expected to resolve without a spec
// change, such as a referenced password Secret that has not been created yet.
// The reconciler translates it into a delayed requeue instead of surfacing an
// error to the controller framework.
type TransientError struct {
	// Delay is the requeue delay to apply before the next attempt.
	Delay time.Duration
	Err   error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%v (retry in %s)", e.Err, e.Delay)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}
