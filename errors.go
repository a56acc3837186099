package bucketsort

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bucketsort/bucketarray"
	"github.com/hupe1980/bucketsort/resource"
	"github.com/hupe1980/bucketsort/workspace"
)

var (
	// ErrCapacityExceeded is returned when an item could not be stored
	// because its bucket was full.
	ErrCapacityExceeded = errors.New("bucket capacity exceeded")
	// ErrNoWorkspace is returned when no backing memory could be obtained.
	ErrNoWorkspace = errors.New("no workspace available")
	// ErrSolveFailed is returned by callers when no layer produced a solution.
	ErrSolveFailed = errors.New("solve failed")
)

// ErrBucketFull reports the bucket that rejected an item.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrBucketFull struct {
	Bucket int
	cause  error
}

func (e *ErrBucketFull) Error() string {
	return fmt.Sprintf("bucket %d full", e.Bucket)
}

func (e *ErrBucketFull) Unwrap() []error { return []error{ErrCapacityExceeded, e.cause} }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var bfe *bucketarray.BucketFullError
	if errors.As(err, &bfe) {
		return &ErrBucketFull{Bucket: bfe.Bucket, cause: err}
	}

	if errors.Is(err, resource.ErrMemoryLimitExceeded) ||
		errors.Is(err, workspace.ErrPoolClosed) {
		return fmt.Errorf("%w: %w", ErrNoWorkspace, err)
	}

	return err
}
