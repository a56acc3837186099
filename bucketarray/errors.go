package bucketarray

import (
	"errors"
	"fmt"
)

// ErrBucketFull is returned by Insert when the target bucket has no free slot.
var ErrBucketFull = errors.New("bucket full")

// BucketFullError reports the bucket that rejected an insert.
type BucketFullError struct {
	Bucket int
}

func (e *BucketFullError) Error() string {
	return fmt.Sprintf("bucket %d: %v", e.Bucket, ErrBucketFull)
}

func (e *BucketFullError) Unwrap() error { return ErrBucketFull }

// InternalError is the panic value for contract violations. It signals a
// programming or configuration defect, never a data condition.
type InternalError struct {
	Op  string
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("bucketarray: internal error in %s: %s", e.Op, e.Msg)
}

// fault aborts the current operation with an *InternalError.
func fault(op, format string, args ...any) {
	panic(&InternalError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
