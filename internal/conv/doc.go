// Package conv provides checked integer conversions between platform ints and
// the fixed-width unsigned types used for bucket counters and keys.
//
// Narrowing that is allowed to lose bits (key storage masking) lives in
// package bucketarray and never goes through here. Every function in this
// package either converts exactly or reports an error.
package conv
