// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Bucket array backing memory is allocated as one contiguous slice whose first
// element starts on a cache line boundary, so bucket rows scanned by the
// solver do not straddle lines shared with unrelated data.
package mem
