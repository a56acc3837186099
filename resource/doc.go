// Package resource governs the scarce resources of a solver process:
// backing memory for bucket arrays, concurrent solver workers, and the rate
// at which new solve attempts may start.
//
//   - Memory: a weighted semaphore caps the bytes of bucket array storage held
//     by live workspaces. AcquireMemory blocks, TryAcquireMemory fails fast.
//   - Workers: a semaphore caps concurrently running solve attempts.
//   - Attempts: a token bucket limits how many attempts start per second.
//
// A nil *Controller is valid and imposes no limits.
package resource
