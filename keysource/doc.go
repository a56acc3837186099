// Package keysource derives layer-0 (key, value) items for the bucket sort.
//
// The solver's real hash function lives outside this module. The sources here
// are deterministic stand-ins with the same shape: item i of a seeded source
// always yields the same 64-bit key, and the value is the item index, so a
// solution can be traced back to its inputs.
//
//	src := keysource.NewXXHash([]byte("challenge"))
//	for key, index := range src.Items(0, 1<<16) { ... }
package keysource
