package keysource

import (
	"encoding/binary"
	"iter"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
)

// Source maps an item index to a wide key.
type Source interface {
	Key(index uint32) uint64
}

// Items yields (key, index) for indices [start, start+n), ready to be
// inserted into a layer-0 bucket array.
func Items(src Source, start uint32, n int) iter.Seq2[uint64, uint32] {
	return func(yield func(uint64, uint32) bool) {
		for i := range n {
			idx := start + uint32(i) //nolint:gosec // callers bound n to the index space
			if !yield(src.Key(idx), idx) {
				return
			}
		}
	}
}

// XXHash keys items with xxhash64 over seed || index.
type XXHash struct {
	seed []byte
}

// NewXXHash returns an xxhash backed source.
func NewXXHash(seed []byte) *XXHash {
	return &XXHash{seed: append([]byte(nil), seed...)}
}

// Key implements Source.
func (x *XXHash) Key(index uint32) uint64 {
	d := xxhash.New()
	_, _ = d.Write(x.seed)

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], index)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

// Items yields (key, index) for indices [start, start+n).
func (x *XXHash) Items(start uint32, n int) iter.Seq2[uint64, uint32] {
	return Items(x, start, n)
}

// Blake2b keys items with the first 8 bytes of a keyed blake2b-256 digest of
// the index. It is slower than XXHash but cryptographically strong.
type Blake2b struct {
	key []byte
}

// NewBlake2b returns a blake2b backed source. Keys longer than 64 bytes are
// hashed down first.
func NewBlake2b(seed []byte) *Blake2b {
	key := append([]byte(nil), seed...)
	if len(key) > blake2b.Size {
		sum := blake2b.Sum512(key)
		key = sum[:]
	}
	return &Blake2b{key: key}
}

// Key implements Source.
func (b *Blake2b) Key(index uint32) uint64 {
	h, err := blake2b.New256(b.key)
	if err != nil {
		// Only reachable with an oversized key, which NewBlake2b prevents.
		panic(err)
	}

	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], index)
	_, _ = h.Write(buf[:])

	var sum [blake2b.Size256]byte
	return binary.LittleEndian.Uint64(h.Sum(sum[:0]))
}

// Items yields (key, index) for indices [start, start+n).
func (b *Blake2b) Items(start uint32, n int) iter.Seq2[uint64, uint32] {
	return Items(b, start, n)
}
