package mem

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocSliceAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocSlice[uint32](size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))
		assert.True(t, IsAligned(buf), "uint32 slice of %d should be aligned to %d", size, CacheLineSize)
	}

	for _, size := range sizes {
		buf := AllocSlice[uint8](size)
		assert.Len(t, buf, size)
		assert.True(t, IsAligned(buf), "uint8 slice of %d should be aligned to %d", size, CacheLineSize)
	}
}

func TestAllocSliceZeroed(t *testing.T) {
	buf := AllocSlice[uint64](128)
	for i, v := range buf {
		assert.Zero(t, v, "slot %d", i)
	}
}

func TestAllocSliceOddElementSize(t *testing.T) {
	type triple struct{ a, b, c uint8 }
	buf := AllocSlice[triple](17)
	assert.Len(t, buf, 17)
	assert.Equal(t, 17, cap(buf))
}

func TestAllocSliceEmpty(t *testing.T) {
	assert.Nil(t, AllocSlice[uint16](0))
	assert.Nil(t, AllocSlice[uint16](-1))
	assert.False(t, IsAligned[uint16](nil))
}

func BenchmarkAllocSlice(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = AllocSlice[uint16](size)
			}
		})
	}
}
