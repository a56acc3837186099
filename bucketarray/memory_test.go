package bucketarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/bucketsort/bucketarray"
	"github.com/hupe1980/bucketsort/testutil"
)

func TestNewMemory(t *testing.T) {
	m := bucketarray.NewMemory[uint16](64, 12)

	assert.Equal(t, 64, m.Buckets())
	assert.Equal(t, 12, m.Capacity())
	assert.Equal(t, 64*12, m.Len())
	assert.Equal(t, int64(64*12*2), m.SizeBytes())
	assert.False(t, m.Claimed())
}

func TestNewMemoryInvalidShape(t *testing.T) {
	testutil.AssertInternalFault(t, func() { bucketarray.NewMemory[uint8](0, 1) })
	testutil.AssertInternalFault(t, func() { bucketarray.NewMemory[uint8](1, 0) })
	testutil.AssertInternalFault(t, func() { bucketarray.NewMemory[uint8](-4, 2) })
}

func TestMemoryExclusiveClaim(t *testing.T) {
	values := bucketarray.NewMemory[uint16](4, 2)

	arr := bucketarray.NewValue[uint8, uint32](values)
	assert.True(t, values.Claimed())

	testutil.AssertInternalFault(t, func() { bucketarray.NewValue[uint8, uint32](values) })

	arr.Release()
	assert.False(t, values.Claimed())

	again := bucketarray.NewValue[uint8, uint32](values)
	assert.Equal(t, 0, again.Total())
}

func TestMemoryReuseStartsEmpty(t *testing.T) {
	keys := bucketarray.NewMemory[uint8](4, 2)
	values := bucketarray.NewMemory[uint16](4, 2)

	first := bucketarray.NewKeyValue[uint8, uint32](keys, values)
	for k := range uint32(8) {
		assert.NoError(t, first.Insert(k, uint16(k)))
	}
	first.Release()

	second := bucketarray.NewKeyValue[uint8, uint32](keys, values)
	for b := range 4 {
		lo, hi := second.ItemRange(b)
		assert.Equal(t, 0, lo)
		assert.Equal(t, 0, hi)
		testutil.AssertInternalFault(t, func() { second.ItemValue(b, 0) })
	}
}
