package optics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRadicalInverse(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0.0, radicalInverse(2, 0))
	assert.Equal(0.5, radicalInverse(2, 1))
	assert.Equal(0.25, radicalInverse(2, 2))
	assert.Equal(0.75, radicalInverse(2, 3))
	assert.Equal(0.125, radicalInverse(2, 4))

	assert.InDelta(1.0/3, radicalInverse(3, 1), 1e-15)
	assert.InDelta(2.0/3, radicalInverse(3, 2), 1e-15)
	assert.InDelta(1.0/9, radicalInverse(3, 3), 1e-15)

	// Values never reach 1.
	for i := uint64(0); i < 1000; i++ {
		v := radicalInverse(2, i)
		assert.GreaterOrEqual(v, 0.0)
		assert.Less(v, 1.0)
	}
}
