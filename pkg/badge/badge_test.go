package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Rotation(t *testing.T) {
	assert.Equal(t, Class("bg-blue-100 text-blue-800"), Color(0, 0))
	assert.Equal(t, Class("bg-orange-100 text-orange-800"), Color(1, 0))
	assert.Equal(t, Class("bg-orange-100 text-orange-800"), Color(0, 1))
	assert.Equal(t, Class("bg-gray-100 text-gray-800"), Color(6, 0))
	// wraps around after the seventh color
	assert.Equal(t, Color(0, 0), Color(7, 0))
	assert.Equal(t, Color(3, 2), Color(2, 3))
}

func TestColor_NegativeIndex(t *testing.T) {
	assert.Equal(t, Class("bg-gray-100 text-gray-800"), Color(-1, 0))
	assert.Equal(t, Color(0, 0), Color(-7, 0))
}

func TestSize(t *testing.T) {
	assert.Equal(t, 7, Size())
}
