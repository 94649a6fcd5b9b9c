package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddWithOverflow(t *testing.T) {
	sum, overflow := AddWithOverflow(100, 200)
	assert.False(t, overflow)
	assert.Equal(t, 300, sum)

	_, overflow = AddWithOverflow(65000, 1000)
	assert.True(t, overflow, "sum past the 16-bit offset range must overflow")

	sum, overflow = AddWithOverflow(300, -100)
	assert.False(t, overflow)
	assert.Equal(t, 200, sum)
}
