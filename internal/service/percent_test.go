package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentOfTotal(t *testing.T) {
	assert.Equal(t, 0.0, PercentOfTotal(0, 0))
	assert.Equal(t, 0.0, PercentOfTotal(7, 0))
	assert.Equal(t, 25.0, PercentOfTotal(25, 100))
	assert.Equal(t, 33.33, PercentOfTotal(1, 3))
	assert.Equal(t, 66.67, PercentOfTotal(2, 3))
	assert.Equal(t, 100.0, PercentOfTotal(4, 4))
}

func TestRemainderOf(t *testing.T) {
	assert.Equal(t, 75, RemainderOf(25, 100))
	assert.Equal(t, 0, RemainderOf(0, 0))
	assert.Equal(t, 0, RemainderOf(15, 10), "overlapping matches must not go negative")
}
