package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.13, RoundCents(10.126))
	assert.Equal(t, 0.33, RoundCents(1.0/3))
	assert.Equal(t, -2.5, RoundCents(-2.499))
}

func TestRoundPlaces(t *testing.T) {
	assert.Equal(t, 0.6667, Round(2.0/3, 4))
	assert.Equal(t, 0.0, Round(0, 4))
}
