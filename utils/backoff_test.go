package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/fhevote/utils"
)

func TestExponentialBackOff(t *testing.T) {
	minTimeout := 10 * time.Millisecond
	backOff := utils.ExponentialBackOff(minTimeout)

	for attempt := 0; attempt < 10; attempt++ {
		timeout := backOff(attempt)
		assert.GreaterOrEqual(t, timeout, minTimeout)
		assert.LessOrEqual(t, timeout, time.Duration(1+(1<<attempt))*minTimeout)
	}
}

func TestLinearBackOff(t *testing.T) {
	minTimeout := 10 * time.Millisecond
	backOff := utils.LinearBackOff(minTimeout)

	assert.Equal(t, minTimeout, backOff(0))
	for attempt := 1; attempt < 10; attempt++ {
		timeout := backOff(attempt)
		assert.GreaterOrEqual(t, timeout, minTimeout)
		assert.LessOrEqual(t, timeout, time.Duration(1+attempt)*minTimeout)
	}
}

func TestCapped(t *testing.T) {
	maxTimeout := 50 * time.Millisecond
	backOff := utils.Capped(utils.ExponentialBackOff(10*time.Millisecond), maxTimeout)

	for attempt := 0; attempt < 100; attempt++ {
		assert.LessOrEqual(t, backOff(attempt), maxTimeout)
	}
	assert.Equal(t, maxTimeout, backOff(63))
}
