package utils

import (
	"math/rand"
	"time"
)

// BackOff computes how long to wait before the next attempt, given the number of attempts made so far
type BackOff func(attempt int) time.Duration

// ExponentialBackOff doubles the jittered wait with every attempt, starting at minTimeout
func ExponentialBackOff(minTimeout time.Duration) BackOff {
	return func(attempt int) time.Duration {
		jitter := rand.Float64()
		strategy := 1 << attempt
		backoff := (1 + float64(strategy)*jitter) * minTimeout.Seconds() * float64(time.Second)

		return time.Duration(backoff)
	}
}

// LinearBackOff grows the jittered wait linearly with every attempt, starting at minTimeout
func LinearBackOff(minTimeout time.Duration) BackOff {
	return func(attempt int) time.Duration {
		jitter := rand.Float64()
		strategy := float64(attempt)

		backoff := (1 + strategy*jitter) * minTimeout.Seconds() * float64(time.Second)
		return time.Duration(backoff)
	}
}

// Capped limits the wait of the given strategy to maxTimeout
func Capped(backOff BackOff, maxTimeout time.Duration) BackOff {
	return func(attempt int) time.Duration {
		if attempt > 62 {
			return maxTimeout
		}

		if timeout := backOff(attempt); timeout > 0 && timeout < maxTimeout {
			return timeout
		}

		return maxTimeout
	}
}
