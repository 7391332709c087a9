package random

import (
	"math/rand"
	"time"
)

// Timeout generates a random duration between the provided min and max durations.
func Timeout(min time.Duration, max time.Duration) time.Duration {
	n := rand.Int63n(max.Milliseconds()-min.Milliseconds()) + min.Milliseconds()
	return time.Duration(n) * time.Millisecond
}

// Int generates a random integer between the provided min and max integers (inclusive of min, exclusive of max).
func Int(min int, max int) int {
	return min + rand.Intn(max-min)
}

// Float generates a random float between the provided min and max (inclusive of min, exclusive of max).
func Float(min float64, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// Rune generates a random printable ASCII character.
func Rune() rune {
	return rune(Int(' ', '~'+1))
}

// String generates a random string of printable ASCII characters with a length less than maxLen.
func String(maxLen int) string {
	runes := make([]rune, Int(0, maxLen))
	for i := range runes {
		runes[i] = Rune()
	}
	return string(runes)
}
