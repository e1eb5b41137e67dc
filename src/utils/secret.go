package utils

import "crypto/subtle"

// SecretEqual compares in constant time. An empty expected secret never
// matches, so an unset password locks the endpoint instead of opening it.
func SecretEqual(expected, given string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(given)) == 1
}
