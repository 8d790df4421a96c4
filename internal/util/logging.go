// Package util provides small shared helpers: error logging, data directory
// lookup and integer/percentage math used by the tracker.
package util

import "log"

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// LogDropped records a persisted value that was discarded while loading.
func LogDropped(field string, value any, reason string) {
	log.Printf("dropping %s entry %v: %s", field, value, reason)
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
