// Package helpers provides small utility functions shared across the project.
package helpers

import "strings"

// IsEmpty checks if a string is empty or contains only whitespace.
//
// Input: string to check
// Output: bool indicating if string is empty/whitespace
// Behavior: Trims whitespace and checks length
//
// Example:
//
//	result := helpers.IsEmpty("")        // true
//	result := helpers.IsEmpty("  ")      // true
//	result := helpers.IsEmpty("merhaba") // false
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// DefaultString returns the first non-empty string from the provided options.
// Useful for layering overrides over configured defaults.
//
// Input: variadic string arguments
// Output: first non-empty string, or empty string if all are empty
// Behavior: Returns first non-empty string, ignoring empty/whitespace strings
//
// Example:
//
//	model := helpers.DefaultString(override, cfg.Model, "gpt-4o-mini")
func DefaultString(options ...string) string {
	for _, option := range options {
		if !IsEmpty(option) {
			return option
		}
	}
	return ""
}
