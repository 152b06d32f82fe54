// Package helpers provides small utility functions shared across the project.
package helpers

// PtrOf creates a pointer to any value type.
//
// Input: T value of any type
// Output: *T pointer to the value
// Behavior: Generic helper for creating pointers, useful for optional filter and config fields
//
// Example:
//
//	spec.MinExperienceYears = helpers.PtrOf(int64(2))
//	spec.RepeatedYear = helpers.PtrOf(true)
func PtrOf[T any](t T) *T { return &t }
