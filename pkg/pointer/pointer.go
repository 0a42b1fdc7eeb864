// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

/*
Package pointer provides utilities for working with pointers in Go.

It utilizes generics to simplify the creation and dereferencing of pointers
cleanly, avoiding boilerplate in domain code where optional fields (such as
nullable ratings) are modeled as pointers.
*/
package pointer

// To returns a pointer to the provided value.
// It is useful when a struct field expects a pointer to a literal,
// e.g. pointer.To(3.5) for an optional rating.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
