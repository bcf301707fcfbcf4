// Package validation provides common validation utilities for configuration
// parameters across the cronmatch library.
//
// This package offers reusable validation functions that help ensure
// consistent error messages and reduce boilerplate code in constructors
// and command-line argument handling.
package validation
