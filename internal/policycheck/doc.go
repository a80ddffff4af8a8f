// Package policycheck holds repository-wide static checks, run as tests.
//
// The checks load the module with golang.org/x/tools/go/packages and fail when
// code crosses a boundary it should not: cgo outside the shared library
// package, dynamic loading outside internal/loader, or the public packages
// writing to stdout instead of logging.
package policycheck
