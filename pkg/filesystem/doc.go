// Package filesystem provides filesystem implementations for dbdm.
//
// This package contains implementations of the types.FS interface.
// The engine only ever talks to the filesystem through that interface,
// which keeps the reconciliation logic testable against temp directories
// and leaves the OS binding in one place.
package filesystem
