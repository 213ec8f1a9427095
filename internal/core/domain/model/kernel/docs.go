// Package kernel contains shared domain primitives used across aggregates.
// Currently this is the UUID value object, which wraps github.com/google/uuid
// with construction validation so that entity identifiers are never zero values.
package kernel
