// Package registry provides a generic name-keyed store that remembers the
// order in which items were registered.
package registry
