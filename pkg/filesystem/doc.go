// Package filesystem provides the project filesystems assetcp reads from and
// writes to.
//
// Every filesystem is an afero.Fs rooted at the project base directory, so
// patterns, sources and destinations are all plain relative paths. Real runs
// use the OS; tests use an in-memory tree with the same rooting.
package filesystem
