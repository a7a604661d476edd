// Package testutil provides fixtures for testing assetcp components.
//
// Key components:
//   - NewProject: in-memory project tree seeded from a path->content map
//   - VendorTree: a node_modules layout mirroring the vendor packages assetcp copies
//   - FailingFs: afero wrapper that injects errors for chosen paths
//   - ReadTree / AssertFile: inspecting what a run wrote
//
// All test data is defined inline; nothing touches the real filesystem unless
// a test asks for t.TempDir().
package testutil
