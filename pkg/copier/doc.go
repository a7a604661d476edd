// Package copier executes copy rules against a project filesystem.
//
// Steps run strictly in the order given. Each step resolves its rule's
// patterns, then copies every match byte-for-byte, creating destination
// directories and overwriting existing files. A step that matches nothing is
// recorded as empty and the run continues. The first filesystem or pattern
// error aborts the run; files written by earlier steps stay where they are.
package copier
