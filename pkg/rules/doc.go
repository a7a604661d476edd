// Package rules defines copy rules and the path arithmetic that maps a matched
// source file to its destination.
//
// A rule pairs an ordered list of source patterns with a destination directory
// and a path mode:
//
//   - strip(n): drop the first n segments of the root-relative source path and
//     keep the rest under the destination. With n=3,
//     node_modules/bootstrap/dist/css/bootstrap.css lands at <dest>/css/bootstrap.css.
//   - flatten: keep only the base name. node_modules/jquery/dist/jquery.min.js
//     lands at <dest>/jquery.min.js.
//
// The file name itself is never stripped: a strip depth that would consume it
// places the file directly in the destination.
package rules
