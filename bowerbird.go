// Package bowerbird holds shared metadata for the bowerbird CLI.
package bowerbird

// Version is the current bowerbird release version.
const Version = "0.3.0"
