// Package wtc exposes build-level metadata for the what-to-cook tool.
package wtc

// Version is the current release version.
const Version = "0.2.0"
