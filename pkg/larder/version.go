// Package larder exposes build metadata for the larder tool.
package larder

// Version is the semantic version of the larder CLI.
const Version = "0.1.0"
