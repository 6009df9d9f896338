// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Headless snapshot command, JSON stats, reseed key
// 0.2.0 - Shooting stars and drifting glow layer
// 0.1.0 - Initial release: falling, flickering star field in the terminal
