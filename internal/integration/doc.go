// Package integration holds end-to-end tests that drive the mode controller
// through whole sessions.
package integration
