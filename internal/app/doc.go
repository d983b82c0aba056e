// Package app contains the application lifecycle. It owns the configured
// logger, the menu and the I/O streams, and runs the order loop, decoupled
// from any specific entrypoint like a CLI.
package app
