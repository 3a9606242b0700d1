// Package log provides simple leveled logging for libvirt-resolved-hook.
//
// The hook runs non-interactively under libvirtd, so every line carries an
// RFC3339 timestamp and output goes to stderr by default, or to a file when
// configured via OpenLogFile. Debug messages are only emitted after
// SetVerbose(true).
package log
