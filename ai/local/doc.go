// Package local provides the deterministic fallback text generator used
// when no chat model is configured. Degraded, never fatal.
package local
