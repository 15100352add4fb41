// Package api implements the HTTP request executor for the Waitly API:
// URL construction, header handling, per-request timeouts, the retry
// loop with exponential backoff, and the in-flight request registry.
package api
