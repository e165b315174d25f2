package platform

// Package platform contains external integration: the HTTP client for the
// remote users endpoint.
