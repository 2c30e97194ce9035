// Package provider defines the adapter contract every Skills API backend
// must satisfy, plus the registry that resolves a provider identifier to
// its adapter. Each adapter owns its provider's header rules, URL
// construction, and request/response field mapping; the shared client
// orchestrates them against a transport.Handler.
package provider
