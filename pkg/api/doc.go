// Package api defines the canonical, provider-agnostic types for the
// Skills API: the Skill value object, list/delete response envelopes,
// input parameter types, and the structured error taxonomy shared by
// every provider adapter.
//
// Canonical objects are only ever produced by parsing a provider HTTP
// response through a provider adapter; callers never construct them.
package api
