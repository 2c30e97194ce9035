// Package anthropic implements the Skills API adapter for the Anthropic
// API. The Skills surface is behind a beta gate: every request carries
// the skills beta token in the anthropic-beta header (merged with any
// beta flags the caller already set) and a beta=true query parameter.
// Anthropic's native skill JSON matches the canonical shape field for
// field, so response transforms are decode-only.
package anthropic
