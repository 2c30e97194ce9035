// Package openai implements the Skills API adapter for the OpenAI API.
// OpenAI's native wire shapes differ from the canonical ones: skills are
// named with "name" rather than "display_title", timestamps are Unix
// epoch seconds, and list pagination uses the "after" cursor parameter
// with "last_id" in responses. translate.go holds the field mapping.
// Unlike Anthropic, OpenAI supports the full extended operation set
// (update, content fetch, versioning).
package openai
