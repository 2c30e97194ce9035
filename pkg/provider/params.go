package provider

import (
	"net/url"
	"os"
	"time"
)

// Params carries per-call connection parameters. Extra values are merged
// verbatim into the transformed artifacts and forwarded to the provider.
type Params struct {
	// APIKey overrides the adapter's construction-time key and the
	// provider environment variable.
	APIKey string

	// APIBase overrides the provider's default API root.
	APIBase string

	// Timeout bounds the HTTP request. Zero means the handler default.
	Timeout time.Duration

	// ExtraHeaders are merged into the headers produced by
	// ValidateEnvironment.
	ExtraHeaders map[string]string

	// ExtraQuery is merged into the query parameters of every request.
	ExtraQuery url.Values

	// ExtraBody is merged into the request body of create/update requests.
	// Keys unknown to the canonical request types pass through verbatim.
	ExtraBody map[string]any
}

// ResolveAPIKey applies the key resolution priority order shared by all
// adapters: explicit call parameter, then the adapter's construction-time
// default, then the provider's environment variable.
func ResolveAPIKey(params *Params, processDefault, envVar string) string {
	if params != nil && params.APIKey != "" {
		return params.APIKey
	}
	if processDefault != "" {
		return processDefault
	}
	return os.Getenv(envVar)
}

// CloneHeaders copies a header map so adapters never mutate caller state.
func CloneHeaders(headers map[string]string) map[string]string {
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[k] = v
	}
	return out
}

// MergeExtraBody folds params.ExtraBody into body, with extra values
// winning on key conflicts.
func MergeExtraBody(body map[string]any, params *Params) map[string]any {
	if params == nil {
		return body
	}
	for k, v := range params.ExtraBody {
		body[k] = v
	}
	return body
}

// MergeExtraQuery folds params.ExtraQuery into query, allocating the
// map when a nil query has extras to carry.
func MergeExtraQuery(query url.Values, params *Params) url.Values {
	if params == nil || len(params.ExtraQuery) == 0 {
		return query
	}
	if query == nil {
		query = url.Values{}
	}
	for k, vs := range params.ExtraQuery {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	return query
}
