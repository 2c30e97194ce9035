package openai

import "encoding/json"

// versionToken decodes a version field that OpenAI serializes as either
// a JSON string or a number. Numbers keep their decimal representation.
type versionToken string

func (v *versionToken) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = versionToken(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = versionToken(n.String())
	return nil
}

// skillObject is OpenAI's native skill payload.
// CreatedAt is decoded as any: numeric Unix seconds in practice, but a
// non-numeric value is passed through as a string unchanged.
type skillObject struct {
	ID             string       `json:"id"`
	Object         string       `json:"object"`
	Name           string       `json:"name"`
	CreatedAt      any          `json:"created_at"`
	LatestVersion  versionToken `json:"latest_version"`
	DefaultVersion versionToken `json:"default_version"`
}

// listObject is OpenAI's cursor-paginated list envelope.
type listObject struct {
	Object  string        `json:"object"`
	Data    []skillObject `json:"data"`
	FirstID string        `json:"first_id"`
	LastID  string        `json:"last_id"`
	HasMore bool          `json:"has_more"`
}

// deleteObject is OpenAI's native delete confirmation. The Deleted flag
// is not part of the canonical shape and is dropped.
type deleteObject struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}

// versionObject is OpenAI's native skill version payload.
type versionObject struct {
	Object    string       `json:"object"`
	Version   versionToken `json:"version"`
	SkillID   string       `json:"skill_id"`
	CreatedAt any          `json:"created_at"`
}

// versionListObject is the version-list envelope.
type versionListObject struct {
	Object  string          `json:"object"`
	Data    []versionObject `json:"data"`
	FirstID string          `json:"first_id"`
	LastID  string          `json:"last_id"`
	HasMore bool            `json:"has_more"`
}
