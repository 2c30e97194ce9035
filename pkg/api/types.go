package api

// Object type discriminators used in canonical responses.
const (
	TypeSkill        = "skill"
	TypeSkillDeleted = "skill_deleted"
	TypeSkillVersion = "skill_version"
)

// Skill source values. Providers without a custom-vs-vendor distinction
// default to SourceCustom.
const (
	SourceCustom    = "custom"
	SourceAnthropic = "anthropic"
)

// Skill is the canonical representation of a skill, regardless of which
// provider produced it. It is an immutable value object: ID never changes
// once assigned, CreatedAt never changes, and UpdatedAt is never earlier
// than CreatedAt when both carry meaning.
//
// Timestamps are ISO-8601 strings. Adapters normalize provider-native
// formats (e.g. Unix epoch seconds) during response transformation.
type Skill struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	DisplayTitle   string `json:"display_title,omitempty"`
	Source         string `json:"source,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	UpdatedAt      string `json:"updated_at,omitempty"`
	LatestVersion  string `json:"latest_version,omitempty"`
	DefaultVersion string `json:"default_version,omitempty"`
}

// ListSkillsResponse is the canonical list envelope. NextPage is an opaque
// cursor; empty means no further pages. The layer does not enforce
// consistency between NextPage and HasMore; that is provider territory.
type ListSkillsResponse struct {
	Data     []Skill `json:"data"`
	NextPage string  `json:"next_page,omitempty"`
	HasMore  bool    `json:"has_more"`
}

// DeleteSkillResponse confirms a deletion. Type is always "skill_deleted".
type DeleteSkillResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// SkillVersion is the canonical representation of a single version of a
// skill, for providers that expose version sub-resources.
type SkillVersion struct {
	Version   string `json:"version"`
	Type      string `json:"type"`
	SkillID   string `json:"skill_id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ListSkillVersionsResponse is the canonical version-list envelope.
type ListSkillVersionsResponse struct {
	Data     []SkillVersion `json:"data"`
	NextPage string         `json:"next_page,omitempty"`
	HasMore  bool           `json:"has_more"`
}

// SkillContent holds the raw content bundle of a skill or skill version.
// The bytes are returned as the provider sent them.
type SkillContent struct {
	ContentType string `json:"content_type,omitempty"`
	Data        []byte `json:"data"`
}

// CreateSkillRequest carries the caller-supplied fields for skill
// creation. All fields are optional; zero values are omitted from the
// wire payload.
type CreateSkillRequest struct {
	DisplayTitle string `json:"display_title,omitempty"`

	// Files holds opaque references to content blobs to upload with
	// the skill. The adapter forwards them verbatim.
	Files []string `json:"files,omitempty"`
}

// ListSkillsParams carries the caller-supplied list filters. Page is the
// canonical cursor name; adapters rename it to the provider's native
// pagination parameter where needed.
type ListSkillsParams struct {
	Limit  int    `json:"limit,omitempty"`
	Page   string `json:"page,omitempty"`
	Source string `json:"source,omitempty"`
}

// UpdateSkillRequest carries the caller-supplied fields for a skill
// update. Zero values are omitted from the wire payload.
type UpdateSkillRequest struct {
	DisplayTitle   string `json:"display_title,omitempty"`
	DefaultVersion string `json:"default_version,omitempty"`
}
