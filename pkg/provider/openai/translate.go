package openai

import (
	"fmt"
	"math"
	"time"

	"github.com/skillgate/skillgate/pkg/api"
)

// skillToCanonical maps an OpenAI skill object into the canonical shape:
//
//   - name becomes display_title
//   - created_at (Unix seconds) is formatted as ISO-8601
//   - object becomes type, defaulting to "skill"
//   - source is fixed to "custom"; OpenAI has no vendor-skill concept
//   - updated_at reuses created_at; OpenAI has no distinct update time
func skillToCanonical(raw skillObject) api.Skill {
	created := formatTimestamp(raw.CreatedAt)
	typ := raw.Object
	if typ == "" {
		typ = api.TypeSkill
	}
	return api.Skill{
		ID:             raw.ID,
		Type:           typ,
		DisplayTitle:   raw.Name,
		Source:         api.SourceCustom,
		CreatedAt:      created,
		UpdatedAt:      created,
		LatestVersion:  string(raw.LatestVersion),
		DefaultVersion: string(raw.DefaultVersion),
	}
}

// versionToCanonical maps an OpenAI skill version object into the
// canonical shape.
func versionToCanonical(raw versionObject) api.SkillVersion {
	typ := raw.Object
	if typ == "" {
		typ = api.TypeSkillVersion
	}
	return api.SkillVersion{
		Version:   string(raw.Version),
		Type:      typ,
		SkillID:   raw.SkillID,
		CreatedAt: formatTimestamp(raw.CreatedAt),
	}
}

// formatTimestamp converts a Unix epoch value to an ISO-8601 UTC string.
// Non-numeric values pass through as strings unchanged; this is a
// defensive fallback, not validation.
func formatTimestamp(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		sec, frac := math.Modf(t)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC().Format(time.RFC3339)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}
