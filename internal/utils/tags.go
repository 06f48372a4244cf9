package utils

import (
	"encoding/json"
	"strings"
)

// SplitTags derives a tag list from the single comma-separated form field.
// Tokens are trimmed, empty ones dropped, input order preserved.
func SplitTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		tags = append(tags, p)
	}
	return tags
}

// JoinTags is the inverse used when prefilling the edit form.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// NormalizeTags applies the same trim-and-drop-empty rule to a list that
// already arrived split.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
	}
	return out
}

// TagList accepts both shapes the admin form sends for tags: a JSON array
// of strings or one comma-separated string. Tokens are normalized either
// way, so "  A, B ,,C  " and ["  A"," B ","","C  "] both land as [A B C].
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = SplitTags(s)
		return nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = NormalizeTags(raw)
	return nil
}
