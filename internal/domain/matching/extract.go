package matching

import "strings"

// ExtractSkills derives a SkillSet from free text plus an optional structured
// tag list. Tags are normalized and inserted first, then every vocabulary
// term contained in the normalized text is added. Empty text and empty tags
// yield an empty set.
func ExtractSkills(text string, tags []string) *SkillSet {
	skills := NewSkillSet()

	for _, tag := range tags {
		skills.Add(Normalize(tag))
	}

	normalized := Normalize(text)
	if normalized == "" {
		return skills
	}

	for _, term := range skillVocabulary {
		if strings.Contains(normalized, term) {
			skills.Add(term)
		}
	}

	return skills
}
