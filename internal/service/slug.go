package service

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/MKhiriev/fave-tweets/models"
	"golang.org/x/text/unicode/norm"
)

// TagSeparator splits the free-text tag list; TagListJoiner renders it.
const (
	TagSeparator  = ","
	TagListJoiner = ", "
)

var nonWordRun = regexp.MustCompile(`[^a-z0-9_]+`)

// DeriveSlug makes a URL-safe identifier out of a tag name: surrounding
// whitespace removed, compatibility decomposition, non-ASCII dropped,
// lower-cased, every run of non-word characters replaced by a single "-",
// a trailing "-" trimmed. A leading symbol still yields a leading "-".
//
//	DeriveSlug("Go Lang!!") == "go-lang"
//	DeriveSlug("  C++  ")   == "c"
//	DeriveSlug("Café")      == "cafe"
//	DeriveSlug("#golang")   == "-golang"
func DeriveSlug(name string) string {
	decomposed := norm.NFKD.String(strings.TrimSpace(name))

	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, decomposed)

	slug := nonWordRun.ReplaceAllString(strings.ToLower(ascii), "-")
	return strings.TrimRight(slug, "-")
}

// ParseTagList splits text on commas, trims every name and drops empty and
// repeated names. The first occurrence of a name keeps its position.
func ParseTagList(text string) []string {
	parts := strings.Split(text, TagSeparator)

	names := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// buildTags turns a tag list into unsaved tags of userID with derived slugs.
func buildTags(userID int64, text string) []models.Tag {
	names := ParseTagList(text)
	tags := make([]models.Tag, len(names))
	for i, name := range names {
		tags[i] = models.Tag{UserID: userID, Name: name, Slug: DeriveSlug(name)}
	}
	return tags
}

// JoinTagNames renders tags as a tag list string.
func JoinTagNames(tags []models.Tag) string {
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.Name
	}
	return strings.Join(names, TagListJoiner)
}
