package lyric

import (
	"fmt"
	"strings"
)

// keys recognized in meta comment lines and their short output tags
var metadataTags = map[string]string{
	"musicName":             "ti",
	"artists":               "ar",
	"album":                 "al",
	"ttmlAuthorGithubLogin": "by",
}

// MetadataTag maps the body of a meta comment ("key:value") to an
// output metadata line like "[ti:value]". Unknown keys and empty
// values are dropped, not errors.
func MetadataTag(text string) (string, bool) {
	colon := strings.Index(text, ":")
	if colon < 0 {
		return "", false
	}

	key := strings.TrimSpace(text[:colon])
	value := strings.TrimSpace(text[colon+1:])

	tag, ok := metadataTags[key]
	if !ok || value == "" {
		return "", false
	}
	return fmt.Sprintf("[%s:%s]", tag, value), true
}
