package lyric

import "testing"

func TestMetadataTag(t *testing.T) {
	tests := []struct {
		text string
		want string
		ok   bool
	}{
		{"musicName:Test Song", "[ti:Test Song]", true},
		{"artists:Someone", "[ar:Someone]", true},
		{"album:Record", "[al:Record]", true},
		{"ttmlAuthorGithubLogin:someone", "[by:someone]", true},
		// surrounding whitespace is trimmed
		{" musicName : Test Song ", "[ti:Test Song]", true},
		// values may themselves contain colons
		{"musicName:A:B", "[ti:A:B]", true},
		// unknown keys, empty values and colon-less bodies are dropped
		{"unknownKey:value", "", false},
		{"musicName:", "", false},
		{"musicName:   ", "", false},
		{"no colon here", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := MetadataTag(tt.text)
		if got != tt.want || ok != tt.ok {
			t.Errorf("MetadataTag(%q) = (%q, %v), want (%q, %v)",
				tt.text, got, ok, tt.want, tt.ok)
		}
	}
}
