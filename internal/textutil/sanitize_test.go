package textutil

import "testing"

func TestSanitizeQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"drops disallowed punctuation", "Hello,_World-!@$ 42.", "Hello_World- 42."},
		{"keeps allowed set", "abc-DEF_123. x", "abc-DEF_123. x"},
		{"empty", "", ""},
		{"only disallowed", "!@#$%^&*()", ""},
		{"strips control characters", "a\tb\nc", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeQuery(tt.input); got != tt.want {
				t.Fatalf("SanitizeQuery(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsQueryRune(t *testing.T) {
	for _, r := range "aZ9-_. " {
		if !IsQueryRune(r) {
			t.Errorf("IsQueryRune(%q) = false, want true", r)
		}
	}
	for _, r := range "!\n\t@é/" {
		if IsQueryRune(r) {
			t.Errorf("IsQueryRune(%q) = true, want false", r)
		}
	}
}

func TestNormalizeForMatch(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello,  World!!", "Hello-World"},
		{"foo bar", "foo-bar"},
		{"already-dashed", "already-dashed"},
		{"  edge  ", "-edge-"},
	}
	for _, tt := range tests {
		if got := NormalizeForMatch(tt.input); got != tt.want {
			t.Errorf("NormalizeForMatch(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
