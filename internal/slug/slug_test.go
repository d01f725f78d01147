package slug

import "testing"

// TestGenerate exercises the slug generator with typical category and
// template titles, special characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Wedding Invites",
			want:  "wedding-invites",
		},
		{
			name:  "title with year",
			input: "Birthday Cards 2026",
			want:  "birthday-cards-2026",
		},
		{
			name:  "already lowercase",
			input: "floral wedding",
			want:  "floral-wedding",
		},
		{
			name:  "single word",
			input: "Invitations",
			want:  "invitations",
		},
		{
			name:  "punctuation collapses to hyphen",
			input: "Save the Date! (Premium)",
			want:  "save-the-date-premium",
		},
		{
			name:  "ampersand",
			input: "Haldi & Mehndi",
			want:  "haldi-mehndi",
		},
		{
			name:  "dotted version collapses each separator",
			input: "Classic v2.0",
			want:  "classic-v2-0",
		},
		{
			name:  "leading and trailing spaces",
			input: "  Royal Blue  ",
			want:  "royal-blue",
		},
		{
			name:  "multiple consecutive spaces",
			input: "Gold    Foil",
			want:  "gold-foil",
		},
		{
			name:  "leading special characters trimmed",
			input: "--New Arrivals--",
			want:  "new-arrivals",
		},
		{
			name:  "existing hyphen preserved",
			input: "e-card designs",
			want:  "e-card-designs",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%",
			want:  "",
		},
		{
			name:  "only spaces",
			input: "   ",
			want:  "",
		},
		{
			name:  "single character",
			input: "A",
			want:  "a",
		},
		{
			name:  "numbers only",
			input: "12345",
			want:  "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"wedding-invites",
		"floral-wedding",
		"a",
		"123",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			got := Generate(s)
			if got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}

// TestGenerate_ConsistentCase verifies that slugs are always lowercase
// regardless of input casing.
func TestGenerate_ConsistentCase(t *testing.T) {
	inputs := []string{
		"WEDDING INVITES",
		"Wedding Invites",
		"wEdDiNg InViTeS",
		"wedding invites",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got := Generate(input)
			if got != "wedding-invites" {
				t.Errorf("Generate(%q) = %q, want %q", input, got, "wedding-invites")
			}
		})
	}
}
