package utils

import (
	"testing"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Plain text unchanged",
			input: "Sunday football in the park",
			want:  "Sunday football in the park",
		},
		{
			name:  "HTML tags stripped",
			input: "<b>Sunday</b> football <script>alert(1)</script>",
			want:  "Sunday football",
		},
		{
			name:  "Whitespace collapsed",
			input: "  Sunday   football\n in the  park ",
			want:  "Sunday football in the park",
		},
		{
			name:  "Empty string",
			input: "",
			want:  "",
		},
		{
			name:  "Only markup",
			input: "<div><span></span></div>",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.input); got != tt.want {
				t.Errorf("SanitizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestGenerateAvatarBase64(t *testing.T) {
	avatar := GenerateAvatarBase64("John Doe")

	if avatar == "" {
		t.Fatal("expected non-empty avatar")
	}
	if got, want := avatar[:26], "data:image/svg+xml;base64,"; got != want {
		t.Errorf("avatar prefix = %q, want %q", got, want)
	}

	// Different names produce different avatars
	other := GenerateAvatarBase64("Jane Smith")
	if avatar == other {
		t.Error("expected different initials to produce different avatars")
	}
}
