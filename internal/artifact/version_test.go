package artifact

import (
	"errors"
	"testing"

	"github.com/appdist/distman/internal/prompt"
)

func TestExtractVersionFromName(t *testing.T) {
	tests := []struct {
		name string
		want uint32
	}{
		{"app-4-arm64.apk", 4},
		{"app-120.apk", 120},
		{"MyApp-007.app.zip", 7},
		{"build2024-rc1.AppImage", 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := prompt.NewScripted()
			got, err := ExtractVersion(tt.name, p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractVersion(%q) = %d, want %d", tt.name, got, tt.want)
			}
			if len(p.Asked) != 0 {
				t.Errorf("prompted for %q: %v", tt.name, p.Asked)
			}
		})
	}
}

func TestExtractVersionPrompts(t *testing.T) {
	p := prompt.NewScripted("17")
	got, err := ExtractVersion("app-release.apk", p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 17 {
		t.Errorf("ExtractVersion() = %d, want 17", got)
	}
	if len(p.Asked) != 1 {
		t.Errorf("Asked = %v, want exactly one prompt", p.Asked)
	}
}

func TestExtractVersionInvalid(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		answer string
	}{
		{"non numeric input", "app.apk", "latest"},
		{"negative input", "app.apk", "-3"},
		{"overflow in name", "app-99999999999.apk", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := prompt.NewScripted(tt.answer)
			if _, err := ExtractVersion(tt.file, p); !errors.Is(err, ErrInvalidVersion) {
				t.Errorf("error = %v, want ErrInvalidVersion", err)
			}
		})
	}
}
