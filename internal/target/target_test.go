package target

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		token   string
		want    Target
		wantErr bool
	}{
		{"android", Android, false},
		{"ios", Ios, false},
		{"mac", Mac, false},
		{"linux", Linux, false},
		{"windows", Windows, false},
		{"Android", Android, false},
		{" linux ", Linux, false},
		{"web", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Parse(tt.token)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownTarget) {
					t.Fatalf("Parse(%q) error = %v, want ErrUnknownTarget", tt.token, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestRegistryTable(t *testing.T) {
	tests := []struct {
		target  Target
		name    string
		suffix  string
		link    string
		publish bool
	}{
		{Android, "android", "apk", "latest.apk", true},
		{Ios, "ios", "ipa", "latest.ipa", false},
		{Mac, "mac", "app.zip", "latest.app.zip", false},
		{Linux, "linux", "AppImage", "latest.AppImage", true},
		{Windows, "windows", "win.zip", "latest.win.zip", true},
	}

	if len(tests) != len(All()) {
		t.Fatalf("table covers %d targets, registry has %d", len(tests), len(All()))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.target.Suffix(); got != tt.suffix {
				t.Errorf("Suffix() = %q, want %q", got, tt.suffix)
			}
			if got := tt.target.LinkName(); got != tt.link {
				t.Errorf("LinkName() = %q, want %q", got, tt.link)
			}
			if got := tt.target.PublishesURL(); got != tt.publish {
				t.Errorf("PublishesURL() = %v, want %v", got, tt.publish)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		target Target
		name   string
		want   bool
	}{
		{Android, "app-4-arm64.apk", true},
		{Android, "app-4.apk.sha256", false},
		{Mac, "MyApp-12.app.zip", true},
		{Mac, "MyApp-12-win.zip", false},
		{Windows, "MyApp-12-win.zip", true},
		{Linux, "MyApp-12.AppImage", true},
		{Linux, "MyApp-12.appimage", false},
	}

	for _, tt := range tests {
		if got := tt.target.Matches(tt.name); got != tt.want {
			t.Errorf("%v.Matches(%q) = %v, want %v", tt.target, tt.name, got, tt.want)
		}
	}
}

func TestClassifyArch(t *testing.T) {
	tests := []struct {
		name   string
		want   Arch
		wantOK bool
	}{
		{"app-v1-arm64.apk", Arm64, true},
		{"app-v1-amd64.apk", Amd64, true},
		{"app-v1-arm.apk", Arm, true},
		{"app-v1.apk", 0, false},
		{"APP-V1-ARM64.APK", Arm64, true},
		{"app-arm-amd64.AppImage", Amd64, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyArch(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("ClassifyArch(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ClassifyArch(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
