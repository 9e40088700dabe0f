package gallery

import (
	"strings"
	"testing"
)

func TestUploadFilename(t *testing.T) {
	got := UploadFilename("my photo (1).jpg")
	if strings.ContainsAny(got, " ()") {
		t.Fatalf("unsafe characters survived: %q", got)
	}
	if !strings.HasSuffix(got, ".jpg") {
		t.Fatalf("extension lost: %q", got)
	}
	// Two uploads of the same name must not collide on the timestamp alone
	if parts := strings.SplitN(got, "-", 2); len(parts) != 2 || parts[0] == "" {
		t.Fatalf("expected a timestamp prefix: %q", got)
	}
}

func TestUploadFilenameStripsPath(t *testing.T) {
	got := UploadFilename("../../etc/passwd")
	if strings.Contains(got, "/") || strings.Contains(got, "..") {
		t.Fatalf("path segments survived: %q", got)
	}
}

func TestFileNameFromURL(t *testing.T) {
	cases := []struct {
		url      string
		expected string
	}{
		{"/gallery/1718000000000-nails.jpg", "1718000000000-nails.jpg"},
		{"https://example.com/gallery/1718000000000-french%20tips.jpg", "1718000000000-french tips.jpg"},
	}
	for _, tc := range cases {
		if got := FileNameFromURL(tc.url); got != tc.expected {
			t.Fatalf("FileNameFromURL(%q): expected %q, got %q", tc.url, tc.expected, got)
		}
	}
}
