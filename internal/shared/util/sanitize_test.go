package util

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "photo.png", want: "photo.png"},
		{name: "slashes replaced", in: "a/b\\c.png", want: "a_b_c.png"},
		{name: "trimmed", in: "  photo.png  ", want: "photo.png"},
		{name: "traversal rejected", in: "../etc/passwd", wantErr: true},
		{name: "empty rejected", in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		got, err := SanitizeFileName(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error for %q", tt.name, tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: SanitizeFileName(%q): %v", tt.name, tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("%s: SanitizeFileName(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestSafeExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "photo.png", want: ".png"},
		{in: "PHOTO.JPG", want: ".jpg"},
		{in: "archive.tar.gz", want: ".gz"},
		{in: "noext", want: ""},
		{in: "trailingdot.", want: ""},
		{in: "weird.p#g", want: ""},
		{in: "long.extension123", want: ""},
	}

	for _, tt := range tests {
		if got := SafeExtension(tt.in); got != tt.want {
			t.Fatalf("SafeExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
