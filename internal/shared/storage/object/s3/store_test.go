package s3

import "testing"

func TestKeyAppliesPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		prefix   string
		fileName string
		want     string
	}{
		{name: "no prefix", prefix: "", fileName: "file.png", want: "file.png"},
		{name: "simple prefix", prefix: "assets", fileName: "file.png", want: "assets/file.png"},
		{name: "nested prefix", prefix: "assets/images", fileName: "file.png", want: "assets/images/file.png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &Store{prefix: tt.prefix}
			got, err := s.key(tt.fileName)
			if err != nil {
				t.Fatalf("key(%q): %v", tt.fileName, err)
			}
			if got != tt.want {
				t.Fatalf("key(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestKeyRejectsTraversal(t *testing.T) {
	t.Parallel()

	s := &Store{prefix: "assets"}
	for _, name := range []string{"../secret.png", "..", "a/../../b.png"} {
		if _, err := s.key(name); err == nil {
			t.Fatalf("expected error for %q", name)
		}
	}
}
