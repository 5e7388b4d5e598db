package hashutil

import (
	"regexp"
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"abc": "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	}

	for input, want := range tests {
		if got := SHA256Hex(input); got != want {
			t.Fatalf("SHA256Hex(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestMD5Hex(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":    "d41d8cd98f00b204e9800998ecf8427e",
		"abc": "900150983cd24fb0d6963f7d28e17f72",
	}

	for input, want := range tests {
		if got := MD5Hex(input); got != want {
			t.Fatalf("MD5Hex(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestDigestShapeAndDeterminism(t *testing.T) {
	t.Parallel()

	sha := regexp.MustCompile(`^[0-9a-f]{64}$`)
	md := regexp.MustCompile(`^[0-9a-f]{32}$`)

	for _, input := range []string{"", "evil.example", "padding==", "ünïcode"} {
		if got := SHA256Hex(input); !sha.MatchString(got) {
			t.Fatalf("SHA256Hex(%q) = %q, want 64 lowercase hex chars", input, got)
		}
		if got := MD5Hex(input); !md.MatchString(got) {
			t.Fatalf("MD5Hex(%q) = %q, want 32 lowercase hex chars", input, got)
		}
		if SHA256Hex(input) != SHA256Hex(input) || MD5Hex(input) != MD5Hex(input) {
			t.Fatalf("digest of %q is not deterministic", input)
		}
	}
}
