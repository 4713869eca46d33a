package controller

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAvatarObjectName(t *testing.T) {
	name := avatarObjectName(42, "me.PNG")

	if !strings.HasPrefix(name, "avatars/42_") {
		t.Fatalf("expected avatars/42_ prefix, got %q", name)
	}
	if !strings.HasSuffix(name, ".PNG") {
		t.Fatalf("expected original extension kept, got %q", name)
	}

	middle := strings.TrimSuffix(strings.TrimPrefix(name, "avatars/42_"), ".PNG")
	if _, err := uuid.Parse(middle); err != nil {
		t.Fatalf("expected a uuid between prefix and extension, got %q: %v", middle, err)
	}

	if avatarObjectName(42, "me.PNG") == name {
		t.Fatal("two uploads of the same file must get distinct keys")
	}
}

func TestAvatarObjectNameNoExtension(t *testing.T) {
	name := avatarObjectName(7, "avatar")
	if strings.Contains(name, ".") {
		t.Fatalf("no extension on input must mean no extension on output, got %q", name)
	}
}
