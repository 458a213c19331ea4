package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var testNow = time.Date(2025, 8, 26, 12, 0, 0, 0, time.UTC)

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func TestFastCreateTargetProposesDatedPath(t *testing.T) {
	root := t.TempDir()

	target, ok := FastCreateTarget(root, "new thing", testNow)
	if !ok {
		t.Fatal("expected a fast-create target")
	}
	want := filepath.Join(root, "2025-08-26-new-thing")
	if target != want {
		t.Fatalf("FastCreateTarget() = %q, want %q", target, want)
	}
}

func TestFastCreateTargetSkipsWhenExactExists(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "2025-08-20-foo-bar"))

	// The existing name matches once its date prefix is stripped and the
	// query's whitespace collapses to a dash.
	if _, ok := FastCreateTarget(root, "foo bar", testNow); ok {
		t.Fatal("expected no target when an exact match exists")
	}
}

func TestFastCreateTargetMatchesUndatedNames(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "scratch"))

	if _, ok := FastCreateTarget(root, "scratch", testNow); ok {
		t.Fatal("expected no target for an existing undated directory")
	}
}

func TestFastCreateTargetIgnoresFilesAndTrash(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, ".try_trash"))
	if err := os.WriteFile(filepath.Join(root, "notes"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, ok := FastCreateTarget(root, "notes", testNow); !ok {
		t.Fatal("a plain file must not block fast-create")
	}
	if target, ok := FastCreateTarget(root, "try trash", testNow); !ok || target == "" {
		t.Fatal("the trash directory must not block fast-create")
	}
}

func TestFastCreateTargetSanitizesQuery(t *testing.T) {
	root := t.TempDir()

	target, ok := FastCreateTarget(root, "Hello,_World-!@$ 42.", testNow)
	if !ok {
		t.Fatal("expected a fast-create target")
	}
	if got := filepath.Base(target); got != "2025-08-26-Hello_World--42." {
		t.Fatalf("base name = %q, want %q", got, "2025-08-26-Hello_World--42.")
	}
}

func TestFastCreateTargetEmptyQuery(t *testing.T) {
	if _, ok := FastCreateTarget(t.TempDir(), "!!!", testNow); ok {
		t.Fatal("a query that sanitizes to nothing must not fast-create")
	}
}

func TestFastCreateTargetMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	target, ok := FastCreateTarget(root, "fresh", testNow)
	if !ok {
		t.Fatal("a missing root has no exact matches, so fast-create applies")
	}
	if want := filepath.Join(root, "2025-08-26-fresh"); target != want {
		t.Fatalf("FastCreateTarget() = %q, want %q", target, want)
	}
}
