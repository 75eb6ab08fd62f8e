package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScaffoldProject(t *testing.T) {
	t.Run("creates everything in empty directory", func(t *testing.T) {
		dir := t.TempDir()

		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}

		expected := []string{
			filepath.Join(dir, "querydeck.toml"),
			filepath.Join(dir, ".querydeck"),
			filepath.Join(dir, ".gitignore"),
		}
		if len(created) != len(expected) {
			t.Fatalf("created %d paths, want %d: %v", len(created), len(expected), created)
		}
		for i, want := range expected {
			if created[i] != want {
				t.Errorf("created[%d] = %q, want %q", i, created[i], want)
			}
		}

		info, err := os.Stat(filepath.Join(dir, ".querydeck"))
		if err != nil {
			t.Fatalf("data dir: %v", err)
		}
		if !info.IsDir() {
			t.Error(".querydeck should be a directory")
		}

		content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		if err != nil {
			t.Fatalf(".gitignore: %v", err)
		}
		if !strings.Contains(string(content), ".querydeck/") {
			t.Error(".gitignore should contain .querydeck/")
		}
	})

	t.Run("skips existing config", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "querydeck.toml"), []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}

		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(created) != 2 {
			t.Fatalf("created %d paths, want 2: %v", len(created), created)
		}

		content, err := os.ReadFile(filepath.Join(dir, "querydeck.toml"))
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "existing" {
			t.Error("querydeck.toml was overwritten")
		}
	})

	t.Run("appends to gitignore without trailing newline", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("bin/"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := ScaffoldProject(dir); err != nil {
			t.Fatal(err)
		}

		content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "bin/\n.querydeck/\n" {
			t.Errorf(".gitignore: got %q", string(content))
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := ScaffoldProject(dir); err != nil {
			t.Fatal(err)
		}
		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(created) != 0 {
			t.Errorf("expected nothing created, got %v", created)
		}
	})
}
