package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindLocatesBackupsRecursively(t *testing.T) {
	tmp := t.TempDir()

	nested := filepath.Join(tmp, "Shared", "Resources")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("MkdirAll error: %v", err)
	}

	old := filepath.Join(tmp, "Localizable.xcstrings.backup_20250101_090000")
	recent := filepath.Join(nested, "Localizable.xcstrings.backup_20250601_120000")
	plain := filepath.Join(tmp, "Localizable.xcstrings")

	for _, path := range []string{old, recent, plain} {
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
	}

	// make modification order deterministic
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatalf("Chtimes error: %v", err)
	}

	backups, err := Find(tmp)
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(backups) != 2 {
		t.Fatalf("found %d backups, want 2", len(backups))
	}
	if backups[0].Path != recent {
		t.Errorf("first backup = %s, want newest %s", backups[0].Path, recent)
	}
	if backups[1].Path != old {
		t.Errorf("second backup = %s, want oldest %s", backups[1].Path, old)
	}
	if backups[0].Size != 2 {
		t.Errorf("Size = %d, want 2", backups[0].Size)
	}
}

func TestFindEmptyDirectory(t *testing.T) {
	backups, err := Find(t.TempDir())
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("found %d backups, want 0", len(backups))
	}
}

func TestFindMissingDirectory(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFindRejectsFilePath(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if _, err := Find(file); err == nil {
		t.Error("expected error for non-directory path")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024 * 1024, "1.0 MB"},
		{5*1024*1024 + 300*1024, "5.3 MB"},
		{2 * 1024 * 1024 * 1024, "2.0 GB"},
	}

	for _, tt := range tests {
		if got := FormatSize(tt.bytes); got != tt.want {
			t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
