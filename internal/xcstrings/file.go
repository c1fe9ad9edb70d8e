package xcstrings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File binds a parsed catalog to its on-disk location.
type File struct {
	path    string
	catalog *Catalog
}

// Load reads and parses a .xcstrings catalog.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("invalid strings catalog %s: %w", path, err)
	}

	return &File{path: path, catalog: &catalog}, nil
}

// Save writes the catalog back to its original path. Output is
// 2-space-indented JSON with object keys sorted, matching Xcode.
func (f *File) Save() error {
	data, err := json.MarshalIndent(f.catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.path, err)
	}
	return nil
}

// CreateBackup copies the file as it exists on disk to a sibling
// <name>.xcstrings.backup_YYYYMMDD_HHMMSS file and returns the path.
func (f *File) CreateBackup() (string, error) {
	timestamp := time.Now().UTC().Format("20060102_150405")
	ext := filepath.Ext(f.path)
	backupPath := strings.TrimSuffix(f.path, ext) + ".xcstrings.backup_" + timestamp

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup %s: %w", backupPath, err)
	}

	return backupPath, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) SourceLanguage() string {
	return f.catalog.SourceLanguage
}

// Detect walks from startDir toward the filesystem root looking for a
// strings catalog in the places Xcode projects usually keep one.
func Detect(startDir string) (string, error) {
	dir := startDir
	for {
		candidates := []string{
			filepath.Join(dir, "Localizable.xcstrings"),
			filepath.Join(dir, "InfoPlist.xcstrings"),
			filepath.Join(dir, "Shared", "Resources", "Localizable.xcstrings"),
		}
		for _, candidate := range candidates {
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf(
				"no .xcstrings file found from %s upward",
				startDir,
			)
		}
		dir = parent
	}
}
