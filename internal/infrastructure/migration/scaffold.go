package migration

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FilePair is the up/down SQL pair golang-migrate expects for one version.
type FilePair struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// Scaffold writes an empty up/down migration pair into dir. The version is
// the current timestamp in YYYYMMDDHHMMSS form so files sort in creation
// order.
func Scaffold(dir, name, description string) (*FilePair, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}

	now := time.Now()
	version := now.Format("20060102150405")
	base := version + "_" + slug(name)

	pair := &FilePair{
		Version:  version,
		Name:     name,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}

	up := stubSQL(name, description, now, false)
	down := stubSQL(name, description, now, true)

	if err := os.WriteFile(pair.UpPath, []byte(up), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", pair.UpPath, err)
	}
	if err := os.WriteFile(pair.DownPath, []byte(down), 0o644); err != nil {
		// Half a pair confuses golang-migrate, remove the up file too.
		_ = os.Remove(pair.UpPath)
		return nil, fmt.Errorf("write %s: %w", pair.DownPath, err)
	}
	return pair, nil
}

func stubSQL(name, description string, createdAt time.Time, rollback bool) string {
	var b strings.Builder
	if rollback {
		fmt.Fprintf(&b, "-- %s (rollback)\n", name)
	} else {
		fmt.Fprintf(&b, "-- %s\n", name)
	}
	fmt.Fprintf(&b, "-- created %s\n", createdAt.Format(time.RFC3339))
	if description != "" {
		fmt.Fprintf(&b, "-- %s\n", description)
	}
	b.WriteString("\n")
	return b.String()
}

// slug lowercases a migration name and collapses everything that is not a
// letter or digit into single underscores.
func slug(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, name)
	return strings.Join(strings.Fields(mapped), "_")
}

// List returns the base names of the migration pairs in dir, in version
// order. A missing directory is an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read migrations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}
	return names, nil
}
