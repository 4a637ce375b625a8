// Package bundle emits the example entry scripts under the [name].bundle.js
// naming pattern and decides between production and development mode.
package bundle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Suffix is appended to every entry name to form its output file.
const Suffix = ".bundle.js"

// Mode selects how bundles are emitted.
type Mode string

const (
	Development Mode = "development"
	Production  Mode = "production"
)

// EnvVars are consulted in order by ModeFromEnv.
var EnvVars = []string{"POCKETMESH_ENV", "NODE_ENV"}

var (
	ErrUnknownEntry = errors.New("unknown bundle entry")
	ErrEmptyName    = errors.New("bundle entry without a name")
)

// ModeFromEnv returns Production when the first set variable of EnvVars
// equals "production", Development otherwise.
func ModeFromEnv(getenv func(string) string) Mode {
	for _, key := range EnvVars {
		if v := getenv(key); v != "" {
			if strings.EqualFold(v, string(Production)) {
				return Production
			}
			return Development
		}
	}
	return Development
}

// Entry is a named script.
type Entry struct {
	Name   string
	Script string
}

// OutputName is the file an entry is written to.
func OutputName(name string) string {
	return name + Suffix
}

// Config describes one emission.
type Config struct {
	Entries   []Entry
	OutputDir string
	Mode      Mode
}

// Manifest maps entry names to the files written for them.
type Manifest map[string]string

// Names returns the entry names in sorted order.
func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the output path of the named entry.
func (m Manifest) Lookup(name string) (string, error) {
	path, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEntry, name)
	}
	return path, nil
}

// Emit copies every entry script to OutputDir/[name].bundle.js in name
// order. In production mode a leading banner comment is dropped.
func Emit(ctx context.Context, cfg Config) (Manifest, error) {
	entries := make([]Entry, len(cfg.Entries))
	copy(entries, cfg.Entries)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bundle dir: %w", err)
	}

	manifest := make(Manifest, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.Name == "" {
			return nil, ErrEmptyName
		}
		out := filepath.Join(cfg.OutputDir, OutputName(e.Name))
		if err := emitOne(e.Script, out, cfg.Mode); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", e.Name, err)
		}
		manifest[e.Name] = out
	}
	return manifest, nil
}

func emitOne(src, dst string, mode Mode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	if mode == Production {
		data = stripBanner(data)
	}
	return os.WriteFile(dst, data, 0o644)
}

// stripBanner removes a leading /* ... */ comment.
func stripBanner(data []byte) []byte {
	s := string(data)
	trimmed := strings.TrimLeft(s, " \t\r\n")
	if !strings.HasPrefix(trimmed, "/*") {
		return data
	}
	end := strings.Index(trimmed, "*/")
	if end < 0 {
		return data
	}
	return []byte(strings.TrimLeft(trimmed[end+2:], "\r\n"))
}
