package bundle

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputName(t *testing.T) {
	if got := OutputName("Overview"); got != "Overview.bundle.js" {
		t.Errorf("OutputName = %q", got)
	}
}

func TestModeFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Mode
	}{
		{"unset", nil, Development},
		{"node production", map[string]string{"NODE_ENV": "production"}, Production},
		{"node development", map[string]string{"NODE_ENV": "development"}, Development},
		{"own variable wins", map[string]string{"POCKETMESH_ENV": "development", "NODE_ENV": "production"}, Development},
		{"case insensitive", map[string]string{"POCKETMESH_ENV": "Production"}, Production},
		{"anything else", map[string]string{"NODE_ENV": "staging"}, Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := ModeFromEnv(getenv); got != tt.want {
				t.Errorf("ModeFromEnv = %s, want %s", got, tt.want)
			}
		})
	}
}

func writeScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmit(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "lib")

	script := "/* Overview example */\nconsole.log('overview');\n"
	cfg := Config{
		Entries: []Entry{
			{Name: "TypicalUsage", Script: writeScript(t, src, "TypicalUsage.js", "console.log('typical');\n")},
			{Name: "Overview", Script: writeScript(t, src, "Overview.js", script)},
		},
		OutputDir: out,
		Mode:      Development,
	}

	manifest, err := Emit(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}

	names := manifest.Names()
	if len(names) != 2 || names[0] != "Overview" || names[1] != "TypicalUsage" {
		t.Errorf("Names = %v", names)
	}

	path, err := manifest.Lookup("Overview")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(out, "Overview.bundle.js") {
		t.Errorf("Lookup = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != script {
		t.Errorf("development bundle changed: %q", data)
	}

	if _, err := manifest.Lookup("Missing"); !errors.Is(err, ErrUnknownEntry) {
		t.Errorf("expected ErrUnknownEntry, got %v", err)
	}
}

func TestEmit_ProductionStripsBanner(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()

	cfg := Config{
		Entries:   []Entry{{Name: "Overview", Script: writeScript(t, src, "o.js", "/* banner\n * more */\nrun();\n")}},
		OutputDir: out,
		Mode:      Production,
	}
	if _, err := Emit(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(out, "Overview.bundle.js"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "run();\n" {
		t.Errorf("production bundle = %q", data)
	}
}

func TestEmit_Errors(t *testing.T) {
	out := t.TempDir()

	_, err := Emit(context.Background(), Config{Entries: []Entry{{Script: "x.js"}}, OutputDir: out})
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("expected ErrEmptyName, got %v", err)
	}

	_, err = Emit(context.Background(), Config{Entries: []Entry{{Name: "A", Script: filepath.Join(out, "missing.js")}}, OutputDir: out})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Emit(ctx, Config{Entries: []Entry{{Name: "A", Script: "a.js"}}, OutputDir: out}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestStripBanner(t *testing.T) {
	tests := []struct{ in, want string }{
		{"run();", "run();"},
		{"/* a */run();", "run();"},
		{"  \n/* a */\nrun();", "run();"},
		{"/* unterminated", "/* unterminated"},
		{"run(); /* trailing */", "run(); /* trailing */"},
	}
	for _, tt := range tests {
		if got := string(stripBanner([]byte(tt.in))); got != tt.want {
			t.Errorf("stripBanner(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
