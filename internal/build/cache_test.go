package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".build-cache")

	c := NewCache()
	c.BuildID = "b1"
	c.Built = time.Unix(1700000000, 0).UTC()
	c.Pages["index.html"] = Hash([]byte("<html></html>"))

	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadCache(path)
	if err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if loaded.BuildID != "b1" || !loaded.Built.Equal(c.Built) {
		t.Errorf("loaded %+v", loaded)
	}
	if !loaded.Unchanged("index.html", Hash([]byte("<html></html>"))) {
		t.Error("page should be unchanged")
	}
	if loaded.Unchanged("index.html", Hash([]byte("<html>x</html>"))) {
		t.Error("changed page reported unchanged")
	}
	if loaded.Unchanged("users.html", "") {
		t.Error("unknown page reported unchanged")
	}
}

func TestCache_LargeIsCompressed(t *testing.T) {
	c := NewCache()
	for i := 0; i < 200; i++ {
		c.Pages[fmt.Sprintf("page-%03d.html", i)] = Hash([]byte{byte(i)})
	}

	data, err := encodeCache(c)
	if err != nil {
		t.Fatal(err)
	}
	if data[0] != markerGzip {
		t.Errorf("marker = %d, want gzip", data[0])
	}

	decoded := NewCache()
	if err := decodeCache(data, decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded.Pages) != 200 {
		t.Errorf("decoded %d pages", len(decoded.Pages))
	}
}

func TestLoadCache_Missing(t *testing.T) {
	c, err := LoadCache(filepath.Join(t.TempDir(), "none"))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Pages) != 0 {
		t.Errorf("expected empty cache, got %v", c.Pages)
	}
}

func TestLoadCache_Corrupt(t *testing.T) {
	dir := t.TempDir()
	for name, data := range map[string][]byte{
		"empty":   {},
		"marker":  {9, 1, 2},
		"payload": {markerPlain, 0xc1},
		"gzip":    {markerGzip, 1, 2, 3},
	} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadCache(path); !errors.Is(err, ErrCorruptCache) {
			t.Errorf("%s: expected ErrCorruptCache, got %v", name, err)
		}
	}
}

func TestHash(t *testing.T) {
	a := Hash([]byte("a"))
	if len(a) != 64 {
		t.Errorf("hash length = %d", len(a))
	}
	if a != Hash([]byte("a")) || a == Hash([]byte("b")) {
		t.Error("hash is not a function of its input")
	}
}
