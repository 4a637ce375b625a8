package build

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zeebo/blake3"
)

// ErrCorruptCache is returned when the cache file cannot be decoded.
var ErrCorruptCache = errors.New("corrupt build cache")

// compressionThreshold is the encoded size above which the cache is gzipped.
const compressionThreshold = 1024

const (
	markerPlain byte = 0
	markerGzip  byte = 1
)

// Cache remembers the hash of every page written by the previous build.
type Cache struct {
	BuildID string            `msgpack:"build_id"`
	Built   time.Time         `msgpack:"built"`
	Pages   map[string]string `msgpack:"pages"`
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{Pages: make(map[string]string)}
}

// Hash returns the hex blake3 digest of data.
func Hash(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Unchanged reports whether page had the same hash in the previous build.
func (c *Cache) Unchanged(page, hash string) bool {
	prev, ok := c.Pages[page]
	return ok && prev == hash
}

// LoadCache reads the cache at path. A missing file yields an empty cache.
func LoadCache(path string) (*Cache, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewCache(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read build cache: %w", err)
	}

	c := NewCache()
	if err := decodeCache(data, c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptCache, err)
	}
	if c.Pages == nil {
		c.Pages = make(map[string]string)
	}
	return c, nil
}

// Save writes the cache to path, creating parent directories.
func (c *Cache) Save(path string) error {
	data, err := encodeCache(c)
	if err != nil {
		return fmt.Errorf("failed to encode build cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// encodeCache serializes with MessagePack and prefixes a marker byte telling
// whether the payload is gzipped.
func encodeCache(c *Cache) ([]byte, error) {
	data, err := msgpack.Marshal(c)
	if err != nil {
		return nil, err
	}

	if len(data) >= compressionThreshold {
		compressed, err := compress(data)
		if err == nil {
			return append([]byte{markerGzip}, compressed...), nil
		}
	}
	return append([]byte{markerPlain}, data...), nil
}

func decodeCache(data []byte, c *Cache) error {
	if len(data) == 0 {
		return errors.New("empty data")
	}

	marker, payload := data[0], data[1:]
	switch marker {
	case markerPlain:
	case markerGzip:
		decompressed, err := decompress(payload)
		if err != nil {
			return err
		}
		payload = decompressed
	default:
		return fmt.Errorf("unknown marker %d", marker)
	}

	return msgpack.Unmarshal(payload, c)
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)

	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gz.Close()

	return io.ReadAll(gz)
}
