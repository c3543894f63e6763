package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/forPelevin/segview/internal/types"
)

const ext = ".json"

var ErrNotFound = errors.New("collection not found")

// Adapter keeps one JSON file of compact segments per collection.
type Adapter struct {
	dir string
}

func New(dir string) *Adapter {
	if dir == "" {
		dir = ".segview"
	}
	return &Adapter{dir: dir}
}

func (a *Adapter) Save(ctx context.Context, c types.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := Key(c.Name)
	if key == "" {
		return fmt.Errorf("collection name %q has no usable characters", c.Name)
	}
	if c.Segments == nil {
		c.Segments = []types.Compact{}
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return err
	}
	// Readers never see a partially written file.
	tmp, err := os.CreateTemp(a.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), a.path(key))
}

func (a *Adapter) Load(ctx context.Context, name string) (types.Collection, error) {
	if err := ctx.Err(); err != nil {
		return types.Collection{}, err
	}
	key := Key(name)
	if key == "" {
		return types.Collection{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	b, err := os.ReadFile(a.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return types.Collection{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return types.Collection{}, err
	}
	var c types.Collection
	if err := json.Unmarshal(b, &c); err != nil {
		return types.Collection{}, fmt.Errorf("parse collection %q: %w", name, err)
	}
	return c, nil
}

func (a *Adapter) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(a.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ext {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ext))
	}
	sort.Strings(out)
	return out, nil
}

func (a *Adapter) path(key string) string {
	return filepath.Join(a.dir, key+ext)
}

// Key turns a collection name into its file stem: lowercase letters and
// digits, every other run of characters collapsed to one dash.
func Key(name string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
