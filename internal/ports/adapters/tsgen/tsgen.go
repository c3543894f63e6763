package tsgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tkrajina/typescriptify-golang-structs/typescriptify"

	"github.com/forPelevin/segview/internal/routes"
	"github.com/forPelevin/segview/internal/types"
)

const FileName = "segment-types.ts"

// os.Stdout is swapped while converting; one conversion at a time.
var convertMu sync.Mutex

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// WriteTypes writes the TypeScript declarations for the viewer front end and
// returns the file path.
func (a *Adapter) WriteTypes(ctx context.Context, outDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ts, err := Render()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}
	p := filepath.Join(outDir, FileName)
	if err := os.WriteFile(p, []byte(ts), 0o644); err != nil {
		return "", fmt.Errorf("write ts file: %w", err)
	}
	return p, nil
}

// Render returns the generated TypeScript source.
func Render() (string, error) {
	converter := typescriptify.New()
	converter.CreateInterface = true
	converter.Add(types.Segment{})

	ts, err := convertQuietly(converter)
	if err != nil {
		return "", fmt.Errorf("convert to ts: %w", err)
	}

	var b strings.Builder
	b.WriteString("// Code generated by segview types. DO NOT EDIT.\n\n")
	b.WriteString(strings.TrimSpace(ts))
	b.WriteString("\n\n")
	b.WriteString(extraCode())
	return b.String(), nil
}

func convertQuietly(c *typescriptify.TypeScriptify) (string, error) {
	convertMu.Lock()
	defer convertMu.Unlock()

	// typescriptify logs to stdout, which is where CLI output goes.
	oldStdout := os.Stdout
	null, err := os.Open(os.DevNull)
	if err == nil {
		os.Stdout = null
		defer func() {
			os.Stdout = oldStdout
			null.Close()
		}()
	}
	return c.Convert(map[string]string{})
}

func extraCode() string {
	var b strings.Builder
	b.WriteString("export type CompactSegment = [name: string, videoId: string, startTime: number, endTime: number];\n\n")
	b.WriteString("export const routeNames = {\n")
	seen := map[string]bool{}
	for _, r := range routes.Table() {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		fmt.Fprintf(&b, "  %s: %q,\n", r.Name, r.Name)
	}
	b.WriteString("} as const;\n\n")
	fmt.Fprintf(&b, "export const headerParam = %q;\n", routes.HeaderParam)
	return b.String()
}
