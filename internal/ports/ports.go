package ports

import (
	"context"

	"github.com/forPelevin/segview/internal/types"
)

type SegmentStore interface {
	Save(ctx context.Context, c types.Collection) error
	Load(ctx context.Context, name string) (types.Collection, error)
	List(ctx context.Context) ([]string, error)
}

type TypeWriter interface {
	WriteTypes(ctx context.Context, outDir string) (string, error)
}
