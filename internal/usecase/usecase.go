package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/forPelevin/segview/internal/domain/segments"
	"github.com/forPelevin/segview/internal/logger"
	"github.com/forPelevin/segview/internal/ports"
	"github.com/forPelevin/segview/internal/routes"
	"github.com/forPelevin/segview/internal/types"
)

// SegmentsQuery is the viewer query parameter carrying the compact segments.
const SegmentsQuery = "segments"

type Deps struct {
	Store ports.SegmentStore
	Types ports.TypeWriter
}

type Options struct {
	BaseURL string
	// Strict rejects segments that break 0 <= startTime <= endTime before encoding.
	Strict bool
	Log    logger.Logger
}

type Usecase struct {
	d    Deps
	opts Options
}

func New(d Deps, opts Options) Usecase {
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	opts.BaseURL = routes.NormalizeBaseURL(opts.BaseURL)
	return Usecase{d: d, opts: opts}
}

func (u Usecase) Compact(segs []types.Segment) ([]types.Compact, error) {
	if u.opts.Strict {
		if err := segments.Validate(segs); err != nil {
			return nil, err
		}
	}
	return segments.ToCompact(segs)
}

func (u Usecase) Expand(compact []types.Compact) ([]types.Segment, error) {
	segs, err := segments.FromCompact(compact)
	if err != nil {
		return nil, err
	}
	if u.opts.Strict {
		if err := segments.Validate(segs); err != nil {
			return nil, err
		}
	}
	return segs, nil
}

type ShareInput struct {
	Segments []types.Segment
	Header   string
}

// Share builds a viewer link carrying the segments and an optional header.
func (u Usecase) Share(in ShareInput) (string, error) {
	compact, err := u.Compact(in.Segments)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(compact)
	if err != nil {
		return "", fmt.Errorf("marshal compact segments: %w", err)
	}

	params := map[string]string{}
	if in.Header != "" {
		params[routes.HeaderParam] = segments.EncodeQueryParam(in.Header)
	}
	p, err := routes.Path(routes.ViewerInterface, params)
	if err != nil {
		return "", err
	}
	q := url.Values{}
	q.Set(SegmentsQuery, segments.EncodeQueryParam(string(b)))
	link := u.opts.BaseURL + p + "?" + q.Encode()
	u.opts.Log.Infof("share link for %d segments (%d bytes)", len(compact), len(link))
	return link, nil
}

// Open resolves a link or path to the view it shows. A header that does not
// decode is dropped; broken segments fail the call.
func (u Usecase) Open(link string) (types.View, error) {
	l, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return types.View{}, fmt.Errorf("parse link: %w", err)
	}
	p := l.EscapedPath()
	if base, err := url.Parse(u.opts.BaseURL); err == nil && l.IsAbs() && strings.EqualFold(l.Host, base.Host) {
		// Links built by Share sit below the base URL path.
		p = strings.TrimPrefix(p, strings.TrimRight(base.EscapedPath(), "/"))
	}
	m, err := routes.Resolve(p)
	if err != nil {
		return types.View{}, err
	}
	v := types.View{Name: m.Route.Name, Path: m.Route.Path}
	if m.Route.Name != routes.ViewerInterface {
		return v, nil
	}

	if raw := m.Params[routes.HeaderParam]; raw != "" {
		hdr, err := segments.DecodeQueryParam(raw)
		if err != nil {
			u.opts.Log.Warnf("ignoring header: %v", err)
		} else {
			v.Header = hdr
		}
	}

	raw := l.Query().Get(SegmentsQuery)
	if raw == "" {
		return v, nil
	}
	s, err := segments.DecodeQueryParam(raw)
	if err != nil {
		return types.View{}, fmt.Errorf("segments param: %w", err)
	}
	var compact []types.Compact
	if err := json.Unmarshal([]byte(s), &compact); err != nil {
		return types.View{}, fmt.Errorf("segments param: parse compact json: %w", err)
	}
	segs, err := u.Expand(compact)
	if err != nil {
		return types.View{}, fmt.Errorf("segments param: %w", err)
	}
	v.Segments = segs
	return v, nil
}

// Save stores segments in compact form under name.
func (u Usecase) Save(ctx context.Context, name string, segs []types.Segment) error {
	if u.d.Store == nil {
		return errors.New("no segment store configured")
	}
	compact, err := u.Compact(segs)
	if err != nil {
		return err
	}
	if err := u.d.Store.Save(ctx, types.Collection{Name: name, Segments: compact}); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	u.opts.Log.Infof("saved %d segments to %q", len(compact), name)
	return nil
}

func (u Usecase) Load(ctx context.Context, name string) ([]types.Segment, error) {
	if u.d.Store == nil {
		return nil, errors.New("no segment store configured")
	}
	c, err := u.d.Store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	segs, err := u.Expand(c.Segments)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return segs, nil
}

func (u Usecase) List(ctx context.Context) ([]string, error) {
	if u.d.Store == nil {
		return nil, errors.New("no segment store configured")
	}
	return u.d.Store.List(ctx)
}

func (u Usecase) GenerateTypes(ctx context.Context, outDir string) (string, error) {
	if u.d.Types == nil {
		return "", errors.New("no type writer configured")
	}
	p, err := u.d.Types.WriteTypes(ctx, outDir)
	if err != nil {
		return "", err
	}
	u.opts.Log.Infof("types written: %s", p)
	return p, nil
}
