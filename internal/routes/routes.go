package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	SegmentSelector = "SegmentSelector"
	ViewerInterface = "ViewerInterface"

	// HeaderParam is the optional text parameter of the viewer.
	HeaderParam = "header"
)

var ErrNotFound = errors.New("no route matches path")

type Route struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

type Match struct {
	Route  Route
	Params map[string]string
}

// Order matters: Path picks the first route of a view whose params are all supplied.
var table = []Route{
	{Path: "/", Name: SegmentSelector},
	{Path: "/viewer/{header}", Name: ViewerInterface},
	{Path: "/viewer", Name: ViewerInterface},
}

// Table returns a copy of the route table.
func Table() []Route {
	out := make([]Route, len(table))
	copy(out, table)
	return out
}

// Resolve matches an URL path against the table. A trailing slash is ignored.
func Resolve(path string) (Match, error) {
	got := split(path)
	for _, r := range table {
		want := split(r.Path)
		if len(want) != len(got) {
			continue
		}
		params := map[string]string{}
		ok := true
		for i, w := range want {
			if name, isParam := paramName(w); isParam {
				v, err := url.PathUnescape(got[i])
				if err != nil || v == "" {
					ok = false
					break
				}
				params[name] = v
				continue
			}
			if w != got[i] {
				ok = false
				break
			}
		}
		if ok {
			return Match{Route: r, Params: params}, nil
		}
	}
	return Match{}, fmt.Errorf("%w: %q", ErrNotFound, path)
}

// Path builds the path of a view. Empty param values count as absent.
func Path(view string, params map[string]string) (string, error) {
	known := false
	for _, r := range table {
		if r.Name != view {
			continue
		}
		known = true
		parts := split(r.Path)
		filled := true
		for i, p := range parts {
			name, isParam := paramName(p)
			if !isParam {
				continue
			}
			v := params[name]
			if v == "" {
				filled = false
				break
			}
			parts[i] = url.PathEscape(v)
		}
		if filled {
			return "/" + strings.Join(parts, "/"), nil
		}
	}
	if !known {
		return "", fmt.Errorf("unknown view %q", view)
	}
	return "", fmt.Errorf("view %q: no route for params %v", view, params)
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func paramName(seg string) (string, bool) {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}
	return "", false
}
