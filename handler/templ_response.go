package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component replaces.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch builds a TemplPatch for TemplMulti.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	status  int
	full    templ.Component
	patches []TemplPatch
	signals map[string]any
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		if len(t.signals) > 0 {
			data, err := json.Marshal(t.signals)
			if err != nil {
				return fmt.Errorf("marshal signals: %w", err)
			}
			return sse.PatchSignals(data)
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders component as HTML, or as a single element patch for
// datastar requests.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplStatus is Templ with an explicit status for plain HTML responses.
// Event streams always answer 200.
func TemplStatus(status int, component templ.Component) Response {
	return templResponse{status: status, patches: []TemplPatch{Patch(component)}}
}

// TemplPartial patches partial for datastar requests and renders full for
// everything else.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{full: full, patches: []TemplPatch{Patch(partial, opts...)}}
}

// TemplMulti sends several patches in one stream. Plain requests get the
// components concatenated in order.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}

// WithSignals returns resp followed by a signals patch. It only applies to
// responses built by this package's Templ constructors; others are
// returned unchanged.
func WithSignals(resp Response, signals map[string]any) Response {
	t, ok := resp.(templResponse)
	if !ok {
		return resp
	}
	t.signals = signals
	return t
}
