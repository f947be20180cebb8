package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarRequestHeader is sent by the datastar client on every fetch.
	DataStarRequestHeader = "Datastar-Request"
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
)

const (
	PatchOuter   = datastar.ElementPatchModeOuter
	PatchInner   = datastar.ElementPatchModeInner
	PatchReplace = datastar.ElementPatchModeReplace
	PatchRemove  = datastar.ElementPatchModeRemove
	PatchAppend  = datastar.ElementPatchModeAppend
	PatchPrepend = datastar.ElementPatchModePrepend
	PatchBefore  = datastar.ElementPatchModeBefore
	PatchAfter   = datastar.ElementPatchModeAfter
)

// IsDataStar reports whether r came from the datastar client and expects an
// event stream back.
func IsDataStar(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.Method == http.MethodGet && r.URL.Query().Has(DataStarQueryParam)
}

// Redirect sends a datastar redirect event, or a plain HTTP redirect with
// code for other clients.
func Redirect(url string, code int) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).Redirect(url)
		}
		http.Redirect(w, r, url, code)
		return nil
	})
}
