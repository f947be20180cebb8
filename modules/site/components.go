package site

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// emptyComponent renders nothing. Remove patches only need a selector.
var emptyComponent = templ.ComponentFunc(func(context.Context, io.Writer) error { return nil })
