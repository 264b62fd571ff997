package mock

import (
	"context"

	"github.com/eranif/lexilla"
)

// Compile-time interface verification.
var _ lexilla.Viewer = (*Viewer)(nil)

// Viewer is a mock implementation of lexilla.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, text string) error
}

func (v *Viewer) View(ctx context.Context, text string) error {
	return v.ViewFn(ctx, text)
}
