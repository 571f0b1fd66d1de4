package surface

import (
	"context"

	"github.com/mattjoyce/launchpad/internal/display"
)

//go:generate mockgen -destination=mocks/mock_renderer.go -package=mocks github.com/mattjoyce/launchpad/internal/surface Renderer

// Renderer receives every frame a surface produces.
type Renderer interface {
	Render(ctx context.Context, frame display.Frame) error
}

// RenderFunc adapts a function to Renderer.
type RenderFunc func(ctx context.Context, frame display.Frame) error

func (f RenderFunc) Render(ctx context.Context, frame display.Frame) error {
	return f(ctx, frame)
}
