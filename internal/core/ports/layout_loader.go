package ports

import "go.trai.ch/devbuild/internal/core/domain"

// LayoutLoader defines the interface for loading the workspace layout.
//
//go:generate mockgen -source=layout_loader.go -destination=mocks/mock_layout_loader.go -package=mocks
type LayoutLoader interface {
	// Load discovers the workspace from cwd and returns its layout.
	// Without a layout file, the default layout rooted at cwd is returned.
	Load(cwd string) (*domain.Layout, error)
}
