package workspace

import (
	"context"

	"mdworkspace/internal/domain/models/workspace"
)

// ScannerService builds the markdown tree of a workspace directory
type ScannerService interface {
	// ScanWorkspace walks root and returns the pruned, sorted markdown tree.
	// Fails only when root is not an existing directory.
	ScanWorkspace(ctx context.Context, root string) (*workspace.Folder, error)
}

// ScanWorkspaceRequest represents a workspace scan request
type ScanWorkspaceRequest struct {
	Root string `json:"root"`
}
