package workspace

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"mdworkspace/internal/domain"
	models "mdworkspace/internal/domain/models/workspace"
	wsSvc "mdworkspace/internal/domain/services/workspace"
)

// markdownExt is matched case-insensitively
const markdownExt = ".md"

// DirLister is the filesystem surface the scanner reads from.
// ReadDir may return the entries it managed to list together with an error.
type DirLister interface {
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}

// OSLister reads the local filesystem
type OSLister struct{}

func (OSLister) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }
func (OSLister) Stat(name string) (fs.FileInfo, error)      { return os.Stat(name) }

// scannerService implements the ScannerService interface
type scannerService struct {
	lister DirLister
	logger *slog.Logger
}

// NewScannerService creates a new workspace scanner. A nil lister reads the
// local filesystem.
func NewScannerService(lister DirLister, logger *slog.Logger) wsSvc.ScannerService {
	if lister == nil {
		lister = OSLister{}
	}
	return &scannerService{
		lister: lister,
		logger: logger,
	}
}

// ScanWorkspace builds the markdown tree rooted at root.
// Only a root that is not an existing directory fails the scan; unreadable
// subdirectories and entries of unknown type are skipped.
func (s *scannerService) ScanWorkspace(ctx context.Context, root string) (*models.Folder, error) {
	info, err := s.lister.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, &domain.NotADirectoryError{Path: root}
	}

	tree := &models.Folder{
		Name:     rootName(root),
		Path:     root,
		Children: s.scanDir(ctx, root),
	}

	stats := models.CountNodes(tree)
	s.logger.InfoContext(ctx, "workspace scanned",
		"root", root,
		"folder_count", stats.Folders,
		"file_count", stats.Files,
	)

	return tree, nil
}

// scanDir returns the sorted markdown children of dir. Directories without
// markdown beneath them are pruned here, after their own children are known.
func (s *scannerService) scanDir(ctx context.Context, dir string) []models.TreeNode {
	entries, err := s.lister.ReadDir(dir)
	if err != nil {
		// Keep whatever was listed before the failure
		s.logger.DebugContext(ctx, "directory listing failed",
			"dir", dir,
			"listed", len(entries),
			"error", err,
		)
	}

	nodes := make([]models.TreeNode, 0, len(entries))
	for _, entry := range entries {
		typ, ok := entryType(entry)
		if !ok {
			s.logger.DebugContext(ctx, "skipping entry with unknown type",
				"dir", dir,
				"name", entry.Name(),
			)
			continue
		}

		name := entry.Name()
		path := childPath(dir, name)

		switch {
		case typ.IsDir():
			children := s.scanDir(ctx, path)
			if len(children) == 0 {
				continue
			}
			nodes = append(nodes, &models.Folder{
				Name:     name,
				Path:     path,
				Children: children,
			})
		case typ.IsRegular():
			if !isMarkdownName(name) {
				continue
			}
			nodes = append(nodes, &models.File{
				Name: name,
				Path: path,
			})
		}
		// symlinks, devices, pipes and sockets are never followed
	}

	slices.SortFunc(nodes, compareNodes)
	return nodes
}

// entryType resolves the type bits of a listed entry. The listing may leave
// the type unknown (ModeIrregular), in which case the entry is looked up.
func entryType(entry fs.DirEntry) (fs.FileMode, bool) {
	typ := entry.Type()
	if typ&fs.ModeIrregular == 0 {
		return typ, true
	}
	info, err := entry.Info()
	if err != nil {
		return 0, false
	}
	return info.Mode().Type(), true
}

// childPath appends name to dir without cleaning, so children keep the
// form of the root the caller passed ("./ws/a.md", not "ws/a.md").
func childPath(dir, name string) string {
	if dir != "" && os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

// isMarkdownName reports whether name has a .md extension after a
// non-empty stem, so a bare ".md" dotfile does not count.
func isMarkdownName(name string) bool {
	ext := filepath.Ext(name)
	return len(name) > len(ext) && strings.EqualFold(ext, markdownExt)
}

// compareNodes orders folders before files, then by lowercase name.
// Exact name breaks ties so repeated scans agree.
func compareNodes(a, b models.TreeNode) int {
	if a.Kind() != b.Kind() {
		if a.Kind() == models.KindFolder {
			return -1
		}
		return 1
	}
	if c := strings.Compare(strings.ToLower(a.NodeName()), strings.ToLower(b.NodeName())); c != 0 {
		return c
	}
	return strings.Compare(a.NodeName(), b.NodeName())
}

// rootName is the last path segment of root, or root itself when there is
// none (filesystem root, ".", "..").
func rootName(root string) string {
	clean := filepath.Clean(root)
	volume := filepath.VolumeName(clean)
	if clean == volume || clean == volume+string(filepath.Separator) {
		return root
	}
	base := filepath.Base(clean)
	if base == "." || base == ".." {
		return root
	}
	return base
}
