package handler

import "net/http"

// Routes groups every handler the server exposes
type Routes struct {
	Workspace   *WorkspaceHandler
	Files       *FileHandler
	Images      *ImageHandler
	Markdown    *MarkdownHandler
	Preferences *PreferencesHandler
	Assets      *AssetHandler
	Health      *HealthHandler
}

// Register mounts all routes on mux (Go 1.22+ method patterns)
func (rt *Routes) Register(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /health", rt.Health.HealthCheck)

	// Workspace
	mux.HandleFunc("POST /api/workspace/scan", rt.Workspace.Scan)

	// Files
	mux.HandleFunc("POST /api/files/read", rt.Files.ReadText)
	mux.HandleFunc("POST /api/files/write", rt.Files.WriteText)
	mux.HandleFunc("POST /api/files/write-binary", rt.Files.WriteBinary)
	mux.HandleFunc("POST /api/files/copy", rt.Files.Copy)

	// Images
	mux.HandleFunc("POST /api/images/paste", rt.Images.Paste)
	mux.HandleFunc("POST /api/images/import", rt.Images.Import)
	mux.HandleFunc("GET /api/assets", rt.Assets.Serve)

	// Markdown
	mux.HandleFunc("POST /api/markdown/outline", rt.Markdown.Outline)
	mux.HandleFunc("POST /api/markdown/render", rt.Markdown.Render)
	mux.HandleFunc("POST /api/markdown/stats", rt.Markdown.Stats)
	mux.HandleFunc("POST /api/markdown/convert", rt.Markdown.Convert)

	// Preferences and recent files
	mux.HandleFunc("GET /api/preferences", rt.Preferences.GetPreferences)
	mux.HandleFunc("PATCH /api/preferences", rt.Preferences.UpdatePreferences)
	mux.HandleFunc("GET /api/recents", rt.Preferences.ListRecents)
	mux.HandleFunc("POST /api/recents", rt.Preferences.AddRecent)
}
