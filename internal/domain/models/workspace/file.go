package workspace

// TextFile is the content of a text file read from disk
type TextFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// SavedImage describes an image stored next to a markdown document.
// Rel is the path to embed in markdown, relative to the document's folder.
type SavedImage struct {
	Rel string `json:"rel"`
	Abs string `json:"abs"`
	Alt string `json:"alt"`
}
