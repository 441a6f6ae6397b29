package markdown

// OutlineItem is one heading of a markdown document.
// Line is 1-based; Offset is the byte offset of the heading's first line.
type OutlineItem struct {
	Key    string `json:"key"`
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Line   int    `json:"line"`
	Offset int    `json:"offset"`
}

// Outline is the heading list of a document plus the heading the cursor is in
type Outline struct {
	Items     []OutlineItem `json:"items"`
	ActiveKey *string       `json:"active_key"`
}

// Stats backs the editor status bar
type Stats struct {
	Lines      int    `json:"lines"`
	Characters int    `json:"characters"`
	Words      int    `json:"words"`
	Title      string `json:"title,omitempty"`
}

// Rendered is preview HTML for a markdown document
type Rendered struct {
	HTML string `json:"html"`
}

// Converted is markdown produced from another format
type Converted struct {
	Markdown string `json:"markdown"`
}
