package markdown

import (
	"bytes"

	"gopkg.in/yaml.v3"
)

// SplitFrontmatter separates a leading YAML frontmatter block from the
// markdown body:
//
//	---
//	title: Meeting notes
//	---
//	# Markdown content here
//
// ok is false when the document has no well-formed frontmatter; callers
// then treat the whole input as markdown.
func SplitFrontmatter(content []byte) (map[string]interface{}, string, bool) {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, "", false
	}

	lines := bytes.Split(content, []byte("\n"))

	// Skip the opening "---" line
	closingDelim := 0
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			closingDelim = i
			break
		}
	}
	if closingDelim == 0 {
		return nil, "", false
	}

	var metadata map[string]interface{}
	if err := yaml.Unmarshal(bytes.Join(lines[1:closingDelim], []byte("\n")), &metadata); err != nil {
		return nil, "", false
	}

	return metadata, string(bytes.Join(lines[closingDelim+1:], []byte("\n"))), true
}
