package markdown

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	models "mdworkspace/internal/domain/models/markdown"
	mdSvc "mdworkspace/internal/domain/services/markdown"
)

// latinWord matches an ASCII word with at most one apostrophe inside ("it's")
var latinWord = regexp.MustCompile(`[A-Za-z0-9]+(?:'[A-Za-z0-9]+)?`)

type contentAnalyzerService struct{}

// NewContentAnalyzer creates a new content analyzer service
func NewContentAnalyzer() mdSvc.ContentAnalyzer {
	return &contentAnalyzerService{}
}

// Stats counts lines, characters and words the way the editor status bar
// shows them, over the raw text, plus the frontmatter title when there is one
func (s *contentAnalyzerService) Stats(content string) *models.Stats {
	stats := &models.Stats{
		Lines:      strings.Count(content, "\n") + 1,
		Characters: utf8.RuneCountInString(content),
		Words:      countWords(content),
	}

	if meta, _, ok := SplitFrontmatter([]byte(content)); ok {
		if title, ok := meta["title"].(string); ok {
			stats.Title = strings.TrimSpace(title)
		}
	}

	return stats
}

// CountWords counts words in markdown text with markup stripped first
func (s *contentAnalyzerService) CountWords(content string) int {
	return countWords(s.CleanMarkdown(content))
}

// countWords counts every Han, Hiragana, Katakana or Hangul character as a
// word, plus each ASCII letter/digit run
func countWords(text string) int {
	cjk := 0
	for _, r := range text {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			cjk++
		}
	}
	return cjk + len(latinWord.FindAllStringIndex(text, -1))
}

// CleanMarkdown removes markdown syntax from text
func (s *contentAnalyzerService) CleanMarkdown(content string) string {
	text := removeCodeBlocks(content)

	// inline code, emphasis, strikethrough, highlight
	for _, marker := range []string{"`", "**", "*", "__", "_", "~~", "=="} {
		text = strings.ReplaceAll(text, marker, "")
	}

	text = strings.ReplaceAll(text, "#", "")

	lines := strings.Split(text, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			line = strings.TrimPrefix(line, "- ")
		} else if strings.HasPrefix(line, "+ ") {
			line = strings.TrimPrefix(line, "+ ")
		}
		// Numbered list markers (e.g., "1. ", "2. ")
		if len(line) > 2 && unicode.IsDigit(rune(line[0])) && line[1] == '.' {
			line = line[2:]
		}
		cleanedLines = append(cleanedLines, line)
	}
	text = strings.Join(cleanedLines, " ")

	text = strings.ReplaceAll(text, ">", "")
	text = strings.ReplaceAll(text, "---", "")

	return text
}

// removeCodeBlocks removes ```...``` code blocks from text
func removeCodeBlocks(text string) string {
	for {
		start := strings.Index(text, "```")
		if start == -1 {
			break
		}
		end := strings.Index(text[start+3:], "```")
		if end == -1 {
			break
		}
		text = text[:start] + text[start+end+6:]
	}
	return text
}
