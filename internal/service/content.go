package service

import (
	"bytes"
	stdhtml "html"
	"strings"
	"unicode/utf8"

	"github.com/insightjournal/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	contentSanitizer = bluemonday.UGCPolicy()
	textOnly         = bluemonday.StrictPolicy()
)

// renderContent 将投稿正文规范化为可安全发布的 HTML。
// Markdown is rendered first; everything passes through the UGC sanitizer.
func renderContent(raw, format string) (string, error) {
	if format == db.FormatMarkdown {
		var buf bytes.Buffer
		if err := markdownEngine.Convert([]byte(raw), &buf); err != nil {
			return "", err
		}
		raw = buf.String()
	}
	return contentSanitizer.Sanitize(raw), nil
}

// plainTextLength counts the visible runes of an HTML fragment.
func plainTextLength(content string) int {
	stripped := stdhtml.UnescapeString(textOnly.Sanitize(content))
	return utf8.RuneCountInString(strings.TrimSpace(stripped))
}

// normalizeTags trims entries and drops empties. The result is never nil so
// an empty list round-trips as an empty sequence.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
