package cv

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText extracts plain text from raw file bytes with a declared
// extension using pure-Go parsers. Any failure yields an empty string;
// extraction problems never surface as request errors.
func ExtractText(ext string, data []byte) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDFText(data)
	case ".docx":
		return extractDocxText(data)
	case ".txt":
		return strings.TrimSpace(string(data))
	}
	return ""
}

func extractPDFText(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
	}
	return strings.TrimSpace(b.String())
}

func extractDocxText(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()
	return strings.TrimSpace(stripDocxMarkup(doc.Editable().GetContent()))
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

// stripDocxMarkup reduces raw document.xml content to plain text:
// paragraph ends become newlines, every other tag is dropped and XML
// entities are unescaped.
func stripDocxMarkup(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	return html.UnescapeString(content)
}
