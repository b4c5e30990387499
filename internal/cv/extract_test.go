package cv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	assert.True(t, AllowedFile("resume.pdf"))
	assert.True(t, AllowedFile("Resume.DOCX"))
	assert.True(t, AllowedFile("notes.txt"))
	assert.False(t, AllowedFile("resume.exe"))
	assert.False(t, AllowedFile("resume"))
}

func TestExtractText_Txt(t *testing.T) {
	assert.Equal(t, "hello", ExtractText(".txt", []byte("  hello \n")))
}

func TestExtractText_FailuresYieldEmptyString(t *testing.T) {
	// extraction never errors out of the adapter; bad bytes mean no text
	assert.Empty(t, ExtractText(".pdf", []byte("not a pdf")))
	assert.Empty(t, ExtractText(".docx", []byte("not a docx")))
	assert.Empty(t, ExtractText(".odt", []byte("unsupported")))
}

func TestStripDocxMarkup(t *testing.T) {
	raw := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Skills: Go &amp; Python</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Education: BSc</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got := stripDocxMarkup(raw)
	assert.Equal(t, "Skills: Go & Python\nEducation: BSc\n", got)
	assert.NotContains(t, got, "<")
}

func TestParseUpload_RejectsUnsupportedType(t *testing.T) {
	p := NewParser(t.TempDir())
	_, err := p.ParseUpload("malware.exe", strings.NewReader("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestParseUpload_PlainText(t *testing.T) {
	p := NewParser(t.TempDir())
	text, err := p.ParseUpload("cv.txt", strings.NewReader("Skills: Go, Python\n"))
	require.NoError(t, err)
	assert.Equal(t, "Skills: Go, Python", text)
}
