package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextUnsupportedType(t *testing.T) {
	_, err := ExtractText([]byte("plain text"), "text/plain")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"zero-byte buffer", []byte{}},
		{"nil buffer", nil},
		{"not a pdf", []byte("this is not a pdf document")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractText(tt.data, MimePDF)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrExtractionFailed)
		})
	}
}

func TestExtractTextCorruptDocx(t *testing.T) {
	_, err := ExtractText([]byte("not a zip archive"), MimeDocx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExtractionFailed)
}

func TestSupportedMimeType(t *testing.T) {
	assert.True(t, SupportedMimeType(MimePDF))
	assert.True(t, SupportedMimeType(MimeDocx))
	assert.False(t, SupportedMimeType("text/html"))
	assert.False(t, SupportedMimeType(""))
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "paragraphs become lines",
			input: `<w:p><w:r><w:t>Hello</w:t></w:r></w:p><w:p><w:r><w:t>World</w:t></w:r></w:p>`,
			want:  "Hello\nWorld",
		},
		{
			name:  "entities unescaped",
			input: `<w:p><w:r><w:t>R&amp;D engineer &lt;senior&gt;</w:t></w:r></w:p>`,
			want:  "R&D engineer <senior>",
		},
		{
			name:  "empty body",
			input: "",
			want:  "",
		},
		{
			name:  "markup only",
			input: `<w:p></w:p><w:p></w:p>`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripMarkup(tt.input))
		})
	}
}
