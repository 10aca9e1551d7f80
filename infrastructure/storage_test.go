package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"resume.pdf", "resume.pdf"},
		{"Jane Doe CV.pdf", "Jane_Doe_CV.pdf"},
		{"../../etc/passwd", "passwd"},
		{"über-cv.docx", "_ber-cv.docx"},
		{"", "document"},
		{".", "document"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.input), "input %q", tt.input)
	}
}
