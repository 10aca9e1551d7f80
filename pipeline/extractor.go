package pipeline

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"
)

// Supported document MIME types.
const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// SupportedMimeType reports whether the declared content type can be
// extracted.
func SupportedMimeType(mimeType string) bool {
	return mimeType == MimePDF || mimeType == MimeDocx
}

// ExtractText converts raw document bytes into plain text according to the
// declared MIME type. A buffer that cannot be parsed as the declared type is
// an ErrExtractionFailed; there is no fallback.
func ExtractText(data []byte, mimeType string) (string, error) {
	switch mimeType {
	case MimePDF:
		return extractPDF(data)
	case MimeDocx:
		return extractDocx(data)
	default:
		return "", fmt.Errorf("%w: unsupported mime type %q", ErrExtractionFailed, mimeType)
	}
}

// extractPDF concatenates the text of every page in reading order.
func extractPDF(data []byte) (string, error) {
	pdfReader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: read pdf: %v", ErrExtractionFailed, err)
	}

	numPages, err := pdfReader.GetNumPages()
	if err != nil {
		return "", fmt.Errorf("%w: page count: %v", ErrExtractionFailed, err)
	}
	if numPages == 0 {
		return "", fmt.Errorf("%w: pdf has no pages", ErrExtractionFailed)
	}

	var builder strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := pdfReader.GetPage(i)
		if err != nil {
			return "", fmt.Errorf("%w: get page %d: %v", ErrExtractionFailed, i, err)
		}
		ex, err := extractor.New(page)
		if err != nil {
			return "", fmt.Errorf("%w: extractor page %d: %v", ErrExtractionFailed, i, err)
		}
		pageText, err := ex.ExtractText()
		if err != nil {
			return "", fmt.Errorf("%w: extract page %d: %v", ErrExtractionFailed, i, err)
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	return strings.TrimSpace(builder.String()), nil
}

// extractDocx reads the document body and strips the WordprocessingML markup,
// leaving trimmed plain text with one line per paragraph.
func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read docx: %v", ErrExtractionFailed, err)
	}
	defer doc.Close()

	return stripMarkup(doc.Editable().GetContent()), nil
}

var (
	paragraphEndRe = regexp.MustCompile(`</w:p>`)
	xmlTagRe       = regexp.MustCompile(`<[^>]+>`)
	blankRunRe     = regexp.MustCompile(`\n{3,}`)
)

func stripMarkup(body string) string {
	body = paragraphEndRe.ReplaceAllString(body, "\n")
	body = xmlTagRe.ReplaceAllString(body, "")
	body = html.UnescapeString(body)
	body = blankRunRe.ReplaceAllString(body, "\n\n")
	return strings.TrimSpace(body)
}
