package services

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractorService maps an uploaded file to plain text. PDF and DOCX are
// supported. Open failures and no-extractable-text are reported as
// distinct conditions so the handler can phrase them differently.
type ExtractorService interface {
	ExtractText(filePath string) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

func (s *extractorService) ExtractText(filePath string) (string, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".pdf":
		return s.extractPDF(filePath)
	case ".docx":
		return s.extractDocx(filePath)
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(filePath))
	}
}

// extractPDF joins page texts with a newline so paragraph boundaries
// survive for the downstream pipeline. Empty pages are skipped.
func (s *extractorService) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages (e.g. cover graphics) fail on their own; keep going.
			continue
		}

		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}

	full := strings.TrimSpace(strings.Join(pages, "\n"))
	if full == "" {
		return "", ErrNoExtractableText
	}

	return full, nil
}

var (
	reDocxParagraph = regexp.MustCompile(`</w:p>`)
	reXMLTag        = regexp.MustCompile(`<[^>]+>`)
)

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&apos;", "'",
	"&quot;", `"`,
)

func (s *extractorService) extractDocx(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()

	// The content is raw document XML; turn paragraph ends into newlines
	// before dropping the remaining markup.
	content = reDocxParagraph.ReplaceAllString(content, "\n")
	content = reXMLTag.ReplaceAllString(content, " ")
	content = xmlEntityReplacer.Replace(content)

	full := strings.TrimSpace(content)
	if full == "" {
		return "", ErrNoExtractableText
	}

	return full, nil
}
