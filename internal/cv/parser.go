package cv

import (
	"bytes"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"code.sajari.com/docconv"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

// Format is a resume container format.
type Format string

const (
	FormatUnknown Format = ""
	FormatPDF     Format = "pdf"  // paginated document
	FormatDOCX    Format = "docx" // flow document
)

// DOCX engines.
const (
	EngineDocconv = "docconv"
	EngineDocx    = "docx"
)

// FormatFromFilename maps a file extension to a Format.
func FormatFromFilename(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// TextExtractor turns resume files into lowercase plain text.
// It never fails: anything it cannot read becomes empty text.
type TextExtractor struct {
	docxEngine string
	logger     *zap.Logger
}

func NewTextExtractor(docxEngine string, logger *zap.Logger) *TextExtractor {
	if docxEngine == "" {
		docxEngine = EngineDocconv
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TextExtractor{docxEngine: docxEngine, logger: logger}
}

// Extract returns the lowercase text of data interpreted as format.
func (e *TextExtractor) Extract(format Format, data []byte) string {
	var (
		text string
		err  error
	)

	switch format {
	case FormatPDF:
		text, err = extractPDFText(data)
	case FormatDOCX:
		if e.docxEngine == EngineDocx {
			text, err = extractDocxXML(data)
		} else {
			text, err = extractDocconv(data)
		}
	default:
		e.logger.Debug("unsupported resume format, no text extracted", zap.String("format", string(format)))
		return ""
	}

	if err != nil {
		e.logger.Warn("text extraction failed",
			zap.String("format", string(format)),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
	}
	return strings.ToLower(text)
}

// extractPDFText concatenates page text in page order. Pages that yield no
// text contribute nothing; text of earlier pages survives a later failure.
// The reader opens every text object with a newline, so the first one is
// dropped to keep the first line of the document first.
func extractPDFText(data []byte) (text string, err error) {
	defer func() {
		// the pdf reader panics on some malformed streams
		if r := recover(); r != nil {
			err = fmt.Errorf("reading pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
		text = strings.TrimPrefix(sb.String(), "\n")
	}
	return text, nil
}

func extractDocconv(data []byte) (string, error) {
	body, _, err := docconv.ConvertDocx(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	return body, nil
}

var (
	paragraphEnd = regexp.MustCompile(`</w:p>|<w:br[^>]*/>|<w:tab[^>]*/>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// extractDocxXML reads the document body XML and reduces it to text.
func extractDocxXML(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = paragraphEnd.ReplaceAllStringFunc(content, func(tag string) string {
		if strings.HasPrefix(tag, "<w:tab") {
			return " "
		}
		return "\n"
	})
	content = xmlTag.ReplaceAllString(content, "")
	return strings.TrimSpace(html.UnescapeString(content)), nil
}
