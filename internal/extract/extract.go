// Package extract pulls plain text out of uploaded resume files.
//
// Extraction is best-effort: a file the parsers cannot read yields an empty
// string with the cause logged, never an error to the caller. Callers treat
// empty text as "no usable resume content". Libraries used:
// github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
package extract

import (
	"bytes"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
)

// FromBytes extracts text from an in-memory upload, dispatching on the file
// extension. Unknown extensions are treated as plain text with invalid UTF-8
// sequences replaced.
func FromBytes(data []byte, fileName string) string {
	if len(data) == 0 {
		return ""
	}
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return extractPDF(data, fileName)
	case ".docx":
		return extractDOCX(data, fileName)
	default:
		return strings.ToValidUTF8(string(data), "")
	}
}

// extractPDF walks the document page by page so one malformed page does not
// lose the rest of the file.
func extractPDF(data []byte, fileName string) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		telemetry.Warn("extract.pdf.open_failed", map[string]any{
			"file":  fileName,
			"cause": err.Error(),
		})
		return ""
	}

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		text, err := pageText(reader, i)
		if err != nil {
			telemetry.Warn("extract.pdf.page_failed", map[string]any{
				"file":  fileName,
				"page":  i,
				"cause": err.Error(),
			})
			continue
		}
		if text != "" {
			buf.WriteString(text)
			buf.WriteString("\n")
		}
	}
	return strings.TrimSpace(buf.String())
}

// pageText isolates per-page panics from the PDF library.
func pageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = io.ErrUnexpectedEOF
		}
	}()
	page := reader.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func extractDOCX(data []byte, fileName string) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		telemetry.Warn("extract.docx.open_failed", map[string]any{
			"file":  fileName,
			"cause": err.Error(),
		})
		return ""
	}
	defer doc.Close()

	return stripDocxXML(doc.Editable().GetContent())
}

// stripDocxXML flattens document.xml to text, emitting a newline at paragraph
// and line-break boundaries. Paragraphs with no text contribute nothing.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	textSinceBreak := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return strings.TrimSpace(raw)
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				buf.WriteString(string(t))
				textSinceBreak = true
			} else if textSinceBreak {
				buf.WriteString(string(t))
			}
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if textSinceBreak {
					buf.WriteString("\n")
					textSinceBreak = false
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
