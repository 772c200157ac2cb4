// Package extract turns uploaded resume files into a flat text string.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported file types
const (
	FileTypePDF  = "pdf"
	FileTypeDOCX = "docx"
	FileTypeTXT  = "txt"
)

// Text extracts the plain text of a resume file. fileType is the
// normalized extension (pdf, docx, txt).
func Text(data []byte, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case FileTypePDF:
		return pdfText(data)
	case FileTypeDOCX:
		return docxText(data)
	case FileTypeTXT:
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", fileType)
	}
}

// pdfText renders text with MuPDF first and falls back to the pure-Go
// reader when MuPDF cannot open the document.
func pdfText(data []byte) (string, error) {
	text, fitzErr := fitzText(data)
	if fitzErr == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	text, pureErr := purePDFText(data)
	if pureErr != nil {
		if fitzErr != nil {
			return "", fmt.Errorf("pdf extraction failed: %v (fallback: %w)", fitzErr, pureErr)
		}
		return "", fmt.Errorf("pdf extraction failed: %w", pureErr)
	}
	return text, nil
}

func fitzText(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i+1, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func purePDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
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
		sb.WriteString("\n")
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text in pdf")
	}
	return text, nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
