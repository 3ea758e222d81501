// Package ingestion converts uploaded documents and fetched pages into
// plain text for the analysis pipeline.
package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText decodes an uploaded document into text, best effort. PDF and
// DOCX files get dedicated readers; any other extension, or a reader
// failure, falls back to a lossy UTF-8 decode of the raw bytes. The pipeline
// downstream treats whatever comes out as plain text, so ExtractText never
// fails.
func ExtractText(filename string, raw []byte) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		if text, err := extractPDF(raw); err == nil {
			return text
		}
	case ".docx":
		if text, err := extractDocx(raw); err == nil {
			return text
		}
	}
	return decodeLossy(raw)
}

func extractPDF(raw []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocx(raw []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}

// decodeLossy interprets raw as UTF-8, dropping invalid sequences.
func decodeLossy(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), "")
}
