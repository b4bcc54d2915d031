// Package extract turns uploaded document bytes into plain text plus
// summary metadata, one extractor per supported document kind.
package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DocumentKind is the closed set of supported upload formats. A kind is
// resolved once from the validated file extension; extractors never sniff
// extensions themselves.
type DocumentKind string

const (
	KindPDF  DocumentKind = "pdf"
	KindCSV  DocumentKind = "csv"
	KindXLSX DocumentKind = "xlsx"
	KindPPTX DocumentKind = "pptx"
)

// Result is the extracted text with per-kind summary metadata. Fields not
// applicable to the kind stay zero.
type Result struct {
	Text      string
	Pages     int
	Rows      int
	Columns   int
	Slides    int
	SheetName string
}

// ResolveKind maps a filename to its document kind.
func ResolveKind(filename string) (DocumentKind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return KindPDF, nil
	case ".csv":
		return KindCSV, nil
	case ".xlsx":
		return KindXLSX, nil
	case ".pptx":
		return KindPPTX, nil
	default:
		return "", fmt.Errorf("unsupported file type %q: only pdf, csv, xlsx and pptx are allowed", ext)
	}
}

// Extract dispatches to the extractor for the given kind. maxChars bounds
// the work done by extractors that can stop early (presentations); the
// returned text may still exceed it slightly and is truncated by the
// caller.
func Extract(kind DocumentKind, data []byte, maxChars int) (*Result, error) {
	switch kind {
	case KindPDF:
		return extractPDF(data)
	case KindCSV:
		return extractCSV(data)
	case KindXLSX:
		return extractXLSX(data)
	case KindPPTX:
		return extractPPTX(data, maxChars)
	default:
		return nil, fmt.Errorf("unknown document kind %q", kind)
	}
}
