package extract

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

func extractPDF(data []byte) (*Result, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", i+1, err)
		}
		pages = append(pages, pageText)
	}

	text := strings.Join(pages, "\n")
	if strings.TrimSpace(text) == "" {
		// Scanned PDFs without a text layer yield nothing; report it
		// instead of caching an empty context.
		return nil, fmt.Errorf("no selectable text found in pdf (%d pages)", doc.NumPage())
	}

	return &Result{
		Text:  text,
		Pages: doc.NumPage(),
	}, nil
}
