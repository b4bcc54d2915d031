package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slidePattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// extractPPTX walks every slide in document order and collects the text of
// every shape. No pptx library on the shelf does plain text extraction, but
// the format is just zipped XML: text runs live in <a:t> elements.
func extractPPTX(data []byte, maxChars int) (*Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pptx: %w", err)
	}

	type slideFile struct {
		number int
		file   *zip.File
	}
	var slides []slideFile
	for _, f := range zr.File {
		if m := slidePattern.FindStringSubmatch(f.Name); m != nil {
			n, _ := strconv.Atoi(m[1])
			slides = append(slides, slideFile{number: n, file: f})
		}
	}
	if len(slides) == 0 {
		return nil, fmt.Errorf("pptx file contains no slides")
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var sb strings.Builder
	for _, s := range slides {
		text, err := slideText(s.file)
		if err != nil {
			return nil, fmt.Errorf("read slide %d: %w", s.number, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(&sb, "Slide %d:\n%s\n", s.number, text)

		// Bounded extraction: once past the cap the remaining slides
		// cannot contribute anything the truncation would keep.
		if sb.Len() > maxChars {
			break
		}
	}

	return &Result{
		Text:   sb.String(),
		Slides: len(slides),
	}, nil
}

func slideText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var runs []string
	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		// DrawingML text runs are <a:t> elements.
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == "t" {
			var run string
			if err := decoder.DecodeElement(&run, &start); err != nil {
				return "", err
			}
			runs = append(runs, run)
		}
	}
	return strings.Join(runs, " "), nil
}
