package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	rpdf "rsc.io/pdf"
)

// Extraction status reported to the upload caller.
const (
	StatusSuccess = "success"
	StatusWarning = "warning"
	StatusError   = "error"
)

const (
	// A page needs this much trimmed text to count as extracted.
	minPageChars = 20
	// OCR kicks in when fewer than this share of pages had a text layer.
	ocrThreshold = 0.3
)

// Result describes one extraction run over a PDF.
type Result struct {
	Text          string   `json:"text"`
	PageCount     int      `json:"page_count"`
	PagesWithText int      `json:"pages_with_text"`
	WordCount     int      `json:"word_count"`
	Methods       []string `json:"methods"`
	Status        string   `json:"status"`
}

// Extractor runs the two stage text pipeline: the PDF text layer first,
// then OCR for documents that are mostly scanned images.
type Extractor struct {
	ocr OCRRunner
}

func NewExtractor(ocr OCRRunner) *Extractor {
	return &Extractor{ocr: ocr}
}

// Extract pulls text from the PDF at path. It returns an error only for
// unreadable files; thin results are reported through Status instead.
func (e *Extractor) Extract(ctx context.Context, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat pdf: %w", err)
	}

	doc, err := rpdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse pdf: %w", err)
	}

	res := &Result{PageCount: doc.NumPage()}
	var pages []string
	emptyPages := make([]int, 0)

	for i := 1; i <= res.PageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := pageText(doc.Page(i))
		if len(strings.TrimSpace(text)) > minPageChars {
			res.PagesWithText++
			pages = append(pages, fmt.Sprintf("--- Page %d ---\n%s", i, text))
		} else {
			emptyPages = append(emptyPages, i)
		}
	}
	if res.PagesWithText > 0 {
		res.Methods = append(res.Methods, "text_layer")
	}

	if e.needsOCR(res) {
		ocrPages, ocrDone := e.runOCR(ctx, path, emptyPages)
		if ocrDone > 0 {
			res.Methods = append(res.Methods, "ocr")
			res.PagesWithText += ocrDone
			pages = append(pages, ocrPages...)
		}
	}

	res.Text = strings.Join(pages, "\n\n")
	res.WordCount = len(strings.Fields(res.Text))
	switch {
	case res.WordCount > 50:
		res.Status = StatusSuccess
	case res.WordCount > 0:
		res.Status = StatusWarning
	default:
		res.Status = StatusError
	}
	return res, nil
}

func (e *Extractor) needsOCR(res *Result) bool {
	if e.ocr == nil || !e.ocr.Available() || res.PageCount == 0 {
		return false
	}
	return float64(res.PagesWithText) < ocrThreshold*float64(res.PageCount)
}

func (e *Extractor) runOCR(ctx context.Context, path string, pages []int) ([]string, int) {
	var out []string
	done := 0
	for _, page := range pages {
		if ctx.Err() != nil {
			break
		}
		text, err := e.ocr.RecognizePage(ctx, path, page)
		if err != nil || len(strings.TrimSpace(text)) <= minPageChars {
			continue
		}
		out = append(out, fmt.Sprintf("--- Page %d ---\n%s", page, text))
		done++
	}
	return out, done
}

// pageText flattens the positioned text runs of one page. Recovers from
// the panics rsc.io/pdf raises on malformed content streams.
func pageText(page rpdf.Page) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()
	content := page.Content()
	var b strings.Builder
	for _, t := range content.Text {
		b.WriteString(t.S)
		b.WriteString(" ")
	}
	return b.String()
}
