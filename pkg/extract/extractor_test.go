package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeOCR struct {
	available bool
	text      string
	err       error
	calls     int
}

func (f *fakeOCR) Available() bool { return f.available }

func (f *fakeOCR) RecognizePage(ctx context.Context, pdfPath string, page int) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestNeedsOCR(t *testing.T) {
	e := NewExtractor(&fakeOCR{available: true})

	assert.True(t, e.needsOCR(&Result{PageCount: 10, PagesWithText: 2}))
	assert.False(t, e.needsOCR(&Result{PageCount: 10, PagesWithText: 3}))
	assert.False(t, e.needsOCR(&Result{PageCount: 0}))
}

func TestNeedsOCRWithoutRunner(t *testing.T) {
	assert.False(t, NewExtractor(nil).needsOCR(&Result{PageCount: 10}))
	assert.False(t, NewExtractor(&fakeOCR{available: false}).needsOCR(&Result{PageCount: 10}))
}

func TestRunOCRSkipsFailuresAndThinPages(t *testing.T) {
	ocr := &fakeOCR{available: true, text: "this page was recognized by the OCR engine"}
	e := NewExtractor(ocr)

	pages, done := e.runOCR(context.Background(), "doc.pdf", []int{1, 2})
	assert.Equal(t, 2, done)
	assert.Contains(t, pages[0], "--- Page 1 ---")

	ocr = &fakeOCR{available: true, err: errors.New("boom")}
	e = NewExtractor(ocr)
	pages, done = e.runOCR(context.Background(), "doc.pdf", []int{1})
	assert.Zero(t, done)
	assert.Empty(t, pages)
}

func TestRunOCRHonorsContext(t *testing.T) {
	ocr := &fakeOCR{available: true, text: "recognized text longer than the page floor"}
	e := NewExtractor(ocr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, done := e.runOCR(ctx, "doc.pdf", []int{1, 2, 3})
	assert.Zero(t, done)
	assert.Zero(t, ocr.calls)
}
