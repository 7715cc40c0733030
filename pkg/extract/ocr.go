package extract

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// OCRRunner recognizes text on a single PDF page. Implementations are
// opaque to the extraction pipeline.
type OCRRunner interface {
	Available() bool
	RecognizePage(ctx context.Context, pdfPath string, page int) (string, error)
}

// TesseractRunner shells out to pdftoppm and tesseract. Availability is
// probed once at construction so a missing binary disables OCR instead
// of failing every upload.
type TesseractRunner struct {
	available bool
}

func NewTesseractRunner() *TesseractRunner {
	_, errTess := exec.LookPath("tesseract")
	_, errPpm := exec.LookPath("pdftoppm")
	return &TesseractRunner{available: errTess == nil && errPpm == nil}
}

func (r *TesseractRunner) Available() bool {
	return r.available
}

func (r *TesseractRunner) RecognizePage(ctx context.Context, pdfPath string, page int) (string, error) {
	if !r.available {
		return "", fmt.Errorf("tesseract is not installed")
	}

	tmpDir, err := os.MkdirTemp("", "ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	prefix := filepath.Join(tmpDir, "page")
	render := exec.CommandContext(ctx, "pdftoppm",
		"-f", fmt.Sprint(page), "-l", fmt.Sprint(page),
		"-r", "200", "-png", pdfPath, prefix)
	if err := render.Run(); err != nil {
		return "", fmt.Errorf("render page %d: %w", page, err)
	}

	images, err := filepath.Glob(prefix + "*.png")
	if err != nil || len(images) == 0 {
		return "", fmt.Errorf("no rendered image for page %d", page)
	}

	recognize := exec.CommandContext(ctx, "tesseract", images[0], "stdout")
	out, err := recognize.Output()
	if err != nil {
		return "", fmt.Errorf("recognize page %d: %w", page, err)
	}
	return string(out), nil
}
