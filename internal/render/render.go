// Package render turns a markdown memo into HTML, and PDF when possible.
//
// pandoc is used when it is on PATH. Without it an HTML page wrapping the
// escaped memo text in <pre> is written instead, and the result reports the
// fallback renderer so callers can signal the degraded output.
package render

import (
	"context"
	"fmt"
	"html"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/imamik/mwpack/internal/logging"
	"github.com/imamik/mwpack/internal/util/naming"
	"github.com/imamik/mwpack/internal/util/prerequisites"
)

// Renderer names reported in Result.
const (
	RendererPandoc   = "pandoc"
	RendererFallback = "fallback-pre"
)

// Result describes the rendered files.
type Result struct {
	Renderer string  `json:"renderer"`
	HTML     string  `json:"html"`
	PDF      *string `json:"pdf"`
	PDFError string  `json:"pdf_error"`
}

// Fallback reports whether pandoc was unavailable.
func (r *Result) Fallback() bool {
	return r.Renderer == RendererFallback
}

// Factory functions for testing - can be replaced in tests.
var (
	locatePandoc = func() (string, bool) {
		return prerequisites.Locate(prerequisites.PandocName)
	}
	runPandoc = func(ctx context.Context, pandoc, src, dst string) error {
		// #nosec G204 - pandoc path comes from LookPath
		out, err := exec.CommandContext(ctx, pandoc, src, "-o", dst).CombinedOutput()
		if err != nil {
			if msg := strings.TrimSpace(string(out)); msg != "" {
				return fmt.Errorf("pandoc %s -o %s: %w: %s", src, dst, err, msg)
			}
			return fmt.Errorf("pandoc %s -o %s: %w", src, dst, err)
		}
		return nil
	}
)

// Memo renders memoPath into outDir/memo.html and, with pandoc,
// outDir/memo.pdf. A failed PDF conversion is recorded in PDFError rather
// than returned.
func Memo(ctx context.Context, memoPath, outDir string) (*Result, error) {
	log := logging.FromContext(ctx)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}
	htmlPath := filepath.Join(outDir, naming.HTMLFile)
	pdfPath := filepath.Join(outDir, naming.PDFFile)

	pandoc, ok := locatePandoc()
	if !ok {
		log.V(1).Info("pandoc not found, writing fallback HTML", "html", htmlPath)
		if err := writeFallback(memoPath, htmlPath); err != nil {
			return nil, err
		}
		return &Result{
			Renderer: RendererFallback,
			HTML:     htmlPath,
			PDFError: "pandoc not found",
		}, nil
	}

	log.V(1).Info("rendering with pandoc", "pandoc", pandoc)
	if err := runPandoc(ctx, pandoc, memoPath, htmlPath); err != nil {
		return nil, fmt.Errorf("failed to render HTML: %w", err)
	}

	result := &Result{Renderer: RendererPandoc, HTML: htmlPath}
	if err := runPandoc(ctx, pandoc, memoPath, pdfPath); err != nil {
		log.Info("PDF rendering failed", "error", err.Error())
		result.PDFError = err.Error()
	} else {
		result.PDF = &pdfPath
	}
	return result, nil
}

func writeFallback(memoPath, htmlPath string) error {
	// #nosec G304
	data, err := os.ReadFile(memoPath)
	if err != nil {
		return fmt.Errorf("failed to read memo %s: %w", memoPath, err)
	}

	page := "<!doctype html>\n" +
		"<html lang=\"en\">\n" +
		"<head><meta charset=\"utf-8\"><title>memo fallback</title></head>\n" +
		"<body><pre>" + html.EscapeString(string(data)) + "</pre></body>\n" +
		"</html>\n"

	if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", htmlPath, err)
	}
	return nil
}
