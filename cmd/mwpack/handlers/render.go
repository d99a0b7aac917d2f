package handlers

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/imamik/mwpack/internal/apperr"
	"github.com/imamik/mwpack/internal/config"
	"github.com/imamik/mwpack/internal/render"
)

// renderMemo renders a memo - can be replaced in tests.
var renderMemo = render.Memo

// Render renders the memo next to it, or into outDir when given. Output is
// printed before a missing pandoc is reported as an error.
func Render(ctx context.Context, memoPath, outDir string, jsonOutput bool) error {
	if err := config.ValidateMemoPath(memoPath); err != nil {
		return err
	}
	if outDir == "" {
		outDir = filepath.Dir(memoPath)
	}

	result, err := renderMemo(ctx, memoPath, outDir)
	if err != nil {
		return err
	}

	if jsonOutput {
		if err := printJSON(result); err != nil {
			return err
		}
	} else {
		fmt.Printf("Rendered HTML: %s\n", result.HTML)
		switch {
		case result.PDF != nil:
			fmt.Printf("Rendered PDF: %s\n", *result.PDF)
		case result.PDFError != "":
			fmt.Println(result.PDFError)
		}
	}

	if result.Fallback() {
		return fmt.Errorf("%w: pandoc not found; fallback HTML created", apperr.ErrRendererMissing)
	}
	return nil
}
