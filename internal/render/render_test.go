package render

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPandoc(t *testing.T, found bool, run func(ctx context.Context, pandoc, src, dst string) error) {
	t.Helper()
	origLocate, origRun := locatePandoc, runPandoc
	locatePandoc = func() (string, bool) {
		if found {
			return "/usr/bin/pandoc", true
		}
		return "", false
	}
	runPandoc = run
	t.Cleanup(func() {
		locatePandoc = origLocate
		runPandoc = origRun
	})
}

func writeMemo(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memo.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestMemo_Fallback(t *testing.T) {
	stubPandoc(t, false, func(context.Context, string, string, string) error {
		t.Fatal("pandoc must not run")
		return nil
	})
	memo := writeMemo(t, "# Title\n<script>alert('x') & \"q\"</script>\n")
	outDir := filepath.Join(t.TempDir(), "out")

	result, err := Memo(context.Background(), memo, outDir)
	require.NoError(t, err)

	assert.Equal(t, RendererFallback, result.Renderer)
	assert.True(t, result.Fallback())
	assert.Equal(t, filepath.Join(outDir, "memo.html"), result.HTML)
	assert.Nil(t, result.PDF)
	assert.Equal(t, "pandoc not found", result.PDFError)

	data, err := os.ReadFile(result.HTML)
	require.NoError(t, err)
	page := string(data)
	assert.Contains(t, page, "<!doctype html>\n")
	assert.Contains(t, page, "<title>memo fallback</title>")
	assert.Contains(t, page, "<body><pre># Title\n&lt;script&gt;alert(&#39;x&#39;) &amp; &#34;q&#34;&lt;/script&gt;\n</pre></body>")
	assert.NotContains(t, page, "<script>")
}

func TestMemo_Pandoc(t *testing.T) {
	var calls []string
	stubPandoc(t, true, func(_ context.Context, pandoc, src, dst string) error {
		assert.Equal(t, "/usr/bin/pandoc", pandoc)
		calls = append(calls, filepath.Base(dst))
		return os.WriteFile(dst, []byte("rendered"), 0o600)
	})
	memo := writeMemo(t, "# Title\n")
	outDir := t.TempDir()

	result, err := Memo(context.Background(), memo, outDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"memo.html", "memo.pdf"}, calls)
	assert.Equal(t, RendererPandoc, result.Renderer)
	assert.False(t, result.Fallback())
	require.NotNil(t, result.PDF)
	assert.Equal(t, filepath.Join(outDir, "memo.pdf"), *result.PDF)
	assert.Empty(t, result.PDFError)
}

func TestMemo_PandocPDFFailureIsRecorded(t *testing.T) {
	stubPandoc(t, true, func(_ context.Context, _, _, dst string) error {
		if filepath.Ext(dst) == ".pdf" {
			return errors.New("pdflatex not found")
		}
		return nil
	})

	result, err := Memo(context.Background(), writeMemo(t, "x\n"), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, RendererPandoc, result.Renderer)
	assert.Nil(t, result.PDF)
	assert.Equal(t, "pdflatex not found", result.PDFError)
}

func TestMemo_PandocHTMLFailureIsError(t *testing.T) {
	stubPandoc(t, true, func(context.Context, string, string, string) error {
		return errors.New("boom")
	})

	_, err := Memo(context.Background(), writeMemo(t, "x\n"), t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render HTML")
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(&Result{Renderer: RendererFallback, HTML: "memo.html", PDFError: "pandoc not found"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"renderer":"fallback-pre","html":"memo.html","pdf":null,"pdf_error":"pandoc not found"}`, string(data))
}
