// Package normalize canonicalizes markdown whitespace so memos packaged on
// different platforms hash the same.
package normalize

import (
	"fmt"
	"os"
	"strings"
)

// Markdown converts CRLF and lone CR line endings to LF, strips trailing
// spaces and tabs from every line and guarantees a single final newline is
// present.
func Markdown(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.Join(lines, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// File writes the normalized content of src to dst.
func File(src, dst string) error {
	// #nosec G304
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read memo %s: %w", src, err)
	}
	if err := os.WriteFile(dst, []byte(Markdown(string(data))), 0o644); err != nil {
		return fmt.Errorf("failed to write memo %s: %w", dst, err)
	}
	return nil
}
