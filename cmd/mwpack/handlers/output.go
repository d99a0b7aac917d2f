package handlers

import (
	"bytes"
	"fmt"

	"github.com/imamik/mwpack/internal/util/jsonutil"
)

// printJSON writes v as canonical indented JSON to stdout.
func printJSON(v any) error {
	data, err := jsonutil.Pretty(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(bytes.TrimSpace(data)))
	return nil
}
