package artifact

import (
	"context"
	"os/exec"
	"strings"

	"github.com/imamik/mwpack/internal/util/prerequisites"
)

// FallbackToolVersion is recorded when no version can be determined.
const FallbackToolVersion = "0.0.0"

// gitDescribe is replaced in tests.
var gitDescribe = func(ctx context.Context) (string, error) {
	git, ok := prerequisites.Locate(prerequisites.GitName)
	if !ok {
		return "", exec.ErrNotFound
	}
	// #nosec G204 - git path comes from LookPath
	out, err := exec.CommandContext(ctx, git, "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ToolVersion returns the git description of the working tree, or
// FallbackToolVersion when git is missing or fails.
func ToolVersion(ctx context.Context) string {
	out, err := gitDescribe(ctx)
	if err != nil {
		return FallbackToolVersion
	}
	if v := strings.TrimSpace(out); v != "" {
		return v
	}
	return FallbackToolVersion
}
