package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"validation", Validationf("nodes must be >= %d", 0), ExitValidation},
		{"wrapped validation", fmt.Errorf("load: %w", Validationf("bad")), ExitValidation},
		{"invariant", Invariantf("p_total_w > it_cap_w"), ExitInternal},
		{"renderer missing", fmt.Errorf("%w: pandoc not found", ErrRendererMissing), ExitRendererMissing},
		{"plain", errors.New("boom"), ExitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestValidation(t *testing.T) {
	assert.NoError(t, Validation(nil))

	joined := errors.Join(errors.New("a"), errors.New("b"))
	err := Validation(joined)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "a")
	assert.Contains(t, err.Error(), "b")

	already := Validationf("x")
	assert.Same(t, already, Validation(already))
}

func TestValidationf_Message(t *testing.T) {
	err := Validationf("missing required key: %s", "node")
	assert.EqualError(t, err, "validation error: missing required key: node")
}
