package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToMultiLine_NoDelimiter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a b ", ToMultiLine("", []string{"a", "b"}))
}

func TestToMultiLine_WithDelimiter(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a; b; ", ToMultiLine("; ", []string{"a", "b"}))
	assert.Equal(t, "a\nb\n", ToMultiLine("\n", []string{"a", "b"}))
}

func TestToMultiLine_Empty(t *testing.T) {
	t.Parallel()

	for _, d := range []string{"", "; ", "\n"} {
		assert.Equal(t, "", ToMultiLine(d, nil))
		assert.Equal(t, "", ToMultiLine(d, []string{}))
	}
}

func TestToMultiLine_SingleMessage(t *testing.T) {
	t.Parallel()

	if got := ToMultiLine("", []string{"done"}); got != "done " {
		t.Fatalf("expected %q, got %q", "done ", got)
	}
}

func TestToMultiLine_KeepsEmptyMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a,,b,", ToMultiLine(",", []string{"a", "", "b"}))
}
