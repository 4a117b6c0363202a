package wikimd_test

import (
	"testing"

	"github.com/fwojciec/wikimd"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("removes empty brackets", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "AB", wikimd.Sanitize("A[]B"))
	})

	t.Run("removes brackets around a line break", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "text\nmore", wikimd.Sanitize("text[\n]\nmore"))
	})

	t.Run("collapses nested artifacts", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "x", wikimd.Sanitize("x[[]\n]"))
	})

	t.Run("leaves real brackets alone", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "see [1] and [a]", wikimd.Sanitize("see [1] and [a]"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		once := wikimd.Sanitize("\n## Title\n[]\nBody[\n] text[]\n")

		assert.Equal(t, once, wikimd.Sanitize(once))
		assert.Equal(t, "\n## Title\n\nBody text\n", once)
	})
}
