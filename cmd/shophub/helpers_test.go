package main

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$109.95", formatPrice(109.95))
	assert.Equal(t, "$0.00", formatPrice(0))
	assert.Equal(t, "$5.50", formatPrice(5.5))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "3.9 (120)", formatRating(3.9, 120))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "a long ...", truncate("a long product title", 10))
	// Widths at or below the ellipsis length pass through unchanged.
	assert.Equal(t, "abcdef", truncate("abcdef", 3))
}

func TestTruncateMultibyte(t *testing.T) {
	// Cutting must land on a rune boundary, never mid-character.
	title := "Fjällräven Kånken Rucksäcke für Größenwahn"
	got := truncate(title, 12)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 12, utf8.RuneCountInString(got))
	assert.Equal(t, "Fjällräve...", got)

	assert.Equal(t, "日本語のタイトル", truncate("日本語のタイトル", 8))
	assert.Equal(t, "日本語のタ...", truncate("日本語のタイトルです", 8))
}

func TestBarLength(t *testing.T) {
	assert.Equal(t, 30, barLength(10, 10, 30))
	assert.Equal(t, 15, barLength(5, 10, 30))
	// Nonzero counts always get at least one cell.
	assert.Equal(t, 1, barLength(1, 1000, 30))
	assert.Equal(t, 0, barLength(0, 10, 30))
	assert.Equal(t, 0, barLength(5, 0, 30))
}
