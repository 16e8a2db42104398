package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enisbelgacem/classplot/internal/classerr"
)

func TestDecodeHeaderColumnCount(t *testing.T) {
	header := "#  1:x    2:(.)rho     3:P [Mpc^-3]"
	h, err := DecodeHeader(header)
	require.NoError(t, err)
	require.Len(t, h.Columns, 3)
	assert.Equal(t, []string{"x", "rho", "P"}, h.Names())
}

func TestDecodeHeaderLongNames(t *testing.T) {
	header := "#  1:x    2:(.)rho     3:P [Mpc^-3]"
	h, err := DecodeHeader(header)
	require.NoError(t, err)
	assert.Equal(t, "x", h.Columns[0].LongName)
	assert.Equal(t, "(.)rho", h.Columns[1].LongName)
	assert.Equal(t, "P [Mpc^-3]", h.Columns[2].LongName)
	// Labels keep the annotation, with the scale macro expanded.
	assert.Equal(t, `(8\pi G/3)rho`, h.Columns[1].Label)
	assert.Equal(t, "P [Mpc^-3]", h.Columns[2].Label)
}

func TestDecodeHeaderTwoColumns(t *testing.T) {
	header := "#  1:z     2:proper time [Gyr]"
	h, err := DecodeHeader(header)
	require.NoError(t, err)
	require.Len(t, h.Columns, 2)
	assert.Equal(t, "proper time", h.Columns[1].Name)
	assert.Equal(t, "proper time [Gyr]", h.Columns[1].Label)
}

func TestDecodeHeaderDeterministic(t *testing.T) {
	header := "#  1:x    2:(.)rho_b     3:(.)rho_cdm   4:conf. time [Mpc]"
	first, err := DecodeHeader(header)
	require.NoError(t, err)
	second, err := DecodeHeader(header)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecodeHeaderTightMarkers(t *testing.T) {
	// Markers closer together than an ordinal tag, as in a timestamp-like
	// comment from a non-CLASS tool. The name degrades to empty instead
	// of slicing out of range.
	h, err := DecodeHeader("# 1:2:3")
	require.NoError(t, err)
	require.Len(t, h.Columns, 2)
	assert.Equal(t, "", h.Columns[0].Name)
	assert.Equal(t, "3", h.Columns[1].Name)
}

func TestDecodeHeaderNoMarkers(t *testing.T) {
	_, err := DecodeHeader("# just a comment, not a CLASS header")
	require.Error(t, err)
	assert.True(t, classerr.IsKind(err, classerr.Format))
}

func TestHeaderIndex(t *testing.T) {
	h, err := DecodeHeader("#  1:x    2:(.)rho     3:P [Mpc^-3]")
	require.NoError(t, err)

	idx, ok := h.Index("rho")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = h.Index("TT")
	assert.False(t, ok)
}

func TestLastHeaderLine(t *testing.T) {
	lines := []string{
		"# first comment",
		"#  1:x   2:y",
		"1.0 2.0",
	}
	header, ok := lastHeaderLine(lines)
	require.True(t, ok)
	assert.Equal(t, "#  1:x   2:y", header)

	_, ok = lastHeaderLine([]string{"1.0 2.0"})
	assert.False(t, ok)
}
