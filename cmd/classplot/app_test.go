package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enisbelgacem/classplot/internal/classerr"
	"github.com/enisbelgacem/classplot/internal/report"
)

func TestInferSelectionFromClFile(t *testing.T) {
	fields, scale, err := resolveFieldsAndScale("output/wmap_cl.dat", options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"TT"}, fields)
	assert.Equal(t, report.ScaleLogLog, scale)
}

func TestInferSelectionFromPkFile(t *testing.T) {
	fields, scale, err := resolveFieldsAndScale("output/test_pk.dat", options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"P"}, fields)
	assert.Equal(t, report.ScaleLogLog, scale)
}

func TestInferSelectionUnknownFile(t *testing.T) {
	_, _, err := resolveFieldsAndScale("output/background.dat", options{})
	require.Error(t, err)
	assert.True(t, classerr.IsKind(err, classerr.SpectrumType))
}

func TestExplicitScaleWinsOverInference(t *testing.T) {
	_, scale, err := resolveFieldsAndScale("output/test_pk.dat", options{scale: "lin"})
	require.NoError(t, err)
	assert.Equal(t, report.ScaleLin, scale)
}

func TestExplicitSelectionDefaultsToLin(t *testing.T) {
	fields, scale, err := resolveFieldsAndScale("output/background.dat", options{selection: []string{"proper time"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"proper time"}, fields)
	assert.Equal(t, report.ScaleLin, scale)
}

func TestResolveScaleRejectsUnknown(t *testing.T) {
	_, _, err := resolveFieldsAndScale("output/test_pk.dat", options{scale: "cubic"})
	require.Error(t, err)
	assert.True(t, classerr.IsKind(err, classerr.Input))
}

func TestExpandRepeat(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"lcdm_z1_pk.dat", "lcdm_z2_pk.dat", "lcdm_z3_pk.dat", "other_pk.dat"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#\n"), 0o644))
	}

	files := expandRepeat([]string{filepath.Join(dir, "lcdm_z2_pk.dat")})
	assert.Equal(t, []string{
		filepath.Join(dir, "lcdm_z1_pk.dat"),
		filepath.Join(dir, "lcdm_z2_pk.dat"),
		filepath.Join(dir, "lcdm_z3_pk.dat"),
	}, files)
}

func TestExpandRepeatNoTagPassesThrough(t *testing.T) {
	files := expandRepeat([]string{"output/wmap_cl.dat"})
	assert.Equal(t, []string{"output/wmap_cl.dat"}, files)
}

func TestExpandRepeatDeduplicates(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"lcdm_z1_pk.dat", "lcdm_z2_pk.dat"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("#\n"), 0o644))
	}

	files := expandRepeat([]string{
		filepath.Join(dir, "lcdm_z1_pk.dat"),
		filepath.Join(dir, "lcdm_z2_pk.dat"),
	})
	assert.Len(t, files, 2)
}

func TestRatioModeGuards(t *testing.T) {
	err := run([]string{"only.dat"}, options{ratio: true})
	require.Error(t, err)
	assert.True(t, classerr.IsKind(err, classerr.FileCount))

	err = run([]string{"a.dat", "b.dat"}, options{ratio: true})
	require.Error(t, err)
	assert.True(t, classerr.IsKind(err, classerr.Input))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	data := "#  1:x    2:(.)rho     3:P [Mpc^-3]\n" +
		"1.0 2.0 3.0\n" +
		"2.0 4.0 9.0\n" +
		"3.0 8.0 27.0\n"
	path := filepath.Join(dir, "test_pk.dat")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	require.NoError(t, run([]string{path}, options{printPNG: true}))

	stem := filepath.Join(dir, "test_pk")
	assert.FileExists(t, stem+".pdf")
	assert.FileExists(t, stem+".png")
	assert.FileExists(t, path+".go")
}
