package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops a data file into the test's temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestReadTimeSeries_Grouping checks instrument grouping: first-appearance
// order, per-instrument row indices and Select views.
func TestReadTimeSeries_Grouping(t *testing.T) {
	path := writeFile(t, "lc.dat", `# time flux flux_err instrument
1.0 0.999 0.001 TESS
1.1 1.001 0.001 K2
1.2 1.000 0.002 TESS

1.3 0.998 0.002 K2
`)

	ts, err := ReadTimeSeries(path)
	require.NoError(t, err)
	assert.Equal(t, 4, ts.Len())
	assert.Equal(t, []string{"TESS", "K2"}, ts.Instruments)
	assert.Equal(t, []int{0, 2}, ts.Indices["TESS"])
	assert.Equal(t, []int{1, 3}, ts.Indices["K2"])

	tt, v, e, err := ts.Select("K2")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.1, 1.3}, tt)
	assert.Equal(t, []float64{1.001, 0.998}, v)
	assert.Equal(t, []float64{0.001, 0.002}, e)
}

// TestReadTimeSeries_ThreeColumns checks that files without an instrument
// column fall back to DefaultInstrument.
func TestReadTimeSeries_ThreeColumns(t *testing.T) {
	path := writeFile(t, "rvs.dat", "2450000.0 12.3 2.1\n2450001.0 -5.0 1.9\n")

	ts, err := ReadTimeSeries(path)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultInstrument}, ts.Instruments)
	assert.Equal(t, []int{0, 1}, ts.Indices[DefaultInstrument])
}

// TestReadTimeSeries_Errors checks the malformed-row and empty-file paths.
func TestReadTimeSeries_Errors(t *testing.T) {
	_, err := ReadTimeSeries(writeFile(t, "bad.dat", "1.0 0.999\n"))
	assert.ErrorIs(t, err, ErrBadRecord)

	_, err = ReadTimeSeries(writeFile(t, "nan.dat", "1.0 abc 0.001 TESS\n"))
	assert.ErrorIs(t, err, ErrBadRecord)

	_, err = ReadTimeSeries(writeFile(t, "empty.dat", "# only comments\n"))
	assert.ErrorIs(t, err, ErrEmptyFile)

	_, err = ReadTimeSeries(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

// TestSelect_UnknownInstrument checks the Select guard.
func TestSelect_UnknownInstrument(t *testing.T) {
	ts, err := ReadTimeSeries(writeFile(t, "lc.dat", "1.0 1.0 0.001 TESS\n"))
	require.NoError(t, err)

	_, _, _, err = ts.Select("CHEOPS")
	assert.ErrorIs(t, err, ErrUnknownInstrument)
}

// TestReadCovariates checks per-instrument covariate matrices from a
// trailing-name file.
func TestReadCovariates(t *testing.T) {
	path := writeFile(t, "lc_eparams.dat", `0.1 10.0 TESS
0.2 11.0 TESS
0.3 12.0 K2
`)

	cov, err := ReadCovariates(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.1, 10.0}, {0.2, 11.0}}, cov["TESS"])
	assert.Equal(t, [][]float64{{0.3, 12.0}}, cov["K2"])
}

// TestReadPooledCovariates checks the all-float pooled format and the
// ragged-row guard.
func TestReadPooledCovariates(t *testing.T) {
	rows, err := ReadPooledCovariates(writeFile(t, "rv_eparams.dat", "0.1\n0.2\n0.3\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.1}, {0.2}, {0.3}}, rows)

	_, err = ReadPooledCovariates(writeFile(t, "ragged.dat", "0.1 0.2\n0.3\n"))
	assert.ErrorIs(t, err, ErrBadRecord)
}
