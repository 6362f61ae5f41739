package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadTimeSeries loads a photometry or radial-velocity file in the
// four-column `time value error instrument` format. Three-column rows are
// assigned DefaultInstrument.
func ReadTimeSeries(path string) (*TimeSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	ts := &TimeSeries{Indices: make(map[string][]int)}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("%w: %s:%d has %d columns, want at least 3", ErrBadRecord, path, line, len(fields))
		}
		var row [3]float64
		for i := 0; i < 3; i++ {
			row[i], err = strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s:%d column %d: %v", ErrBadRecord, path, line, i+1, err)
			}
		}
		name := DefaultInstrument
		if len(fields) > 3 {
			name = fields[3]
		}
		if _, seen := ts.Indices[name]; !seen {
			ts.Instruments = append(ts.Instruments, name)
		}
		ts.Indices[name] = append(ts.Indices[name], len(ts.Time))
		ts.Time = append(ts.Time, row[0])
		ts.Value = append(ts.Value, row[1])
		ts.Error = append(ts.Error, row[2])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	if ts.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return ts, nil
}

// ReadCovariates loads a photometric GP external-parameter file: float
// columns followed by the instrument name, one row per observation. The
// result maps each instrument to its covariate matrix in row order.
func ReadCovariates(path string) (map[string][][]float64, error) {
	rows, names, err := readFloatRows(path, true)
	if err != nil {
		return nil, err
	}
	out := make(map[string][][]float64)
	for i, row := range rows {
		out[names[i]] = append(out[names[i]], row)
	}

	return out, nil
}

// ReadPooledCovariates loads the radial-velocity GP external-parameter
// file, which has float columns only and covers all instruments jointly.
func ReadPooledCovariates(path string) ([][]float64, error) {
	rows, _, err := readFloatRows(path, false)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// readFloatRows parses whitespace-separated float rows, optionally taking
// the trailing field of each row as an instrument name. All rows must have
// the same covariate count.
func readFloatRows(path string, named bool) (rows [][]float64, names []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	line, width := 0, -1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if named {
			if len(fields) < 2 {
				return nil, nil, fmt.Errorf("%w: %s:%d needs at least one covariate and an instrument", ErrBadRecord, path, line)
			}
			names = append(names, fields[len(fields)-1])
			fields = fields[:len(fields)-1]
		}
		if width == -1 {
			width = len(fields)
		} else if len(fields) != width {
			return nil, nil, fmt.Errorf("%w: %s:%d has %d covariates, want %d", ErrBadRecord, path, line, len(fields), width)
		}
		row := make([]float64, len(fields))
		for i, fld := range fields {
			row[i], err = strconv.ParseFloat(fld, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %s:%d column %d: %v", ErrBadRecord, path, line, i+1, err)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	return rows, names, nil
}
