package prior

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse reads the whitespace-column prior format:
//
//	# name  kind        hyperparameters
//	P_p1    uniform     1.0,5.0
//	t0_p1   normal      2458325.55,0.1
//	ecc_p1  fixed       0.0
//
// Blank lines and '#' comments are skipped. Single-hyperparameter kinds
// (fixed, exponential) take one value; the rest take two, comma-separated.
func Parse(r io.Reader) ([]Parameter, error) {
	var params []Parameter
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 columns, got %d", ErrBadPriorFile, line, len(fields))
		}
		kind, err := KindFromString(strings.ToLower(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownKind, line, fields[1])
		}
		p := Parameter{Name: fields[0], Kind: kind}
		hyper := strings.Split(fields[2], ",")
		p.A, err = strconv.ParseFloat(hyper[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadPriorFile, line, err)
		}
		if len(hyper) > 1 {
			p.B, err = strconv.ParseFloat(hyper[1], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadPriorFile, line, err)
			}
		}
		params = append(params, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("prior: reading prior file: %w", err)
	}

	return params, nil
}

// yamlParam is the on-disk YAML shape of one declaration.
type yamlParam struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind"`
	Hyper []float64 `yaml:"hyper"`
}

// ParseYAML reads the YAML prior format: a list of {name, kind, hyper}.
func ParseYAML(data []byte) ([]Parameter, error) {
	var raw []yamlParam
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPriorFile, err)
	}
	params := make([]Parameter, 0, len(raw))
	for _, y := range raw {
		kind, err := KindFromString(strings.ToLower(y.Kind))
		if err != nil {
			return nil, fmt.Errorf("%w: %q (parameter %q)", ErrUnknownKind, y.Kind, y.Name)
		}
		p := Parameter{Name: y.Name, Kind: kind}
		if len(y.Hyper) == 0 {
			return nil, fmt.Errorf("%w: parameter %q has no hyperparameters", ErrBadPriorFile, y.Name)
		}
		p.A = y.Hyper[0]
		if len(y.Hyper) > 1 {
			p.B = y.Hyper[1]
		}
		params = append(params, p)
	}

	return params, nil
}

// LoadFile parses a prior file into a validated Registry, choosing the YAML
// parser for .yaml/.yml extensions and the column parser otherwise.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prior: reading %s: %w", path, err)
	}
	var params []Parameter
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		params, err = ParseYAML(data)
	} else {
		params, err = Parse(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, err
	}

	return NewRegistry(params)
}
