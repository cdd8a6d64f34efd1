package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matchlab/bimatch/gen"
)

// suiteColumns is the expected CSV header, in order.
var suiteColumns = []string{"id", "generator", "size_left", "size_right", "arg1", "arg2", "repeats"}

// Generator names accepted in the suite's generator column.
const (
	generatorRandom   = "random"
	generatorGaussian = "gaussian"
)

// LoadSuite reads an experiment suite from a CSV file.
func LoadSuite(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("bench: open suite: %w", err)
	}
	defer f.Close()

	cases, err := ReadSuite(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cases, nil
}

// ReadSuite parses suite rows from r. The header row is mandatory and
// must match suiteColumns exactly; every data row must parse into a
// well-formed Case.
func ReadSuite(r io.Reader) ([]Case, error) {
	rd := csv.NewReader(r)
	rd.TrimLeadingSpace = true

	header, err := rd.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrBadSuite, err)
	}
	if err = checkHeader(header); err != nil {
		return nil, err
	}

	var cases []Case
	for line := 2; ; line++ {
		record, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadSuite, line, err)
		}
		c, err := parseCase(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cases = append(cases, c)
	}

	return cases, nil
}

// checkHeader validates the column layout.
func checkHeader(header []string) error {
	if len(header) != len(suiteColumns) {
		return fmt.Errorf("%w: %d columns, want %d", ErrBadSuite, len(header), len(suiteColumns))
	}
	for i, want := range suiteColumns {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrBadSuite, i, header[i], want)
		}
	}

	return nil
}

// parseCase converts one CSV record into a Case.
func parseCase(record []string) (Case, error) {
	if len(record) != len(suiteColumns) {
		return Case{}, fmt.Errorf("%w: %d fields, want %d", ErrBadSuite, len(record), len(suiteColumns))
	}

	id, err := parseInt(record[0], "id")
	if err != nil {
		return Case{}, err
	}
	sizeLeft, err := parseInt(record[2], "size_left")
	if err != nil {
		return Case{}, err
	}
	sizeRight, err := parseInt(record[3], "size_right")
	if err != nil {
		return Case{}, err
	}
	arg1, err := parseFloat(record[4], "arg1")
	if err != nil {
		return Case{}, err
	}
	arg2, err := parseFloat(record[5], "arg2")
	if err != nil {
		return Case{}, err
	}
	repeats, err := parseInt(record[6], "repeats")
	if err != nil {
		return Case{}, err
	}
	if repeats < 1 {
		return Case{}, fmt.Errorf("%w: repeats=%d must be at least 1", ErrBadSuite, repeats)
	}

	var generator gen.Generator
	switch strings.ToLower(strings.TrimSpace(record[1])) {
	case generatorRandom:
		generator = gen.Random(arg1)
	case generatorGaussian:
		generator = gen.Gaussian(arg1, arg2)
	default:
		return Case{}, fmt.Errorf("%w: %q", ErrUnknownGenerator, record[1])
	}

	return Case{
		ID:        id,
		Generator: generator,
		SizeLeft:  sizeLeft,
		SizeRight: sizeRight,
		Repeats:   repeats,
	}, nil
}

func parseInt(s, field string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrBadSuite, field, s)
	}

	return v, nil
}

func parseFloat(s, field string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrBadSuite, field, s)
	}

	return v, nil
}
