package launches

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// ErrLoad is wrapped by every error Load and Parse return.
var ErrLoad = errors.New("failed to load launch records")

var requiredColumns = []string{
	ColumnLaunchSite,
	ColumnPayloadMass,
	ColumnClass,
	ColumnBoosterVersion,
}

// Load reads the launch records CSV at path.
func Load(path string) (ds *Dataset, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %w", ErrLoad, path, closeErr)
		}
	}()

	return Parse(f, path)
}

// Parse reads launch records CSV from r. Columns are located by header name;
// extra columns are ignored. source is only used for error messages and the
// dataset summary.
func Parse(r io.Reader, source string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s is empty", ErrLoad, source)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header of %s: %w", ErrLoad, source, err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, source, err)
	}
	// Rows must be at least as wide as the header.
	reader.FieldsPerRecord = len(header)

	var records []LaunchRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoad, source, err)
		}

		record, err := parseRow(row, index)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: %s line %d: %w", ErrLoad, source, line, err)
		}
		records = append(records, record)
	}

	return NewDataset(records, source), nil
}

type columns struct {
	site, payload, class, booster int
}

func columnIndex(header []string) (columns, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		positions[name] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := positions[name]; !ok {
			missing = append(missing, strconv.Quote(name))
		}
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("missing required columns %s", strings.Join(missing, ", "))
	}

	return columns{
		site:    positions[ColumnLaunchSite],
		payload: positions[ColumnPayloadMass],
		class:   positions[ColumnClass],
		booster: positions[ColumnBoosterVersion],
	}, nil
}

func parseRow(row []string, index columns) (LaunchRecord, error) {
	payload, err := strconv.ParseFloat(strings.TrimSpace(row[index.payload]), 64)
	if err != nil {
		return LaunchRecord{}, fmt.Errorf("invalid %s %q", ColumnPayloadMass, row[index.payload])
	}
	if math.IsNaN(payload) || math.IsInf(payload, 0) || payload < 0 {
		return LaunchRecord{}, fmt.Errorf("invalid %s %q", ColumnPayloadMass, row[index.payload])
	}

	class, err := parseClass(row[index.class])
	if err != nil {
		return LaunchRecord{}, err
	}

	return LaunchRecord{
		Site:                   strings.TrimSpace(row[index.site]),
		PayloadMassKg:          payload,
		Class:                  class,
		BoosterVersionCategory: strings.TrimSpace(row[index.booster]),
	}, nil
}

// parseClass accepts 0 and 1, also written as floats ("1.0") by some exports.
func parseClass(raw string) (int, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", ColumnClass, raw)
	}
	switch value {
	case ClassSuccess:
		return ClassSuccess, nil
	case ClassFailure:
		return ClassFailure, nil
	default:
		return 0, fmt.Errorf("invalid %s %q: must be 0 or 1", ColumnClass, raw)
	}
}
