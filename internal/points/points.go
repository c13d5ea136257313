// Package points reads marker records from a spreadsheet.
package points

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/woozymasta/maskmap/internal/apperr"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// DefaultColor is used for markers and circles without an explicit color.
const DefaultColor = "blue"

// Column names of the spreadsheet header row.
const (
	ColLat         = "lat"
	ColLon         = "lon"
	ColInfo        = "info"
	ColColor       = "color"
	ColShowCircle  = "show_circle"
	ColCircleColor = "circle_color"
)

// Record is a single spreadsheet row with optional fields already defaulted.
type Record struct {
	Info        string  `json:"info"`
	Color       string  `json:"color"`
	CircleColor string  `json:"circle_color"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Row         int     `json:"-"` // 1-based spreadsheet row
	ShowCircle  bool    `json:"show_circle"`
}

// Load reads all data rows of the given sheet, or of the first sheet when
// sheet is empty. Row order is preserved.
func Load(path, sheet string) ([]Record, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: spreadsheet %s", apperr.ErrMissingFile, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open spreadsheet %s: %w", apperr.ErrParse, path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if sheet == "" || !slices.Contains(f.GetSheetList(), sheet) {
		return nil, fmt.Errorf("%w: spreadsheet %s: sheet %q not found", apperr.ErrParse, path, sheet)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read rows of %s: %w", apperr.ErrParse, path, err)
	}

	records, err := Parse(rows)
	if err != nil {
		return nil, fmt.Errorf("spreadsheet %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Str("sheet", sheet).
		Int("rows", len(records)).
		Msg("Points loaded")

	return records, nil
}

// Parse converts raw rows, header first, into records.
func Parse(rows [][]string) ([]Record, error) {
	var header []string
	if len(rows) > 0 {
		header = rows[0]
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}

	for _, name := range []string{ColLat, ColLon, ColInfo} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: column %q", apperr.ErrMissingField, name)
		}
	}

	records := make([]Record, 0, max(len(rows)-1, 0))
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}

		rec, err := parseRow(cols, row, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRow(cols map[string]int, row []string, num int) (Record, error) {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	lat, err := parseCoord(cell(ColLat), ColLat, num)
	if err != nil {
		return Record{}, err
	}
	lon, err := parseCoord(cell(ColLon), ColLon, num)
	if err != nil {
		return Record{}, err
	}

	return Record{
		Row:         num,
		Lat:         lat,
		Lon:         lon,
		Info:        cell(ColInfo),
		Color:       orDefault(cell(ColColor)),
		ShowCircle:  Truthy(cell(ColShowCircle)),
		CircleColor: orDefault(cell(ColCircleColor)),
	}, nil
}

func parseCoord(value, name string, row int) (float64, error) {
	if value == "" {
		return 0, fmt.Errorf("%w: row %d: %s is empty", apperr.ErrMissingField, row, name)
	}

	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d: %s %q is not a number", apperr.ErrParse, row, name, value)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: row %d: %s %q is not a finite number", apperr.ErrParse, row, name, value)
	}

	return v, nil
}

func orDefault(color string) string {
	if color == "" {
		return DefaultColor
	}
	return color
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
