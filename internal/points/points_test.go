package points

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/woozymasta/maskmap/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows into Sheet1 of a new workbook inside a temp dir.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		require.NoError(t, f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+1), &row))
	}

	path := filepath.Join(t.TempDir(), "points.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"lat", "lon", "info", "color", "show_circle", "circle_color"},
		{35.6812, 139.7671, "Tokyo", "red", true, "green"},
		{34.6937, 135.5023, "Osaka", "", false, ""},
		{43.0621, 141.3544, "Sapporo", "", 1, ""},
	})

	records, err := Load(path, "")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		Row: 2, Lat: 35.6812, Lon: 139.7671, Info: "Tokyo",
		Color: "red", ShowCircle: true, CircleColor: "green",
	}, records[0])
	assert.Equal(t, Record{
		Row: 3, Lat: 34.6937, Lon: 135.5023, Info: "Osaka",
		Color: DefaultColor, ShowCircle: false, CircleColor: DefaultColor,
	}, records[1])
	assert.True(t, records[2].ShowCircle)
	assert.Equal(t, DefaultColor, records[2].CircleColor)
}

func TestLoadRequiredColumnsOnly(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"lat", "lon", "info"},
		{35.0, 139.0, "Tokyo"},
	})

	records, err := Load(path, "Sheet1")
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.InDelta(t, 35.0, records[0].Lat, 1e-9)
	assert.InDelta(t, 139.0, records[0].Lon, 1e-9)
	assert.Equal(t, "Tokyo", records[0].Info)
	assert.Equal(t, "blue", records[0].Color)
	assert.False(t, records[0].ShowCircle)
	assert.Equal(t, "blue", records[0].CircleColor)
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"lon", "info"},
		{139.0, "Tokyo"},
	})

	_, err := Load(path, "")
	require.ErrorIs(t, err, apperr.ErrMissingField)
	assert.ErrorContains(t, err, `"lat"`)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "absent.xlsx"), "")
	assert.ErrorIs(t, err, apperr.ErrMissingFile)

	path := writeWorkbook(t, [][]any{{"lat", "lon", "info"}})
	_, err = Load(path, "Points")
	assert.ErrorIs(t, err, apperr.ErrParse)
}

func TestParse(t *testing.T) {
	records, err := Parse([][]string{
		{" lat ", "lon", "info", "show_circle"},
		{"35", "139", "Tokyo", "yes"},
		{"", "", "", ""},
		{"36", "140"},
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.True(t, records[0].ShowCircle)
	assert.Equal(t, 2, records[0].Row)
	assert.Equal(t, "", records[1].Info)
	assert.False(t, records[1].ShowCircle)
	assert.Equal(t, 4, records[1].Row)
}

func TestParseBadValues(t *testing.T) {
	header := []string{"lat", "lon", "info"}

	_, err := Parse([][]string{header, {"", "139", "Tokyo"}})
	assert.ErrorIs(t, err, apperr.ErrMissingField)

	_, err = Parse([][]string{header, {"35", "east", "Tokyo"}})
	assert.ErrorIs(t, err, apperr.ErrParse)
	assert.ErrorContains(t, err, "row 2")

	for _, value := range []string{"NaN", "nan", "inf", "-Inf", "Infinity"} {
		_, err = Parse([][]string{header, {value, "139", "Tokyo"}})
		assert.ErrorIs(t, err, apperr.ErrParse, value)
		assert.ErrorContains(t, err, "not a finite number", value)
	}

	_, err = Parse(nil)
	assert.ErrorIs(t, err, apperr.ErrMissingField)
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"", " ", "0", "0.0", "false", "FALSE", "False", "f", "no", "N", "off", "NaN", "none", "null"} {
		assert.False(t, Truthy(v), "value %q", v)
	}
	for _, v := range []string{"1", "TRUE", "true", "yes", "x", "2", "on", "circle"} {
		assert.True(t, Truthy(v), "value %q", v)
	}
}
