package source

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVLoadAirports(t *testing.T) {
	src := NewCSV(filepath.Join("testdata", "airports_sample.csv"), slog.Default())
	records, err := src.LoadAirports(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	dfw := records[0]
	assert.Equal(t, "DALLAS FORT WORTH INTL", dfw.Name)
	assert.Equal(t, "DALLAS-FORT WORTH", dfw.City)
	assert.Equal(t, "Texas", dfw.State)
	require.True(t, dfw.HasGeo())
	assert.Equal(t, 32.896828, dfw.Geo.Lat)
	assert.Equal(t, -97.037997, dfw.Geo.Lon)
	assert.Equal(t, 91.3, dfw.Score)
	assert.Equal(t, 8.0, dfw.CertScore)
	assert.True(t, dfw.Military)

	assert.Equal(t, "ABILENE RGNL", records[1].Name)
	assert.False(t, records[1].Military)

	// Blank coordinate columns load as a record without Geo.
	fresno := records[2]
	assert.Equal(t, "California", fresno.State)
	assert.False(t, fresno.HasGeo())
	assert.Equal(t, 68.4, fresno.Score)
}

func TestCSVMissingFile(t *testing.T) {
	src := NewCSV(filepath.Join("testdata", "does_not_exist.csv"), slog.Default())
	_, err := src.LoadAirports(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open input")
}

func TestCSVMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	data := "ARPT_NAME,CITY,STATE_NAME,LAT_DECIMAL,LONG_DECIMAL,predicted_score\nX,Y,Texas,1,2,70\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	src := NewCSV(path, slog.Default())
	_, err := src.LoadAirports(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cert_importance_score")
}

func TestCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	src := NewCSV(path, slog.Default())
	_, err := src.LoadAirports(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestCSVDropsShortRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	data := "ARPT_NAME,CITY,STATE_NAME,LAT_DECIMAL,LONG_DECIMAL,predicted_score,cert_importance_score,is_military_relevant\n" +
		"GOOD,CITY,Texas,1,2,70,1,False\n" +
		"SHORT,CITY\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	src := NewCSV(path, slog.Default())
	records, err := src.LoadAirports(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "GOOD", records[0].Name)
}
