package repository

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shenikar/santiago_crash_dashboard/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Ubicacion,X,Y,Accidentes,Fallecidos,Graves,MenosGrave,Leve\n"

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func writeDataset(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "accidents.csv")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestCSVAccidentSource_LoadAll(t *testing.T) {
	path := writeDataset(t, []byte(header+
		"\"Alameda, Centro\",-33.44,-70.65,4,1,0,2,3\n"+
		"Gran Avenida & Departamental,-33.51,-70.62,2,0,1,0,1\n"))
	cfg := &config.Config{DatasetPath: path, DatasetEncoding: "utf-8", DatasetLatColumn: "X", DatasetLonColumn: "Y"}

	records, err := NewCSVAccidentSource(cfg, newTestLogger()).LoadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	first := records[0]
	assert.Equal(t, "Alameda, Centro", first.Location)
	assert.Equal(t, -33.44, first.Latitude)
	assert.Equal(t, -70.65, first.Longitude)
	assert.Equal(t, 4, first.AccidentCount)
	assert.Equal(t, 1, first.Fatalities)
	assert.Equal(t, 0, first.SeriousInjuries)
	assert.Equal(t, 2, first.ModerateInjuries)
	assert.Equal(t, 3, first.MinorInjuries)
	assert.Equal(t, RecordID(0, "Alameda, Centro"), first.ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestCSVAccidentSource_SwappedCoordinateColumns(t *testing.T) {
	path := writeDataset(t, []byte(header+"Oak Rd,1.5,2.5,1,0,0,0,0\n"))
	cfg := &config.Config{DatasetPath: path, DatasetEncoding: "utf-8", DatasetLatColumn: "Y", DatasetLonColumn: "X"}

	records, err := NewCSVAccidentSource(cfg, newTestLogger()).LoadAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2.5, records[0].Latitude)
	assert.Equal(t, 1.5, records[0].Longitude)
}

func TestCSVAccidentSource_MissingFile(t *testing.T) {
	cfg := &config.Config{DatasetPath: filepath.Join(t.TempDir(), "absent.csv"), DatasetEncoding: "utf-8"}

	_, err := NewCSVAccidentSource(cfg, newTestLogger()).LoadAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAccidents_BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(header+"Oak Rd,0,0,3,0,0,0,0\n")...)

	records, err := ReadAccidents(context.Background(), bytes.NewReader(data), "utf-8", DefaultColumns())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].AccidentCount)
}

func TestReadAccidents_Latin1(t *testing.T) {
	// "Ñuñoa" в ISO-8859-1
	data := []byte(header + "\xD1u\xF1oa,0,0,1,0,0,0,0\n")

	records, err := ReadAccidents(context.Background(), bytes.NewReader(data), "latin1", DefaultColumns())

	require.NoError(t, err)
	assert.Equal(t, "Ñuñoa", records[0].Location)
}

func TestReadAccidents_EmptyCellsAreZero(t *testing.T) {
	records, err := ReadAccidents(context.Background(), strings.NewReader(header+"Oak Rd,,,2,,,,1.0\n"), "utf-8", DefaultColumns())

	require.NoError(t, err)
	assert.Equal(t, 2, records[0].AccidentCount)
	assert.Equal(t, 0, records[0].Fatalities)
	assert.Equal(t, 1, records[0].MinorInjuries)
	assert.Equal(t, 0.0, records[0].Latitude)
}

func TestReadAccidents_HeaderOnly(t *testing.T) {
	records, err := ReadAccidents(context.Background(), strings.NewReader(header), "utf-8", DefaultColumns())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestReadAccidents_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{name: "empty file", data: "", wantErr: "missing header row"},
		{name: "missing column", data: "Ubicacion,X,Y,Accidentes\nOak Rd,0,0,1\n", wantErr: "missing required columns: Fallecidos, Graves, MenosGrave, Leve"},
		{name: "negative count", data: header + "Oak Rd,0,0,-1,0,0,0,0\n", wantErr: "row 1: column Accidentes: negative count -1"},
		{name: "malformed count", data: header + "Oak Rd,0,0,many,0,0,0,0\n", wantErr: "column Accidentes: invalid count \"many\""},
		{name: "fractional count", data: header + "Oak Rd,0,0,1.5,0,0,0,0\n", wantErr: "invalid count \"1.5\""},
		{name: "malformed coordinate", data: header + "Oak Rd,north,0,1,0,0,0,0\n", wantErr: "column X: invalid coordinate"},
		{name: "wrong field count", data: header + "Oak Rd,0,0,1\n", wantErr: "failed to read row 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadAccidents(context.Background(), strings.NewReader(tt.data), "utf-8", DefaultColumns())
			require.Error(t, err)
			assert.Nil(t, records)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestReadAccidents_UnsupportedEncoding(t *testing.T) {
	_, err := ReadAccidents(context.Background(), strings.NewReader(header), "koi8-r", DefaultColumns())
	assert.ErrorContains(t, err, "unsupported encoding")
}

func TestReadAccidents_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ReadAccidents(ctx, strings.NewReader(header+"Oak Rd,0,0,1,0,0,0,0\n"), "utf-8", DefaultColumns())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecordID_Deterministic(t *testing.T) {
	assert.Equal(t, RecordID(3, "Oak Rd"), RecordID(3, "Oak Rd"))
	assert.NotEqual(t, RecordID(3, "Oak Rd"), RecordID(4, "Oak Rd"))
}
