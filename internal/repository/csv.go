package repository

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/santiago_crash_dashboard/internal/config"
	"github.com/shenikar/santiago_crash_dashboard/internal/models"
	"github.com/shenikar/santiago_crash_dashboard/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Columns - имена колонок CSV для полей AccidentRecord
type Columns struct {
	Location         string
	Latitude         string
	Longitude        string
	AccidentCount    string
	Fatalities       string
	SeriousInjuries  string
	ModerateInjuries string
	MinorInjuries    string
}

// DefaultColumns возвращает раскладку файла AtropellosGS2015
func DefaultColumns() Columns {
	return Columns{
		Location:         "Ubicacion",
		Latitude:         "X",
		Longitude:        "Y",
		AccidentCount:    "Accidentes",
		Fatalities:       "Fallecidos",
		SeriousInjuries:  "Graves",
		ModerateInjuries: "MenosGrave",
		MinorInjuries:    "Leve",
	}
}

type CSVAccidentSource struct {
	path     string
	encoding string
	columns  Columns
	logger   *logrus.Logger
}

func NewCSVAccidentSource(cfg *config.Config, logger *logrus.Logger) service.AccidentSource {
	return NewCSVAccidentSourceFromPath(cfg.DatasetPath, cfg.DatasetEncoding, cfg.DatasetLatColumn, cfg.DatasetLonColumn, logger)
}

// NewCSVAccidentSourceFromPath нужен утилите импорта, у которой нет полного Config
func NewCSVAccidentSourceFromPath(path, encoding, latColumn, lonColumn string, logger *logrus.Logger) *CSVAccidentSource {
	columns := DefaultColumns()
	if latColumn != "" {
		columns.Latitude = latColumn
	}
	if lonColumn != "" {
		columns.Longitude = lonColumn
	}
	return &CSVAccidentSource{
		path:     path,
		encoding: strings.ToLower(encoding),
		columns:  columns,
		logger:   logger,
	}
}

// LoadAll читает весь файл. Любая ошибка фатальна, частичный датасет не возвращается.
func (s *CSVAccidentSource) LoadAll(ctx context.Context) ([]models.AccidentRecord, error) {
	log := s.logger.WithFields(logrus.Fields{
		"repository": "csv",
		"path":       s.path,
		"encoding":   s.encoding,
	})

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	records, err := ReadAccidents(ctx, f, s.encoding, s.columns)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", s.path, err)
	}

	log.WithField("records", len(records)).Debug("CSV dataset parsed")
	return records, nil
}

// ReadAccidents разбирает CSV с заголовком. Пустые числовые ячейки считаются нулём.
func ReadAccidents(ctx context.Context, r io.Reader, encoding string, columns Columns) ([]models.AccidentRecord, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	var src io.Reader = br
	switch encoding {
	case "", "utf-8", "utf8":
	case "latin1", "iso-8859-1":
		src = charmap.ISO8859_1.NewDecoder().Reader(br)
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}

	reader := csv.NewReader(src)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset is empty: missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	idx, err := columns.resolve(header)
	if err != nil {
		return nil, err
	}

	var records []models.AccidentRecord
	for row := 0; ; row++ {
		if row%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", row+1, err)
		}

		record, err := idx.parse(row, fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		records = append(records, record)
	}

	if records == nil {
		records = []models.AccidentRecord{}
	}
	return records, nil
}

// RecordID - детерминированный идентификатор строки, одинаковый между перезапусками
func RecordID(row int, location string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(strconv.Itoa(row)+"|"+location))
}

type columnIndex struct {
	names                                           Columns
	location, lat, lon                              int
	accidents, fatalities, serious, moderate, minor int
}

func (c Columns) resolve(header []string) (*columnIndex, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(name)] = i
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := positions[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}

	idx := &columnIndex{
		names:      c,
		location:   lookup(c.Location),
		lat:        lookup(c.Latitude),
		lon:        lookup(c.Longitude),
		accidents:  lookup(c.AccidentCount),
		fatalities: lookup(c.Fatalities),
		serious:    lookup(c.SeriousInjuries),
		moderate:   lookup(c.ModerateInjuries),
		minor:      lookup(c.MinorInjuries),
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return idx, nil
}

func (idx *columnIndex) parse(row int, fields []string) (models.AccidentRecord, error) {
	var (
		rec models.AccidentRecord
		err error
	)
	rec.Location = strings.TrimSpace(fields[idx.location])

	if rec.Latitude, err = parseCoordinate(idx.names.Latitude, fields[idx.lat]); err != nil {
		return rec, err
	}
	if rec.Longitude, err = parseCoordinate(idx.names.Longitude, fields[idx.lon]); err != nil {
		return rec, err
	}

	counts := []struct {
		name  string
		pos   int
		field *int
	}{
		{idx.names.AccidentCount, idx.accidents, &rec.AccidentCount},
		{idx.names.Fatalities, idx.fatalities, &rec.Fatalities},
		{idx.names.SeriousInjuries, idx.serious, &rec.SeriousInjuries},
		{idx.names.ModerateInjuries, idx.moderate, &rec.ModerateInjuries},
		{idx.names.MinorInjuries, idx.minor, &rec.MinorInjuries},
	}
	for _, c := range counts {
		if *c.field, err = parseCount(c.name, fields[c.pos]); err != nil {
			return rec, err
		}
	}

	rec.ID = RecordID(row, rec.Location)
	return rec, nil
}

// parseCount принимает и "3", и "3.0": так pandas сохраняет целые колонки с пропусками
func parseCount(column, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, fmt.Errorf("column %s: invalid count %q", column, raw)
		}
		n = int(f)
	}
	if n < 0 {
		return 0, fmt.Errorf("column %s: negative count %d", column, n)
	}
	return n, nil
}

func parseCoordinate(column, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("column %s: invalid coordinate %q", column, raw)
	}
	return f, nil
}
