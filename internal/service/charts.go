package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/shenikar/santiago_crash_dashboard/internal/models"
)

const (
	OtherStreetsCategory = "Other Streets"
	HeatmapTitle         = "Correlation Heatmap of Accident Severity"
	DataSourceURL        = "https://www.kaggle.com/datasets/sandorabad/georeferenced-car-accidents-santiago-de-chile"

	selectedColor = "#00EA42"
	otherColor    = "#BDC3C7"
)

// SeverityColumns - порядок колонок в матрице корреляций
var SeverityColumns = []string{"Fallecidos", "Graves", "MenosGrave", "Leve", "Accidentes"}

var insights = []string{
	"The dashboard was able to show hotspot locations of each accident.",
	"The most deadly areas were streets that had the highest amount of crashes.",
	"There were correlations between severity of accidents and total amount of accidents.",
}

// TotalAccidents суммирует AccidentCount по всему датасету
func TotalAccidents(records []models.AccidentRecord) int {
	total := 0
	for i := range records {
		total += records[i].AccidentCount
	}
	return total
}

// BuildDonut строит кольцевую диаграмму "выбранная улица / остальные".
// label - исходная подпись из селектора, не канонический ключ.
func BuildDonut(label string, single, total int) models.DonutChart {
	percent := PercentOfTotal(single, total)
	return models.DonutChart{
		Slices: []models.DonutSlice{
			{Category: label, Accidents: single, Color: selectedColor},
			{Category: OtherStreetsCategory, Accidents: RemainderOf(single, total), Color: otherColor},
		},
		Percent: percent,
		Text:    percentText(total, percent),
	}
}

// percentText форматирует процент так же, как исходная панель: "0%" для
// пустого датасета, иначе число всегда с дробной частью ("25.0%").
func percentText(total int, percent float64) string {
	if total == 0 {
		return "0%"
	}
	s := strconv.FormatFloat(percent, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s + "%"
}

// BuildMap отбирает точки для карты. При непустом множественном выборе
// берутся строки с локацией, точно равной одной из подписей, иначе -
// строки с локацией, равной одиночному выбору.
func BuildMap(records []models.AccidentRecord, single string, multi []string, zoom int) models.MapView {
	wanted := make(map[string]struct{}, len(multi))
	for _, label := range multi {
		wanted[label] = struct{}{}
	}
	if len(multi) == 0 {
		wanted[single] = struct{}{}
	}

	points := make([]models.MapPoint, 0)
	for i := range records {
		r := &records[i]
		if _, ok := wanted[r.Location]; !ok {
			continue
		}
		points = append(points, models.MapPoint{
			ID:        r.ID.String(),
			Location:  r.Location,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
			Accidents: r.AccidentCount,
		})
	}
	return models.MapView{Points: points, Zoom: zoom}
}

// BuildCorrelation считает матрицу корреляций Пирсона по колонкам тяжести.
// Неопределённые коэффициенты (константная колонка, меньше двух строк) равны 0.
func BuildCorrelation(records []models.AccidentRecord) models.CorrelationMatrix {
	series := make([][]float64, len(SeverityColumns))
	for i := range series {
		series[i] = make([]float64, len(records))
	}
	for j := range records {
		r := &records[j]
		series[0][j] = float64(r.Fatalities)
		series[1][j] = float64(r.SeriousInjuries)
		series[2][j] = float64(r.ModerateInjuries)
		series[3][j] = float64(r.MinorInjuries)
		series[4][j] = float64(r.AccidentCount)
	}

	n := len(SeverityColumns)
	values := make([][]float64, n)
	for a := 0; a < n; a++ {
		values[a] = make([]float64, n)
		for b := 0; b < n; b++ {
			if a == b {
				values[a][b] = 1
				continue
			}
			values[a][b] = pearson(series[a], series[b])
		}
	}

	columns := make([]string, n)
	copy(columns, SeverityColumns)
	return models.CorrelationMatrix{Columns: columns, Values: values, Title: HeatmapTitle}
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXX, sumYY, sumXY float64
	for i := range xs {
		x, y := xs[i], ys[i]
		sumX += x
		sumY += y
		sumXX += x * x
		sumYY += y * y
		sumXY += x * y
	}
	denom := math.Sqrt((n*sumXX - sumX*sumX) * (n*sumYY - sumY*sumY))
	if denom == 0 {
		return 0
	}
	r := (n*sumXY - sumX*sumY) / denom
	switch {
	case math.IsNaN(r) || math.IsInf(r, 0):
		return 0
	case r > 1:
		return 1
	case r < -1:
		return -1
	}
	return r
}

// BuildSummary собирает сводку по всему датасету
func BuildSummary(records []models.AccidentRecord) models.Summary {
	s := models.Summary{
		DataSourceURL: DataSourceURL,
		Insights:      append([]string(nil), insights...),
	}
	injured := 0
	for i := range records {
		r := &records[i]
		s.TotalAccidents += r.AccidentCount
		s.TotalFatalities += r.Fatalities
		s.TotalSeriousInjuries += r.SeriousInjuries
		s.TotalModerateInjuries += r.ModerateInjuries
		s.TotalMinorInjuries += r.MinorInjuries
		injured += r.Injured()
	}
	if s.TotalAccidents > 0 {
		s.AverageInjuredPerCrash = int(math.RoundToEven(float64(injured) / float64(s.TotalAccidents)))
	}
	return s
}

// DistinctLocations возвращает уникальные подписи в порядке первого появления
func DistinctLocations(records []models.AccidentRecord) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for i := range records {
		loc := records[i].Location
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return out
}
