package models

import "time"

// StreetMetric - метрика по одной выбранной улице
type StreetMetric struct {
	Street         string `json:"street"`
	CanonicalKey   string `json:"canonical_key"`
	Label          string `json:"label"`
	TotalAccidents int    `json:"total_accidents"`
}

// DonutSlice - сектор кольцевой диаграммы
type DonutSlice struct {
	Category  string `json:"category"`
	Accidents int    `json:"accidents"`
	Color     string `json:"color"`
}

// DonutChart - доля выбранной улицы относительно остальных
type DonutChart struct {
	Slices  []DonutSlice `json:"slices"`
	Percent float64      `json:"percent"`
	Text    string       `json:"text"`
}

// MapPoint - точка на карте
type MapPoint struct {
	ID        string  `json:"id"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accidents int     `json:"accidents"`
}

type MapView struct {
	Points []MapPoint `json:"points"`
	Zoom   int        `json:"zoom"`
}

// CorrelationMatrix - симметричная матрица корреляций Пирсона, Values[i][j]
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
	Title   string      `json:"title"`
}

// Summary - текстовая сводка по всему датасету
type Summary struct {
	TotalAccidents         int      `json:"total_accidents"`
	TotalFatalities        int      `json:"total_fatalities"`
	TotalSeriousInjuries   int      `json:"total_serious_injuries"`
	TotalModerateInjuries  int      `json:"total_moderate_injuries"`
	TotalMinorInjuries     int      `json:"total_minor_injuries"`
	AverageInjuredPerCrash int      `json:"average_injured_per_crash"`
	DataSourceURL          string   `json:"data_source_url"`
	Insights               []string `json:"insights"`
}

// Dashboard - все панели для одного состояния боковой панели
type Dashboard struct {
	Single  StreetMetric       `json:"single"`
	Multi   SelectionAggregate `json:"multi"`
	Donut   DonutChart         `json:"donut"`
	Map     MapView            `json:"map"`
	Heatmap CorrelationMatrix  `json:"heatmap"`
	Summary Summary            `json:"summary"`
}

// DatasetHealth - состояние загруженного датасета
type DatasetHealth struct {
	Records  int       `json:"records"`
	LoadedAt time.Time `json:"loaded_at"`
}
