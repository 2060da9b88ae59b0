package v1

import "time"

// SingleSelectionRequest DTO для одиночного выбора улицы
// @Description DTO для одиночного выбора улицы. Пустая строка означает первую улицу датасета.
type SingleSelectionRequest struct {
	Street string `json:"street" validate:"max=512"`
}

// MultiSelectionRequest DTO для множественного выбора улиц
// @Description DTO для множественного выбора улиц
type MultiSelectionRequest struct {
	Streets []string `json:"streets" validate:"max=200,dive,max=512"`
}

// DashboardRequest DTO с полным состоянием боковой панели
// @Description DTO с полным состоянием боковой панели
type DashboardRequest struct {
	SingleStreet string   `json:"single_street" validate:"max=512"`
	MultiStreets []string `json:"multi_streets" validate:"max=200,dive,max=512"`
}

type StreetsResponse struct {
	Streets []string `json:"streets"`
}

// StreetMetricResponse DTO метрики одиночного выбора
// @Description DTO метрики одиночного выбора
type StreetMetricResponse struct {
	Street         string `json:"street"`
	CanonicalKey   string `json:"canonical_key"`
	Label          string `json:"label"`
	TotalAccidents int    `json:"total_accidents"`
}

// SelectionResponse DTO метрики множественного выбора
// @Description DTO метрики множественного выбора
type SelectionResponse struct {
	Label          string   `json:"label"`
	CanonicalKeys  []string `json:"canonical_keys"`
	TotalAccidents int      `json:"total_accidents"`
}

type DonutSliceResponse struct {
	Category  string `json:"category"`
	Accidents int    `json:"accidents"`
	Color     string `json:"color"`
}

// DonutResponse DTO кольцевой диаграммы
// @Description DTO кольцевой диаграммы
type DonutResponse struct {
	Slices  []DonutSliceResponse `json:"slices"`
	Percent float64              `json:"percent"`
	Text    string               `json:"text"`
}

type MapPointResponse struct {
	ID        string  `json:"id"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accidents int     `json:"accidents"`
}

// MapResponse DTO точек карты
// @Description DTO точек карты
type MapResponse struct {
	Points []MapPointResponse `json:"points"`
	Zoom   int                `json:"zoom"`
}

// CorrelationResponse DTO тепловой карты корреляций
// @Description DTO тепловой карты корреляций
type CorrelationResponse struct {
	Title   string      `json:"title"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// SummaryResponse DTO сводки по датасету
// @Description DTO сводки по датасету
type SummaryResponse struct {
	TotalAccidents         int      `json:"total_accidents"`
	TotalFatalities        int      `json:"total_fatalities"`
	TotalSeriousInjuries   int      `json:"total_serious_injuries"`
	TotalModerateInjuries  int      `json:"total_moderate_injuries"`
	TotalMinorInjuries     int      `json:"total_minor_injuries"`
	AverageInjuredPerCrash int      `json:"average_injured_per_crash"`
	DataSourceURL          string   `json:"data_source_url"`
	Insights               []string `json:"insights"`
}

// DashboardResponse DTO со всеми панелями дашборда
// @Description DTO со всеми панелями дашборда
type DashboardResponse struct {
	Single  StreetMetricResponse `json:"single"`
	Multi   SelectionResponse    `json:"multi"`
	Donut   DonutResponse        `json:"donut"`
	Map     MapResponse          `json:"map"`
	Heatmap CorrelationResponse  `json:"heatmap"`
	Summary SummaryResponse      `json:"summary"`
}

type HealthResponse struct {
	Status   string    `json:"status"`
	Records  int       `json:"records"`
	LoadedAt time.Time `json:"loaded_at"`
}
