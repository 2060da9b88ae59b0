package v1

import "github.com/shenikar/santiago_crash_dashboard/internal/models"

// MultiStreetLabel - подпись метрики множественного выбора
const MultiStreetLabel = "Crashes on multiple streets:"

func ModelToStreetMetricResponse(m *models.StreetMetric) StreetMetricResponse {
	return StreetMetricResponse{
		Street:         m.Street,
		CanonicalKey:   m.CanonicalKey,
		Label:          m.Label,
		TotalAccidents: m.TotalAccidents,
	}
}

func ModelToSelectionResponse(agg *models.SelectionAggregate) SelectionResponse {
	keys := agg.CanonicalKeys
	if keys == nil {
		keys = []string{}
	}
	return SelectionResponse{
		Label:          MultiStreetLabel,
		CanonicalKeys:  keys,
		TotalAccidents: agg.TotalAccidents,
	}
}

func ModelToDonutResponse(d *models.DonutChart) DonutResponse {
	slices := make([]DonutSliceResponse, 0, len(d.Slices))
	for _, s := range d.Slices {
		slices = append(slices, DonutSliceResponse{
			Category:  s.Category,
			Accidents: s.Accidents,
			Color:     s.Color,
		})
	}
	return DonutResponse{Slices: slices, Percent: d.Percent, Text: d.Text}
}

func ModelToMapResponse(m *models.MapView) MapResponse {
	points := make([]MapPointResponse, 0, len(m.Points))
	for _, p := range m.Points {
		points = append(points, MapPointResponse{
			ID:        p.ID,
			Location:  p.Location,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Accidents: p.Accidents,
		})
	}
	return MapResponse{Points: points, Zoom: m.Zoom}
}

func ModelToCorrelationResponse(m *models.CorrelationMatrix) CorrelationResponse {
	return CorrelationResponse{
		Title:   m.Title,
		Columns: m.Columns,
		Values:  m.Values,
	}
}

func ModelToSummaryResponse(s *models.Summary) SummaryResponse {
	return SummaryResponse{
		TotalAccidents:         s.TotalAccidents,
		TotalFatalities:        s.TotalFatalities,
		TotalSeriousInjuries:   s.TotalSeriousInjuries,
		TotalModerateInjuries:  s.TotalModerateInjuries,
		TotalMinorInjuries:     s.TotalMinorInjuries,
		AverageInjuredPerCrash: s.AverageInjuredPerCrash,
		DataSourceURL:          s.DataSourceURL,
		Insights:               s.Insights,
	}
}

func ModelToDashboardResponse(d *models.Dashboard) DashboardResponse {
	return DashboardResponse{
		Single:  ModelToStreetMetricResponse(&d.Single),
		Multi:   ModelToSelectionResponse(&d.Multi),
		Donut:   ModelToDonutResponse(&d.Donut),
		Map:     ModelToMapResponse(&d.Map),
		Heatmap: ModelToCorrelationResponse(&d.Heatmap),
		Summary: ModelToSummaryResponse(&d.Summary),
	}
}
