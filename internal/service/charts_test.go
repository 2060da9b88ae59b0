package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/santiago_crash_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDonut(t *testing.T) {
	donut := BuildDonut("Main St, Block A", 25, 100)

	require.Len(t, donut.Slices, 2)
	assert.Equal(t, models.DonutSlice{Category: "Main St, Block A", Accidents: 25, Color: "#00EA42"}, donut.Slices[0])
	assert.Equal(t, models.DonutSlice{Category: OtherStreetsCategory, Accidents: 75, Color: "#BDC3C7"}, donut.Slices[1])
	assert.Equal(t, 25.0, donut.Percent)
	assert.Equal(t, "25.0%", donut.Text)
}

func TestBuildDonut_EmptyDataset(t *testing.T) {
	donut := BuildDonut("Main St", 0, 0)

	assert.Equal(t, 0.0, donut.Percent)
	assert.Equal(t, "0%", donut.Text)
	assert.Equal(t, 0, donut.Slices[1].Accidents)
}

func TestBuildDonut_FractionalPercent(t *testing.T) {
	donut := BuildDonut("Oak Rd", 1, 3)
	assert.Equal(t, "33.33%", donut.Text)
}

func TestBuildMap_SingleExactMatch(t *testing.T) {
	id := uuid.New()
	records := []models.AccidentRecord{
		{ID: id, Location: "Oak Rd", Latitude: -33.45, Longitude: -70.66, AccidentCount: 10},
		{ID: uuid.New(), Location: "Oak Rd Ext", AccidentCount: 5},
	}

	view := BuildMap(records, "Oak Rd", nil, 9)

	assert.Equal(t, 9, view.Zoom)
	require.Len(t, view.Points, 1)
	assert.Equal(t, models.MapPoint{
		ID:        id.String(),
		Location:  "Oak Rd",
		Latitude:  -33.45,
		Longitude: -70.66,
		Accidents: 10,
	}, view.Points[0])
}

func TestBuildMap_MultiTakesPrecedence(t *testing.T) {
	records := testRecords()

	view := BuildMap(records, "Oak Rd", []string{"Main St, Block A", "Main St, Block B"}, 11)

	require.Len(t, view.Points, 2)
	assert.Equal(t, "Main St, Block A", view.Points[0].Location)
	assert.Equal(t, "Main St, Block B", view.Points[1].Location)
}

func TestBuildMap_NoMatchesGivesEmptyPoints(t *testing.T) {
	view := BuildMap(testRecords(), "Nowhere", nil, 9)

	assert.NotNil(t, view.Points)
	assert.Empty(t, view.Points)
}

func TestBuildCorrelation(t *testing.T) {
	records := []models.AccidentRecord{
		{AccidentCount: 1, Fatalities: 0, SeriousInjuries: 1, ModerateInjuries: 2, MinorInjuries: 1},
		{AccidentCount: 2, Fatalities: 0, SeriousInjuries: 2, ModerateInjuries: 1, MinorInjuries: 2},
		{AccidentCount: 3, Fatalities: 0, SeriousInjuries: 3, ModerateInjuries: 0, MinorInjuries: 3},
	}

	m := BuildCorrelation(records)

	assert.Equal(t, SeverityColumns, m.Columns)
	assert.Equal(t, HeatmapTitle, m.Title)
	require.Len(t, m.Values, 5)
	for i := range m.Values {
		require.Len(t, m.Values[i], 5)
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := range m.Values[i] {
			assert.InDelta(t, m.Values[i][j], m.Values[j][i], 1e-12)
		}
	}

	// Fallecidos константна
	assert.Equal(t, 0.0, m.Values[0][4])
	// Graves ~ Accidentes
	assert.InDelta(t, 1.0, m.Values[1][4], 1e-9)
	// MenosGrave обратно Accidentes
	assert.InDelta(t, -1.0, m.Values[2][4], 1e-9)
}

func TestBuildCorrelation_SingleRow(t *testing.T) {
	m := BuildCorrelation([]models.AccidentRecord{{AccidentCount: 3, MinorInjuries: 1}})

	assert.Equal(t, 0.0, m.Values[3][4])
	assert.Equal(t, 1.0, m.Values[3][3])
}

func TestBuildSummary(t *testing.T) {
	records := []models.AccidentRecord{
		{AccidentCount: 2, Fatalities: 1, SeriousInjuries: 1, ModerateInjuries: 0, MinorInjuries: 1},
		{AccidentCount: 2, Fatalities: 0, SeriousInjuries: 0, ModerateInjuries: 1, MinorInjuries: 2},
	}

	s := BuildSummary(records)

	assert.Equal(t, 4, s.TotalAccidents)
	assert.Equal(t, 1, s.TotalFatalities)
	assert.Equal(t, 1, s.TotalSeriousInjuries)
	assert.Equal(t, 1, s.TotalModerateInjuries)
	assert.Equal(t, 3, s.TotalMinorInjuries)
	// 6 / 4 = 1.5 -> 2
	assert.Equal(t, 2, s.AverageInjuredPerCrash)
	assert.Equal(t, DataSourceURL, s.DataSourceURL)
	assert.Len(t, s.Insights, 3)
}

func TestBuildSummary_HalfEvenRounding(t *testing.T) {
	// 10 / 4 = 2.5 -> 2
	records := []models.AccidentRecord{{AccidentCount: 4, MinorInjuries: 10}}
	assert.Equal(t, 2, BuildSummary(records).AverageInjuredPerCrash)
}

func TestBuildSummary_NoAccidents(t *testing.T) {
	s := BuildSummary([]models.AccidentRecord{{Location: "Oak Rd", MinorInjuries: 3}})

	assert.Equal(t, 0, s.TotalAccidents)
	assert.Equal(t, 0, s.AverageInjuredPerCrash)
}

func TestDistinctLocations(t *testing.T) {
	records := []models.AccidentRecord{
		{Location: "B"}, {Location: "A"}, {Location: "B"}, {Location: "C"}, {Location: "A"},
	}
	assert.Equal(t, []string{"B", "A", "C"}, DistinctLocations(records))
}
