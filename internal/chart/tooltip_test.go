package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/windchart/backend-go/internal/models"
)

func TestTooltipLabel(t *testing.T) {
	series := []models.StationSeries{
		{
			Name: "solasanden",
			Timeseries: []models.ForecastPoint{
				{Details: map[string]float64{models.FieldWindSpeed: 6.33, models.FieldWindDirection: 200}},
				{Details: map[string]float64{models.FieldWindSpeed: 3, models.FieldWindDirection: 12.5}},
				{Details: map[string]float64{models.FieldWindDirection: 90}},
				{Details: map[string]float64{models.FieldWindSpeed: 1}},
			},
		},
	}

	tests := []struct {
		name         string
		datasetIndex int
		dataIndex    int
		field        string
		want         string
		wantOK       bool
	}{
		{name: "speed and direction", dataIndex: 0, field: models.FieldWindSpeed, want: "solasanden (SSW 200) kn:12.3", wantOK: true},
		{name: "fractional direction", dataIndex: 1, field: models.FieldWindSpeed, want: "solasanden (NNE 12.5) kn:5.8", wantOK: true},
		{name: "missing field", dataIndex: 2, field: models.FieldWindSpeed, want: "solasanden (E 90) kn:-", wantOK: true},
		{name: "missing direction", dataIndex: 3, field: models.FieldWindSpeed, want: "solasanden kn:1.9", wantOK: true},
		{name: "dataset out of range", datasetIndex: 1, field: models.FieldWindSpeed},
		{name: "point out of range", dataIndex: 4, field: models.FieldWindSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TooltipLabel(series, tt.datasetIndex, tt.dataIndex, tt.field)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
