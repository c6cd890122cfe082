package entities

import "github.com/volatiletech/null/v8"

// EnvironmentalData holds the village's environmental statistics for one year.
type EnvironmentalData struct {
	Year          int          `json:"year"`
	AQI           null.Float64 `json:"aqi"`
	ForestCover   null.Float64 `json:"forest_cover"`
	ODF           null.Float64 `json:"odf"`
	Afforestation null.Float64 `json:"afforestation_data"`
	Precipitation null.Float64 `json:"precipitation"`
	WaterQuality  null.Float64 `json:"water_quality"`
}

// EnvironmentalDataInput represents the writable metrics. Year is taken from
// the body on create and from the path on update.
type EnvironmentalDataInput struct {
	Year          int          `json:"Year"`
	AQI           null.Float64 `json:"Aqi"`
	ForestCover   null.Float64 `json:"Forest_cover"`
	ODF           null.Float64 `json:"Odf"`
	Afforestation null.Float64 `json:"Afforestation_data"`
	Precipitation null.Float64 `json:"Precipitation"`
	WaterQuality  null.Float64 `json:"Water_quality"`
}
