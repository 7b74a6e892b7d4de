package entity

// Location is a place as resolved by the weather provider
type Location struct {
	Name    string
	Region  string
	Country string
	TzID    string
}

// Current holds the current conditions at a location
type Current struct {
	TempC      float64
	FeelslikeC float64
	PrecipMM   float64
	WindKph    float64
	GustKph    float64
	WindDir    string
	Cloud      float64
	Humidity   float64
}

// ForecastDay is the daily aggregate of a forecast
type ForecastDay struct {
	Date              string
	MaxTempC          float64
	MinTempC          float64
	MaxWindKph        float64
	DailyChanceOfRain float64
	AvgHumidity       float64
}

type CurrentWeather struct {
	Location Location
	Current  Current
}

// ForecastWeather is a forecast snapshot, tagged with the canonical location name
type ForecastWeather struct {
	Location Location
	Days     []ForecastDay
}

// Today returns the first forecast day
func (f *ForecastWeather) Today() (ForecastDay, bool) {
	if f == nil || len(f.Days) == 0 {
		return ForecastDay{}, false
	}
	return f.Days[0], true
}
