package weather

import "github.com/diegoclair/forecast-bot/internal/domain/entity"

type errorCarrier interface {
	providerError() *apiError
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type locationPayload struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
	TzID    string `json:"tz_id"`
}

func (l locationPayload) toEntity() entity.Location {
	return entity.Location{
		Name:    l.Name,
		Region:  l.Region,
		Country: l.Country,
		TzID:    l.TzID,
	}
}

type currentPayload struct {
	Error    *apiError       `json:"error"`
	Location locationPayload `json:"location"`
	Current  struct {
		TempC      float64 `json:"temp_c"`
		FeelslikeC float64 `json:"feelslike_c"`
		PrecipMM   float64 `json:"precip_mm"`
		WindKph    float64 `json:"wind_kph"`
		GustKph    float64 `json:"gust_kph"`
		WindDir    string  `json:"wind_dir"`
		Cloud      float64 `json:"cloud"`
		Humidity   float64 `json:"humidity"`
	} `json:"current"`
}

func (p *currentPayload) providerError() *apiError { return p.Error }

func (p *currentPayload) toEntity() *entity.CurrentWeather {
	return &entity.CurrentWeather{
		Location: p.Location.toEntity(),
		Current: entity.Current{
			TempC:      p.Current.TempC,
			FeelslikeC: p.Current.FeelslikeC,
			PrecipMM:   p.Current.PrecipMM,
			WindKph:    p.Current.WindKph,
			GustKph:    p.Current.GustKph,
			WindDir:    p.Current.WindDir,
			Cloud:      p.Current.Cloud,
			Humidity:   p.Current.Humidity,
		},
	}
}

type forecastPayload struct {
	Error    *apiError       `json:"error"`
	Location locationPayload `json:"location"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				MaxTempC          float64 `json:"maxtemp_c"`
				MinTempC          float64 `json:"mintemp_c"`
				MaxWindKph        float64 `json:"maxwind_kph"`
				DailyChanceOfRain float64 `json:"daily_chance_of_rain"`
				AvgHumidity       float64 `json:"avghumidity"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

func (p *forecastPayload) providerError() *apiError { return p.Error }

func (p *forecastPayload) toEntity() *entity.ForecastWeather {
	days := make([]entity.ForecastDay, 0, len(p.Forecast.ForecastDay))
	for _, fd := range p.Forecast.ForecastDay {
		days = append(days, entity.ForecastDay{
			Date:              fd.Date,
			MaxTempC:          fd.Day.MaxTempC,
			MinTempC:          fd.Day.MinTempC,
			MaxWindKph:        fd.Day.MaxWindKph,
			DailyChanceOfRain: fd.Day.DailyChanceOfRain,
			AvgHumidity:       fd.Day.AvgHumidity,
		})
	}

	return &entity.ForecastWeather{
		Location: p.Location.toEntity(),
		Days:     days,
	}
}
