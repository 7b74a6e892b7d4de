package locale

import (
	"testing"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	assert.IsType(t, english{}, For(domain.LangEnglish))
	assert.IsType(t, russian{}, For(domain.LangRussian))
	assert.IsType(t, english{}, For("de"), "unknown languages fall back to English")
	assert.IsType(t, english{}, For(""))
}

func TestSupported(t *testing.T) {
	for _, lang := range domain.Languages {
		assert.True(t, Supported(lang), lang)
	}
	assert.False(t, Supported("fr"))
}

func TestDailyForecast(t *testing.T) {
	day := entity.ForecastDay{
		MaxTempC:          21.4,
		MinTempC:          12,
		MaxWindKph:        18.7,
		DailyChanceOfRain: 40,
		AvgHumidity:       63.5,
	}

	assert.Equal(t, "🌡 21.4 — 12˚C, 💨 18.7 km/h, ☔️ 40% \nHumidity: 63.5% \n", For(domain.LangEnglish).DailyForecast(day))
	assert.Equal(t, "🌡 21,4 — 12˚C, 💨 18,7 км/ч, ☔️ 40% \nВлажность: 63,5%", For(domain.LangRussian).DailyForecast(day))
}

func TestCurrent(t *testing.T) {
	current := entity.Current{
		TempC:      -3.5,
		FeelslikeC: -8,
		PrecipMM:   0.2,
		WindKph:    14.4,
		GustKph:    22.3,
		WindDir:    "WSW",
		Cloud:      75,
		Humidity:   86,
	}

	assert.Equal(t,
		"🌡 -3.5˚C (🧑 -8˚C), 💧 0.2 mm \n💨 14.4 km/h (🚀 22.3 km/h) ↙️, ☁️ 75% \nHumidity: 86%",
		For(domain.LangEnglish).Current(current))
	assert.Equal(t,
		"🌡 -3,5˚C (🧑 -8˚C), 💧 0,2 мм \n💨 14,4 км/ч (🚀 22,3 км/ч) ↙️, ☁️ 75% \nВлажность: 86%",
		For(domain.LangRussian).Current(current))
}

func TestWindArrow(t *testing.T) {
	tests := map[string]string{
		"N":   "⬆️",
		"s":   "⬇️",
		"NNE": "↗️",
		"ENE": "↗️",
		"ESE": "↘️",
		"SSE": "↘️",
		"WSW": "↙️",
		"WNW": "↖️",
		"NW":  "↖️",
		"E":   "➡️",
		"":    "",
		"XYZ": "",
	}

	for dir, want := range tests {
		assert.Equal(t, want, windArrow(dir), dir)
	}
}

func TestLanguageNotRecognized(t *testing.T) {
	assert.Equal(t, "Language not recognized. Possible options: en, ru.",
		For(domain.LangEnglish).LanguageNotRecognized(domain.Languages))
}

func TestQuotedNames(t *testing.T) {
	assert.Equal(t, `A new profile "дача" has been created`, For(domain.LangEnglish).NewProfile("дача"))
	assert.Equal(t, `Профиль "work" был успешно удален`, For(domain.LangRussian).DeletedProfile("work"))
}
