// Package locale renders every user-facing message. Each message kind is a method of
// Catalog, so a language that misses a message does not compile.
package locale

import (
	"strconv"
	"strings"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

// Catalog renders all messages for one language
type Catalog interface {
	Welcome() string
	Help() string
	AccountNotFound() string
	AccountCreating() string
	Done() string
	DefaultMark() string
	EncounteredError() string

	NoLocationIndicatedAndNoDefault() string
	NoLocationSet() string
	CurrentLocation(location string) string
	NewLocation(location string) string

	InvalidTime() string
	NoTimeZone() string
	NoTimeSet() string
	CurrentTime(clock string) string
	NewTime() string

	NoLanguageIndicated() string
	LanguageNotRecognized(options []string) string
	LanguageSet(lang string) string

	DailyForecast(day entity.ForecastDay) string
	Current(current entity.Current) string
	Info(location, clock string) string

	NoProfiles() string
	NoProfile() string
	ProfilesList() string
	NoNameForNewProfile() string
	InvalidProfileName() string
	ProfileNameExists() string
	NewProfile(name string) string
	NoNameForRename() string
	RenamedProfile(name string) string
	ChangedProfile(name string) string
	ChooseProfileForChange() string
	DeletedProfile(name string) string
	ChooseProfileForDelete() string
	CannotDeleteDefaultProfile() string
}

var catalogs = map[string]Catalog{
	domain.LangEnglish: english{},
	domain.LangRussian: russian{},
}

// For returns the catalog of lang, falling back to English
func For(lang string) Catalog {
	if c, ok := catalogs[lang]; ok {
		return c
	}
	return catalogs[domain.DefaultLanguage]
}

// Supported reports whether lang has a catalog
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// decimalComma formats v with a comma as decimal separator
func decimalComma(v float64) string {
	return strings.Replace(num(v), ".", ",", 1)
}

// windArrow maps a compass direction such as "NNE" or "WSW" to an arrow emoji
func windArrow(dir string) string {
	dir = strings.ToUpper(dir)
	if len(dir) == 3 {
		var b strings.Builder
		for _, r := range dir {
			if !strings.ContainsRune(b.String(), r) {
				b.WriteRune(r)
			}
		}
		dir = b.String()
	}
	if len(dir) == 2 && (dir[0] == 'E' || dir[0] == 'W') {
		dir = string([]byte{dir[1], dir[0]})
	}

	switch dir {
	case "N":
		return "⬆️"
	case "E":
		return "➡️"
	case "S":
		return "⬇️"
	case "W":
		return "⬅️"
	case "NE":
		return "↗️"
	case "SE":
		return "↘️"
	case "SW":
		return "↙️"
	case "NW":
		return "↖️"
	}
	return ""
}
