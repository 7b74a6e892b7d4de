package locale

import (
	"fmt"
	"strings"

	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

type english struct{}

var _ Catalog = english{}

func (english) Welcome() string {
	return "Hi! Thank you for using our bot 🙂 \nFor help: /help"
}

func (english) Help() string {
	return "This bot will send you a daily weather forecast of the location at the given time. " +
		"Both location and time must be set by you beforehand. \n\n" +
		"How to use this bot: \n" +
		"1. If you haven't already sent the command \"/start\", now it's the best time for it. \n" +
		"2. Set your location by typing \"/location CITY\", " +
		"where instead of \"CITY\", you should put your city name. \n" +
		"3. Set your time for receiving a daily report by sending \"/time TIME\", " +
		"where \"TIME\" must be in the format \"23:59\" (24-hour format). " +
		"Time must be given in your location's timezone; " +
		"that's why setting the location before this step is important. \n" +
		"4. There are no steps left. Rest will be handled by the bot itself 😉 \n\n" +
		"Profiles: /list, /new NAME, /rename NAME, /change, /delete \n\n" +
		"Relax 🍹"
}

func (english) AccountNotFound() string {
	return "We couldn't find you in our database"
}

func (english) AccountCreating() string {
	return "Creating an account for you..."
}

func (english) Done() string {
	return "Done"
}

func (english) DefaultMark() string {
	return " (default)"
}

func (english) EncounteredError() string { return "Encountered an error, please try again later." }

func (english) NoLocationIndicatedAndNoDefault() string {
	return "You have neither indicated a location nor have a default location tied to your profile!"
}

func (english) NoLocationSet() string {
	return "You don't have a location set. \nUse \"/location CITY\" to set a location."
}

func (english) CurrentLocation(location string) string {
	return fmt.Sprintf("Your current location is %q", location)
}

func (english) NewLocation(location string) string {
	return fmt.Sprintf("Your location has been updated to %q", location)
}

func (english) InvalidTime() string {
	return "Time must be in the format \"23:59\" (24-hour format)."
}

func (english) NoTimeZone() string {
	return "Since you don't have a time zone set, Greenwich Mean Time (GMT) will be used. \n" +
		"You can change the time zone by changing your location (/location CITY)."
}

func (english) NoTimeSet() string {
	return "You don't have a time set. \nUse \"/time hh:mm\" to set a time."
}

func (english) CurrentTime(clock string) string {
	return fmt.Sprintf("Your time is set as %q", clock)
}

func (english) NewTime() string { return "Your time has been updated" }

func (english) NoLanguageIndicated() string { return "No language indicated!" }

func (english) LanguageNotRecognized(options []string) string {
	return fmt.Sprintf("Language not recognized. Possible options: %s.", strings.Join(options, ", "))
}

func (english) LanguageSet(lang string) string {
	return fmt.Sprintf("Your language is set as %q", lang)
}

func (english) DailyForecast(day entity.ForecastDay) string {
	return fmt.Sprintf("🌡 %s — %s˚C, 💨 %s km/h, ☔️ %s%% \nHumidity: %s%% \n",
		num(day.MaxTempC), num(day.MinTempC), num(day.MaxWindKph),
		num(day.DailyChanceOfRain), num(day.AvgHumidity))
}

func (english) Current(c entity.Current) string {
	return fmt.Sprintf("🌡 %s˚C (🧑 %s˚C), 💧 %s mm \n💨 %s km/h (🚀 %s km/h) %s, ☁️ %s%% \nHumidity: %s%%",
		num(c.TempC), num(c.FeelslikeC), num(c.PrecipMM),
		num(c.WindKph), num(c.GustKph), windArrow(c.WindDir),
		num(c.Cloud), num(c.Humidity))
}

func (english) Info(location, clock string) string {
	return fmt.Sprintf("Location: %s \nTime: %s", location, clock)
}

func (english) NoProfiles() string {
	return "No profiles found"
}

func (english) NoProfile() string {
	return "The profile could not be found"
}

func (english) ProfilesList() string { return "Your profiles:" }

func (english) NoNameForNewProfile() string {
	return "Please provide a name for the new profile. \nEx.: /new mynewprofile"
}

func (english) InvalidProfileName() string {
	return "This name cannot be used for a profile. Try a shorter one."
}

func (english) ProfileNameExists() string {
	return "There is already a profile with the given name. \nChoose another name"
}

func (english) NewProfile(name string) string {
	return fmt.Sprintf("A new profile %q has been created", name)
}

func (english) NoNameForRename() string {
	return "Please provide a new name for the default profile. \nEx.: /rename abettername"
}

func (english) RenamedProfile(name string) string {
	return fmt.Sprintf("Default profile has been renamed to %q", name)
}

func (english) ChangedProfile(name string) string {
	return fmt.Sprintf("Your default profile has been changed to %q", name)
}

func (english) ChooseProfileForChange() string { return "Choose the profile you want to change to:" }

func (english) DeletedProfile(name string) string {
	return fmt.Sprintf("The profile %q has been successfully deleted", name)
}

func (english) ChooseProfileForDelete() string { return "Choose the profile you want to delete:" }

func (english) CannotDeleteDefaultProfile() string {
	return "You cannot delete a default profile. \nFirst switch default profile to another one."
}
