package locale

import (
	"fmt"
	"strings"

	"github.com/diegoclair/forecast-bot/internal/domain/entity"
)

type russian struct{}

var _ Catalog = russian{}

func (russian) Welcome() string {
	return "Привет! Благодарим вас за использование нашего бота 🙂 \nДля справки: /help"
}

func (russian) Help() string {
	return "Этот бот будет отправлять вам ежедневный прогноз погоды про определённое место в определённое время. " +
		"И место, и время должны быть установлены вами заранее. \n\n" +
		"Как использовать этого бота: \n" +
		"1. Если вы еще не отправили команду \"/start\", сейчас самое подходящее время. \n" +
		"2. Установите свое местоположение, отправив \"/location CITY\", " +
		"где вместо \"CITY\" вы должны указать название своего города. \n" +
		"3. Установите время для получения ежедневного отчета, отправив \"/time TIME\", " +
		"где \"TIME\" должно быть в формате \"23:59\" (24-часовой формат). " +
		"Время должно быть указано в часовом поясе вашего местоположения; " +
		"вот почему важно установить местоположение перед этим шагом. \n" +
		"4. Шагов больше не осталось. Остальное будет обработано самим ботом 😉 \n\n" +
		"Профили: /list, /new NAME, /rename NAME, /change, /delete \n\n" +
		"Расслабьтесь 🍹"
}

func (russian) AccountNotFound() string {
	return "Мы не смогли найти вас в нашей базе данных"
}

func (russian) AccountCreating() string {
	return "Создание учетной записи..."
}

func (russian) Done() string {
	return "Готово"
}

func (russian) DefaultMark() string {
	return " (по умолчанию)"
}

func (russian) EncounteredError() string { return "Произошла ошибка, пожалуйста, повторите попытку позже." }

func (russian) NoLocationIndicatedAndNoDefault() string {
	return "Вы не указали местоположение и у вас нет привязанного местоположения к своему профилю!"
}

func (russian) NoLocationSet() string {
	return "У вас нет определенного местоположения. \nИспользуйте \"/location CITY\", чтобы указать местоположение."
}

func (russian) CurrentLocation(location string) string {
	return fmt.Sprintf("Ваше текущее местоположение %q", location)
}

func (russian) NewLocation(location string) string {
	return fmt.Sprintf("Ваше местоположение было изменено на %q", location)
}

func (russian) InvalidTime() string {
	return "Время должно быть в формате \"23:59\" (24-часовой формат)."
}

func (russian) NoTimeZone() string {
	return "Поскольку у вас не установлен часовой пояс, будет использоваться среднее время по Гринвичу (GMT).\n" +
		"Вы можете изменить часовой пояс, изменив свое местоположение (/location CITY)."
}

func (russian) NoTimeSet() string {
	return "У вас нет установленного времени. \nИспользуйте \"/time hh:mm\", чтобы установить время."
}

func (russian) CurrentTime(clock string) string {
	return fmt.Sprintf("Ваше время установлено как %q", clock)
}

func (russian) NewTime() string { return "Ваше время было обновлено" }

func (russian) NoLanguageIndicated() string { return "Язык не указан!" }

func (russian) LanguageNotRecognized(options []string) string {
	return fmt.Sprintf("Язык не распознан. Возможные варианты: %s.", strings.Join(options, ", "))
}

func (russian) LanguageSet(lang string) string {
	return fmt.Sprintf("Ваш язык установлен как %q", lang)
}

func (russian) DailyForecast(day entity.ForecastDay) string {
	return fmt.Sprintf("🌡 %s — %s˚C, 💨 %s км/ч, ☔️ %s%% \nВлажность: %s%%",
		decimalComma(day.MaxTempC), decimalComma(day.MinTempC), decimalComma(day.MaxWindKph),
		decimalComma(day.DailyChanceOfRain), decimalComma(day.AvgHumidity))
}

func (russian) Current(c entity.Current) string {
	return fmt.Sprintf("🌡 %s˚C (🧑 %s˚C), 💧 %s мм \n💨 %s км/ч (🚀 %s км/ч) %s, ☁️ %s%% \nВлажность: %s%%",
		decimalComma(c.TempC), decimalComma(c.FeelslikeC), decimalComma(c.PrecipMM),
		decimalComma(c.WindKph), decimalComma(c.GustKph), windArrow(c.WindDir),
		decimalComma(c.Cloud), decimalComma(c.Humidity))
}

func (russian) Info(location, clock string) string {
	return fmt.Sprintf("Местоположение: %s \nВремя: %s", location, clock)
}

func (russian) NoProfiles() string {
	return "Профили не найдены"
}

func (russian) NoProfile() string {
	return "Профиль не найден"
}

func (russian) ProfilesList() string { return "Ваши профили:" }

func (russian) NoNameForNewProfile() string {
	return "Пожалуйста, укажите имя для нового профиля. \nНапример: /new mynewprofile"
}

func (russian) InvalidProfileName() string {
	return "Это имя нельзя использовать для профиля. Попробуйте более короткое."
}

func (russian) ProfileNameExists() string {
	return "Уже есть профиль с указанным именем.\nВыберите другое имя"
}

func (russian) NewProfile(name string) string {
	return fmt.Sprintf("Создан новый профиль %q", name)
}

func (russian) NoNameForRename() string {
	return "Пожалуйста, укажите новое имя для профиля по умолчанию. \nПример: /rename abettername"
}

func (russian) RenamedProfile(name string) string {
	return fmt.Sprintf("Профиль по умолчанию был переименован в %q", name)
}

func (russian) ChangedProfile(name string) string {
	return fmt.Sprintf("Ваш профиль по умолчанию был изменен на %q.", name)
}

func (russian) ChooseProfileForChange() string {
	return "Выберите профиль, на который вы хотите сменить:"
}

func (russian) DeletedProfile(name string) string {
	return fmt.Sprintf("Профиль %q был успешно удален", name)
}

func (russian) ChooseProfileForDelete() string {
	return "Выберите профиль, который вы хотите удалить:"
}

func (russian) CannotDeleteDefaultProfile() string {
	return "Вы не можете удалить профиль по умолчанию. \nСначала переключите профиль по умолчанию на другой."
}
