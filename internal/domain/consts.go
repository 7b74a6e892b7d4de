package domain

// Profile states. Only active profiles are scanned by the scheduler.
const (
	StateActive   = "active"
	StateInactive = "inactive"
)

// Supported user languages
const (
	LangEnglish = "en"
	LangRussian = "ru"
)

// Languages lists every language a user can switch to, in menu order
var Languages = []string{LangEnglish, LangRussian}

// DefaultLanguage is assigned to newly registered users
const DefaultLanguage = LangEnglish

// DefaultProfileName is the name of the profile created together with an account
const DefaultProfileName = "myfirstprofile"

// LocationNotFoundCode is the provider error code for a location query that resolves to nothing
const LocationNotFoundCode = 1006

// Callback data prefixes for inline keyboard actions
const (
	CallbackChangeProfile = "changeProfile->"
	CallbackDeleteProfile = "deleteProfile->"
)

// MaxProfileNameBytes keeps the callback payload within Telegram's 64 byte limit
const MaxProfileNameBytes = 64 - len(CallbackChangeProfile)
