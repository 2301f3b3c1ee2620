// Package catalog holds the static country to dubbing-language mapping
// used to populate the selection inputs. The data is immutable reference
// data built once at process start.
package catalog

import "global-translator/internal/domain"

var countries = []domain.Country{
	{
		Code: "IN", Name: "India", Flag: "🇮🇳",
		Languages: []domain.Language{
			{Code: "hi", Name: "Hindi", NativeName: "हिन्दी"},
			{Code: "ta", Name: "Tamil", NativeName: "தமிழ்"},
			{Code: "te", Name: "Telugu", NativeName: "తెలుగు"},
			{Code: "kn", Name: "Kannada", NativeName: "ಕನ್ನಡ"},
			{Code: "ml", Name: "Malayalam", NativeName: "മലയാളം"},
			{Code: "gu", Name: "Gujarati", NativeName: "ગુજરાતી"},
			{Code: "mr", Name: "Marathi", NativeName: "मराठी"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "US", Name: "United States", Flag: "🇺🇸",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
			{Code: "es", Name: "Spanish", NativeName: "Español"},
		},
	},
	{
		Code: "GB", Name: "United Kingdom", Flag: "🇬🇧",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "FR", Name: "France", Flag: "🇫🇷",
		Languages: []domain.Language{
			{Code: "fr", Name: "French", NativeName: "Français"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "DE", Name: "Germany", Flag: "🇩🇪",
		Languages: []domain.Language{
			{Code: "de", Name: "German", NativeName: "Deutsch"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "ES", Name: "Spain", Flag: "🇪🇸",
		Languages: []domain.Language{
			{Code: "es", Name: "Spanish", NativeName: "Español"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "IT", Name: "Italy", Flag: "🇮🇹",
		Languages: []domain.Language{
			{Code: "it", Name: "Italian", NativeName: "Italiano"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "PT", Name: "Portugal", Flag: "🇵🇹",
		Languages: []domain.Language{
			{Code: "pt", Name: "Portuguese", NativeName: "Português"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "BR", Name: "Brazil", Flag: "🇧🇷",
		Languages: []domain.Language{
			{Code: "pt", Name: "Portuguese (Brazilian)", NativeName: "Português (Brasileiro)"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "MX", Name: "Mexico", Flag: "🇲🇽",
		Languages: []domain.Language{
			{Code: "es", Name: "Spanish", NativeName: "Español"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "AR", Name: "Argentina", Flag: "🇦🇷",
		Languages: []domain.Language{
			{Code: "es", Name: "Spanish", NativeName: "Español"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "JP", Name: "Japan", Flag: "🇯🇵",
		Languages: []domain.Language{
			{Code: "ja", Name: "Japanese", NativeName: "日本語"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "CN", Name: "China", Flag: "🇨🇳",
		Languages: []domain.Language{
			{Code: "zh", Name: "Mandarin Chinese", NativeName: "中文"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "KR", Name: "South Korea", Flag: "🇰🇷",
		Languages: []domain.Language{
			{Code: "ko", Name: "Korean", NativeName: "한국어"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "SG", Name: "Singapore", Flag: "🇸🇬",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
			{Code: "zh", Name: "Chinese", NativeName: "中文"},
		},
	},
	{
		Code: "MY", Name: "Malaysia", Flag: "🇲🇾",
		Languages: []domain.Language{
			{Code: "ms", Name: "Malay", NativeName: "Bahasa Melayu"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "TH", Name: "Thailand", Flag: "🇹🇭",
		Languages: []domain.Language{
			{Code: "th", Name: "Thai", NativeName: "ภาษาไทย"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "VN", Name: "Vietnam", Flag: "🇻🇳",
		Languages: []domain.Language{
			{Code: "vi", Name: "Vietnamese", NativeName: "Tiếng Việt"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "ID", Name: "Indonesia", Flag: "🇮🇩",
		Languages: []domain.Language{
			{Code: "id", Name: "Indonesian", NativeName: "Bahasa Indonesia"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "PH", Name: "Philippines", Flag: "🇵🇭",
		Languages: []domain.Language{
			{Code: "tl", Name: "Filipino", NativeName: "Filipino"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "SA", Name: "Saudi Arabia", Flag: "🇸🇦",
		Languages: []domain.Language{
			{Code: "ar", Name: "Arabic", NativeName: "العربية"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "AE", Name: "United Arab Emirates", Flag: "🇦🇪",
		Languages: []domain.Language{
			{Code: "ar", Name: "Arabic", NativeName: "العربية"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "ZA", Name: "South Africa", Flag: "🇿🇦",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
			{Code: "zu", Name: "Zulu", NativeName: "isiZulu"},
		},
	},
	{
		Code: "NG", Name: "Nigeria", Flag: "🇳🇬",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
			{Code: "yo", Name: "Yoruba", NativeName: "Yorùbá"},
		},
	},
	{
		Code: "EG", Name: "Egypt", Flag: "🇪🇬",
		Languages: []domain.Language{
			{Code: "ar", Name: "Arabic", NativeName: "العربية"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "TR", Name: "Turkey", Flag: "🇹🇷",
		Languages: []domain.Language{
			{Code: "tr", Name: "Turkish", NativeName: "Türkçe"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "RU", Name: "Russia", Flag: "🇷🇺",
		Languages: []domain.Language{
			{Code: "ru", Name: "Russian", NativeName: "Русский"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "PL", Name: "Poland", Flag: "🇵🇱",
		Languages: []domain.Language{
			{Code: "pl", Name: "Polish", NativeName: "Polski"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "NL", Name: "Netherlands", Flag: "🇳🇱",
		Languages: []domain.Language{
			{Code: "nl", Name: "Dutch", NativeName: "Nederlands"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "BE", Name: "Belgium", Flag: "🇧🇪",
		Languages: []domain.Language{
			{Code: "nl", Name: "Dutch", NativeName: "Nederlands"},
			{Code: "fr", Name: "French", NativeName: "Français"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "CH", Name: "Switzerland", Flag: "🇨🇭",
		Languages: []domain.Language{
			{Code: "de", Name: "German", NativeName: "Deutsch"},
			{Code: "fr", Name: "French", NativeName: "Français"},
			{Code: "it", Name: "Italian", NativeName: "Italiano"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "SE", Name: "Sweden", Flag: "🇸🇪",
		Languages: []domain.Language{
			{Code: "sv", Name: "Swedish", NativeName: "Svenska"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "NO", Name: "Norway", Flag: "🇳🇴",
		Languages: []domain.Language{
			{Code: "no", Name: "Norwegian", NativeName: "Norsk"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "DK", Name: "Denmark", Flag: "🇩🇰",
		Languages: []domain.Language{
			{Code: "da", Name: "Danish", NativeName: "Dansk"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "FI", Name: "Finland", Flag: "🇫🇮",
		Languages: []domain.Language{
			{Code: "fi", Name: "Finnish", NativeName: "Suomi"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "GR", Name: "Greece", Flag: "🇬🇷",
		Languages: []domain.Language{
			{Code: "el", Name: "Greek", NativeName: "Ελληνικά"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "HU", Name: "Hungary", Flag: "🇭🇺",
		Languages: []domain.Language{
			{Code: "hu", Name: "Hungarian", NativeName: "Magyar"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "CZ", Name: "Czech Republic", Flag: "🇨🇿",
		Languages: []domain.Language{
			{Code: "cs", Name: "Czech", NativeName: "Čeština"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "AT", Name: "Austria", Flag: "🇦🇹",
		Languages: []domain.Language{
			{Code: "de", Name: "German", NativeName: "Deutsch"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "CA", Name: "Canada", Flag: "🇨🇦",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
			{Code: "fr", Name: "French", NativeName: "Français"},
		},
	},
	{
		Code: "AU", Name: "Australia", Flag: "🇦🇺",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "NZ", Name: "New Zealand", Flag: "🇳🇿",
		Languages: []domain.Language{
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "HK", Name: "Hong Kong", Flag: "🇭🇰",
		Languages: []domain.Language{
			{Code: "zh", Name: "Cantonese", NativeName: "粵語"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
	{
		Code: "TW", Name: "Taiwan", Flag: "🇹🇼",
		Languages: []domain.Language{
			{Code: "zh", Name: "Traditional Chinese", NativeName: "繁體中文"},
			{Code: "en", Name: "English", NativeName: "English"},
		},
	},
}

// Countries returns the ordered list of supported markets.
func Countries() []domain.Country {
	out := make([]domain.Country, len(countries))
	copy(out, countries)
	return out
}

// LanguagesFor returns the ordered dubbing languages offered for a
// country code. Unknown codes yield an empty list, not an error.
func LanguagesFor(countryCode string) []domain.Language {
	for _, country := range countries {
		if country.Code == countryCode {
			out := make([]domain.Language, len(country.Languages))
			copy(out, country.Languages)
			return out
		}
	}
	return nil
}

// HasCountry reports whether the catalog knows the given country code.
func HasCountry(countryCode string) bool {
	for _, country := range countries {
		if country.Code == countryCode {
			return true
		}
	}
	return false
}
