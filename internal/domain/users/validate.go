package users

import "regexp"

// Character class for display names: ASCII letters/digits, hiragana, katakana
// (with the long-vowel mark), CJK ideographs, the iteration mark, space,
// hyphen and underscore.
var nameRe = regexp.MustCompile(`^[a-zA-Z0-9ぁ-んァ-ヶー一-龠々\s\-_]+$`)

// Japanese phone numbers, with or without hyphens
// (e.g. 03-1234-5678, 090-1234-5678, 0312345678).
var phoneRe = regexp.MustCompile(`^(0\d{1,4}-?\d{1,4}-?\d{4}|0\d{9,10})$`)

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsEmailValid(email string) bool {
	return emailRe.MatchString(email)
}

func IsNameValid(name string) bool {
	runes := []rune(name)
	if len(runes) < 1 || len(runes) > 50 {
		return false
	}
	return nameRe.MatchString(name)
}

// IsPhoneValid applies the Japanese phone pattern. The empty string is valid
// because phone is optional; callers treat "" as absent.
func IsPhoneValid(phone string) bool {
	if phone == "" {
		return true
	}
	return phoneRe.MatchString(phone)
}

func IsCompanyValid(company string) bool {
	if company == "" {
		return true
	}
	return len([]rune(company)) <= 100
}
