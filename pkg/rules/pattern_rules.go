package rules

import "regexp"

// Patterns are whole-string matches. The A-z ranges are kept as written in
// the rule language's reference table: they also admit [ \ ] ^ _ and `.
var (
	alphanumericPattern = regexp.MustCompile(`(?i)^[\w]+$`)
	alphabeticPattern   = regexp.MustCompile(`(?i)^[A-z]+$`)
	numericPattern      = regexp.MustCompile(`^[\d\.]+$`)
	emailPattern        = regexp.MustCompile(`(?i)^[\w\.\-]+@[\w\.\-]+\.[A-z\.]{2,}$`)
	zipPattern          = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	stateUSAPattern     = regexp.MustCompile(`^[A-z]{2}$`)
	phoneUSAPattern     = regexp.MustCompile(`^(\()?\d{3}(\))?[\.\-\s]\d{3}[\.\-\s]\d{4}$`)
	datePattern         = regexp.MustCompile(`^(\d{4}[/\-]\d{1,2}[/\-]{1,2}\d{2}|\d{1,2}[/\-]\d{1,2}[/\-]\d{2}(\d{2})?)$`)
	yearPattern         = regexp.MustCompile(`^\d{4}$`)
	urlPattern          = regexp.MustCompile(`^((http|ftp|https)://)?[\w-]+(\.[\w-]+)+([\w.,@?^=%&amp;:/~+#-]*[\w@?^=%&amp;/~+#-])?$`)
	moneyUSAPattern     = regexp.MustCompile(`^\d+\.\d{2}$`)
	moneyEuroPattern    = regexp.MustCompile(`^\d+,\d{2}$`)
	creditCardPattern   = regexp.MustCompile(`^\d{4}[\s\-]?\d{4}[\s\-]?\d{4}[\s\-]?\d{4}$`)
)

func pattern(re *regexp.Regexp) Predicate {
	return func(_ Scope, value string, _ Params) bool {
		return IsEmpty(value) || re.MatchString(value)
	}
}

var (
	// Alphanumeric allows word characters only: letters, digits and underscore.
	Alphanumeric = pattern(alphanumericPattern)
	Alphabetic   = pattern(alphabeticPattern)
	// Numeric allows digits and dots, so "1.2.3" passes.
	Numeric    = pattern(numericPattern)
	Email      = pattern(emailPattern)
	Zip        = pattern(zipPattern)
	StateUSA   = pattern(stateUSAPattern)
	PhoneUSA   = pattern(phoneUSAPattern)
	Date       = pattern(datePattern)
	Year       = pattern(yearPattern)
	URL        = pattern(urlPattern)
	MoneyUSA   = pattern(moneyUSAPattern)
	MoneyEuro  = pattern(moneyEuroPattern)
	CreditCard = pattern(creditCardPattern)
)
