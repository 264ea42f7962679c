package registration

import (
	"regexp"
	"strings"

	"github.com/cykrypt/registration/pkg/sanitizer"
	"github.com/cykrypt/registration/pkg/validator"
)

// repeatRun is the length of a same-character run treated as junk input.
const repeatRun = 5

// phoneDigits is the length of a national phone number.
const phoneDigits = 10

// countryCode is stripped from the front of every phone number.
const countryCode = "91"

const space = sanitizer.SpaceClass

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z` + space + `]+$`)
	emailPattern   = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	collegePattern = regexp.MustCompile(`^[A-Za-z` + space + `.,&\-'()]+$`)
	spaceRun       = regexp.MustCompile(`[` + space + `]+`)
	deptSeparators = regexp.MustCompile(`[` + space + `/\-]+`)
)

// emailTypos maps frequently mistyped domains to the intended one.
var emailTypos = map[string]string{
	"gmial.com":   "gmail.com",
	"gmai.com":    "gmail.com",
	"gmail.co":    "gmail.com",
	"gamil.com":   "gmail.com",
	"yahooo.com":  "yahoo.com",
	"yaho.com":    "yahoo.com",
	"hotmial.com": "hotmail.com",
	"outlok.com":  "outlook.com",
}

// Result is the outcome of validating a single field. Warning is advisory
// and never makes a field invalid.
type Result struct {
	Valid   bool
	Error   string
	Warning string
}

func result(err error) Result {
	if verr, ok := validator.AsValidationError(err); ok {
		return Result{Error: verr.Message}
	}
	return Result{Valid: true}
}

// ValidateName accepts person names made of letters and spaces.
func ValidateName(value string) Result {
	v := sanitizer.Text(value)
	return result(validator.First(
		validator.Required("name", v).WithMessage("Name is required"),
		validator.MinLen("name", v, 2).WithMessage("Name must be at least 2 characters"),
		validator.Matches("name", v, namePattern, "letters and spaces").WithMessage("Name must contain only alphabets and spaces"),
		validator.NoRepeatedRun("name", stripSpaces(v), repeatRun).WithMessage("Name appears invalid (repeated characters)"),
	))
}

// ValidatePhone accepts ten-digit numbers, optionally written with spaces,
// hyphens, a leading plus sign and the 91 country code.
func ValidatePhone(value string) Result {
	v := CanonicalPhone(value)
	return result(validator.First(
		validator.Required("phone", v).WithMessage("Phone number is required"),
		validator.Digits("phone", v).WithMessage("Phone number must contain only digits"),
		validator.Len("phone", v, phoneDigits).WithMessage("Phone number must be exactly 10 digits"),
		validator.NoRepeatedRun("phone", v, repeatRun).WithMessage("Phone number appears invalid"),
	))
}

// CanonicalPhone returns the national form of a phone number: separators
// removed and a leading 91 dropped. A ten-digit number that itself starts
// with 91 therefore loses two digits and fails ValidatePhone.
func CanonicalPhone(value string) string {
	return strings.TrimPrefix(sanitizer.NormalizePhone(value), countryCode)
}

// ValidateEmail checks the address shape and attaches a warning when the
// domain looks like a common typo.
func ValidateEmail(value string) Result {
	v := sanitizer.NormalizeEmail(value)
	local, domain, _ := strings.Cut(v, "@")

	res := result(validator.First(
		validator.Required("email", v).WithMessage("Email is required"),
		validator.Matches("email", v, emailPattern, "email").WithMessage("Enter a valid email address"),
		validator.NoRepeatedRun("email", local, repeatRun).WithMessage("Email appears invalid"),
	))
	if res.Valid {
		if want, ok := emailTypos[domain]; ok {
			res.Warning = "Did you mean " + local + "@" + want + "?"
		}
	}
	return res
}

// ValidateTeamName accepts 2 to 30 characters.
func ValidateTeamName(value string) Result {
	v := sanitizer.Text(value)
	return result(validator.First(
		validator.Required("teamName", v).WithMessage("Team name is required"),
		validator.MinLen("teamName", v, 2).WithMessage("Team name must be at least 2 characters"),
		validator.MaxLen("teamName", v, 30).WithMessage("Team name must be at most 30 characters"),
		validator.NoRepeatedRun("teamName", stripSpaces(v), repeatRun).WithMessage("Team name appears invalid (repeated characters)"),
	))
}

// ValidateCollege accepts institution names with common punctuation.
func ValidateCollege(value string) Result {
	v := sanitizer.Text(value)
	return result(validator.First(
		validator.Required("college", v).WithMessage("College name is required"),
		validator.MinLen("college", v, 3).WithMessage("College name must be at least 3 characters"),
		validator.Matches("college", v, collegePattern, "institution name").WithMessage("College name contains invalid characters"),
		validator.NoRepeatedRun("college", stripSpaces(v), repeatRun).WithMessage("College name appears invalid"),
	))
}

// ValidateYearDept accepts free text such as "III Year CSE" but rejects
// bare numbers.
func ValidateYearDept(value string) Result {
	v := sanitizer.Text(value)
	return result(validator.First(
		validator.Required("yearDept", v).WithMessage("Year/Department is required"),
		validator.NotAllDigits("yearDept", v).WithMessage("Department must not be only numbers"),
		validator.MinLen("yearDept", v, 2).WithMessage("Please enter a valid year/department"),
		validator.NoRepeatedRun("yearDept", deptSeparators.ReplaceAllString(v, ""), repeatRun).WithMessage("Year/Department appears invalid"),
	))
}

func stripSpaces(s string) string {
	return spaceRun.ReplaceAllString(s, "")
}
