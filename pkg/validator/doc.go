// Package validator provides small, composable validation rules for string
// form input.
//
// A Rule couples a Check function with a ValidationError describing the
// failure. Rules are evaluated in two ways:
//
//   - Apply runs every rule and collects all failures into ValidationErrors,
//     which implements the error interface.
//   - First runs rules in order and stops at the first failure, which suits
//     per-field rule chains where only one message should be shown.
//
// # Usage
//
//	err := validator.First(
//	    validator.Required("name", name).WithMessage("Name is required"),
//	    validator.MinLen("name", name, 2),
//	    validator.NoRepeatedRun("name", name, 5),
//	)
//	if verr, ok := validator.AsValidationError(err); ok {
//	    fmt.Println(verr.Field, verr.Message)
//	}
//
// Messages default to neutral English text and carry a translation key plus
// values so callers can localise them later.
//
// The package is stateless and safe for concurrent use.
package validator
