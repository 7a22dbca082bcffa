// Package validator adapts the ascii package to declarative, field-level
// validation rules.
//
// A Rule pairs a Check func with translation-friendly error metadata. Rules are
// evaluated with Apply which aggregates every failure into a ValidationErrors
// slice that satisfies the error interface.
//
// Rules backed by ascii.CheckPrintable and ascii.CheckASCII keep the scan's
// diagnostic error in ValidationError.Cause and expose its position and
// character through TranslationValues, so callers can both translate the
// message and use errors.Is / errors.As on the result:
//
//	err := validator.Apply(
//	    validator.PrintableASCII("subject", subject),
//	    validator.Alphanumeric("code", code),
//	)
//	if errors.Is(err, ascii.ErrControlCharacter) {
//	    // reject the request
//	}
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, e := range verrs {
//	        fmt.Println(e.TranslationKey, e.TranslationValues)
//	    }
//	}
//
// Rules evaluate their input when constructed and hold no shared state, so the
// package is goroutine-safe.
package validator
