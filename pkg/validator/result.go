package validator

// Result is the outcome of an input validator. Message is empty iff Valid.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// Ok returns a passing result.
func Ok() Result {
	return Result{Valid: true}
}

// Fail returns a failing result carrying msg.
func Fail(msg string) Result {
	return Result{Valid: false, Message: msg}
}

// Rule adapts r into a Rule for field so it can be combined with Apply.
func (r Result) Rule(field string) Rule {
	return Rule{
		Check: func() bool {
			return r.Valid
		},
		Error: ValidationError{
			Field:          field,
			Message:        r.Message,
			TranslationKey: "validation." + field,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
