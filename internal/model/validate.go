package model

import "fmt"

// ValidationError reports a field entered at the prompt that breaks its rule.
// Message is the text shown to the user before the prompt restarts.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// ValidateCode requires a non-empty module code.
func ValidateCode(code string) error {
	if code == "" {
		return &ValidationError{Field: FieldCode, Message: "Code is required. Please try again."}
	}

	return nil
}

// ValidateName requires a non-empty module name.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Field: FieldName, Message: "Name is required. Please try again."}
	}

	return nil
}

// ValidateCredits rejects negative credits. Zero is accepted here even though
// such a row is later skipped when the file is loaded.
func ValidateCredits(credits int) error {
	if credits < 0 {
		return &ValidationError{Field: FieldCredits, Message: "Credits must be a positive integer. Please try again."}
	}

	return nil
}

// ValidateLevel requires a strictly positive FHEQ level.
func ValidateLevel(level int) error {
	if level <= 0 {
		return &ValidationError{Field: FieldLevel, Message: "FHEQ Level must be a positive integer. Please try again."}
	}

	return nil
}

// ValidateGrade requires a grade within 0-100.
func ValidateGrade(grade int) error {
	if grade < 0 || grade > 100 {
		return &ValidationError{Field: FieldGrade, Message: "Grade must be in range 0-100. Please try again."}
	}

	return nil
}
