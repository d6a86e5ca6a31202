package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
		wantMsg   string
	}{
		{name: "code ok", err: ValidateCode("C1")},
		{name: "code empty", err: ValidateCode(""), wantField: FieldCode, wantMsg: "Code is required. Please try again."},
		{name: "name ok", err: ValidateName("Intro")},
		{name: "name empty", err: ValidateName(""), wantField: FieldName, wantMsg: "Name is required. Please try again."},
		{name: "credits zero ok", err: ValidateCredits(0)},
		{name: "credits negative", err: ValidateCredits(-1), wantField: FieldCredits, wantMsg: "Credits must be a positive integer. Please try again."},
		{name: "level positive", err: ValidateLevel(4)},
		{name: "level zero", err: ValidateLevel(0), wantField: FieldLevel, wantMsg: "FHEQ Level must be a positive integer. Please try again."},
		{name: "grade lower bound", err: ValidateGrade(0)},
		{name: "grade upper bound", err: ValidateGrade(100)},
		{name: "grade too high", err: ValidateGrade(101), wantField: FieldGrade, wantMsg: "Grade must be in range 0-100. Please try again."},
		{name: "grade negative", err: ValidateGrade(-1), wantField: FieldGrade, wantMsg: "Grade must be in range 0-100. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantField == "" {
				assert.NoError(t, tt.err)

				return
			}

			var verr *ValidationError

			require.True(t, errors.As(tt.err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}
