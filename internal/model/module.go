package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Column names of the backing CSV file, in write order.
const (
	FieldCode    = "code"
	FieldName    = "name"
	FieldCredits = "credits"
	FieldLevel   = "fheq"
	FieldGrade   = "grade"
)

// Header returns the CSV header row.
func Header() []string {
	return []string{FieldCode, FieldName, FieldCredits, FieldLevel, FieldGrade}
}

const recordSeparatorWidth = 35

// Module is a single academic module record.
type Module struct {
	// Code is the module identifier
	Code string `json:"code"`

	// Name is the module title
	Name string `json:"name"`

	// Credits is the weight of the module in every average
	Credits int `json:"credits"`

	// Level is the FHEQ level the module belongs to
	Level Level `json:"fheq"`

	// Grade is the percentage mark awarded
	Grade int `json:"grade"`
}

// Truthy reports whether every field is non-empty and non-zero. Rows read from
// the backing file are only accepted when this holds, so a grade of 0 is
// treated the same as a missing grade.
func (m Module) Truthy() bool {
	return m.Code != "" && m.Name != "" && m.Credits != 0 && m.Level != 0 && m.Grade != 0
}

// Row returns the record as a CSV row in header order.
func (m Module) Row() []string {
	return []string{
		m.Code,
		m.Name,
		strconv.Itoa(m.Credits),
		strconv.Itoa(int(m.Level)),
		strconv.Itoa(m.Grade),
	}
}

func (m Module) String() string {
	sep := "\n" + strings.Repeat("-", recordSeparatorWidth)

	var b strings.Builder

	b.WriteString(sep)
	_, _ = fmt.Fprintf(&b, "\n%s: %s", m.Code, m.Name)
	_, _ = fmt.Fprintf(&b, "\n\tGrade: %d%%", m.Grade)
	_, _ = fmt.Fprintf(&b, "\n\tCredits: %d", m.Credits)
	_, _ = fmt.Fprintf(&b, "\n\tFHEQ Level: %d", int(m.Level))
	b.WriteString(sep)

	return b.String()
}
