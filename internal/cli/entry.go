package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inovacc/degreeclass/internal/model"
)

// EntryError reports a numeric field that could not be parsed. It ends the
// entry attempt instead of restarting the prompts.
type EntryError struct {
	Field string
	Input string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func (s *Shell) enterRecord() {
	_, _ = fmt.Fprintln(s.out, "Enter the details of a new Academic Module.")

	m, err := s.promptModule()

	switch {
	case errors.Is(err, errInterrupted), errors.Is(err, io.EOF):
		_, _ = fmt.Fprintln(s.out, "\nQuitting the sub-program...")
		return
	case err != nil:
		WriteError(s.out, err)
		return
	}

	if err := s.classifier.Add(m); err != nil {
		WriteError(s.out, err)
		return
	}

	s.clear(s.out)
	_, _ = fmt.Fprintln(s.out)
	writeSuccess(s.out, "SUCCESS! New Academic Module created:")
	_, _ = fmt.Fprintln(s.out, m.String())
}

// promptModule asks for the five fields in order. Any validation failure
// clears the screen, shows the reason and starts again from the code.
func (s *Shell) promptModule() (model.Module, error) {
	for {
		code, err := s.readLine("Code: ")
		if err != nil {
			return model.Module{}, err
		}

		if s.rejected(model.ValidateCode(code)) {
			continue
		}

		name, err := s.readLine("Name: ")
		if err != nil {
			return model.Module{}, err
		}

		if s.rejected(model.ValidateName(name)) {
			continue
		}

		credits, err := s.readInt("Credits: ", model.FieldCredits)
		if err != nil {
			return model.Module{}, err
		}

		if s.rejected(model.ValidateCredits(credits)) {
			continue
		}

		level, err := s.readInt("FHEQ Level: ", model.FieldLevel)
		if err != nil {
			return model.Module{}, err
		}

		if s.rejected(model.ValidateLevel(level)) {
			continue
		}

		grade, err := s.readInt("Grade: ", model.FieldGrade)
		if err != nil {
			return model.Module{}, err
		}

		if s.rejected(model.ValidateGrade(grade)) {
			continue
		}

		return model.Module{
			Code:    code,
			Name:    name,
			Credits: credits,
			Level:   model.Level(level),
			Grade:   grade,
		}, nil
	}
}

func (s *Shell) readInt(prompt, field string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, &EntryError{Field: field, Input: line, Err: err}
	}

	return n, nil
}

func (s *Shell) rejected(err error) bool {
	if err == nil {
		return false
	}

	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		WriteError(s.out, err)
		return true
	}

	s.clear(s.out)
	_, _ = fmt.Fprintln(s.out, verr.Message)

	return true
}
