package ast

import (
	"fmt"

	"hidlgen/internal/diag"
	"hidlgen/internal/source"
)

// CheckError is a user-input semantic error produced by Evaluate or Validate.
// The driver converts it into a location-tagged diagnostic.
type CheckError struct {
	Code diag.Code
	Span source.Span
	Msg  string
}

func (e *CheckError) Error() string {
	return e.Msg
}

func checkErrorf(code diag.Code, span source.Span, formatStr string, args ...any) *CheckError {
	return &CheckError{
		Code: code,
		Span: span,
		Msg:  fmt.Sprintf(formatStr, args...),
	}
}
