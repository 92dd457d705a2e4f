package oai

import "fmt"

// Protocol error codes (section 3.6).
const (
	CodeBadArgument             = "badArgument"
	CodeBadResumptionToken      = "badResumptionToken"
	CodeBadVerb                 = "badVerb"
	CodeCannotDisseminateFormat = "cannotDisseminateFormat"
	CodeIDDoesNotExist          = "idDoesNotExist"
	CodeNoRecordsMatch          = "noRecordsMatch"
	CodeNoMetadataFormats       = "noMetadataFormats"
	CodeNoSetHierarchy          = "noSetHierarchy"
)

// Error is an error reported by the repository in an <error> element.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// empty reports whether the error only says that a list has no items.
func (e *Error) empty() bool {
	switch e.Code {
	case CodeNoRecordsMatch, CodeNoSetHierarchy, CodeNoMetadataFormats:
		return true
	}
	return false
}
