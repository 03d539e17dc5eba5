package domain

import "errors"

var (
	// ErrBaselineInvalid wraps every failure that makes the unmutated module
	// unusable for mutation testing. Such failures abort the run.
	ErrBaselineInvalid = errors.New("baseline module is invalid")
	// ErrMissingNameTable is returned when the module carries no name section,
	// so no function can be selected by name.
	ErrMissingNameTable = errors.New("module has no name section")
	// ErrBaselineFailing is returned when the unmutated harness does not pass.
	ErrBaselineFailing = errors.New("tests fail on the unmutated module")
)
