package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrEmployeeNoTaken     = errors.New("employee number already in use")
	ErrEmployeeNoChecker   = errors.New("employee has no checker uid assigned")
	ErrImportFileMalformed = errors.New("import file could not be parsed")
)
