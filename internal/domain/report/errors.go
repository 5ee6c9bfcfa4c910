package report

import "errors"

var (
	ErrEmptyPeriod = errors.New("report period contains no days")
)
