package calendar

import "errors"

var (
	// ErrInvalidDate is returned for a day/month/year outside the valid range
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidLabel is returned when a label is not part of the catalog
	ErrInvalidLabel = errors.New("label not in catalog")
)
