package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDashboardDate  = errors.New("invalid dashboard date")
)
