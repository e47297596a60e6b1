package usecase

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrNoSkillsSpecified = errors.New("no skills specified")
	ErrNoRequirements    = errors.New("no skill requirements specified")
	ErrInternal          = errors.New("internal error")
)
