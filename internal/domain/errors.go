package domain

import "errors"

var (
	ErrAssignmentNotFound   = errors.New("no organization has a repository with that name")
	ErrAssignmentNotTracked = errors.New("assignment not currently tracked")
	ErrInvalidDirName       = errors.New("name is not usable as a directory")
	ErrMalformedRecord      = errors.New("completion record is malformed")
	ErrRecordNotFound       = errors.New("completion record not found")
	ErrRepoNotFound         = errors.New("repository not found")
	ErrStudentNotFound      = errors.New("student not found")
)
