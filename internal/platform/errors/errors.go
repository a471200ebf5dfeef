package apperrors

import "errors"

var (
	ErrTitleRequired = errors.New("a title is required")
	ErrLinkRequired  = errors.New("a link is required")
	ErrInvalidLink   = errors.New("link is not a valid URL")
	ErrDuplicateItem = errors.New("item is already on the checklist")
	ErrEmptyBody     = errors.New("note body is empty")
	ErrInvalidBackup = errors.New("backup payload is malformed")
)
