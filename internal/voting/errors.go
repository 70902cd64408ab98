package voting

import "errors"

var (
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidSettingKey   = errors.New("invalid setting key")
	ErrInvalidSettingValue = errors.New("invalid setting value")
	ErrVotingClosed        = errors.New("voting is closed")
	ErrResultsNotPublished = errors.New("results are not published")
	ErrNomineeNotFound     = errors.New("nominee not found")
	ErrNomineeMismatch     = errors.New("nominee does not belong to nomination")
)
