package queries

import (
	"find-my-space/internal/infra"
	"find-my-space/internal/pkg/errs"
)

var (
	ErrUnauthenticated  = errs.New("Unauthorized")
	ErrPermissionDenied = errs.New("Permission denied: check access rules")
	ErrSpotNotFound     = errs.New("spot not found")
	ErrBookingNotFound  = errs.New("booking not found")
	ErrProfileNotFound  = errs.New("provider profile not found")
	ErrInvalidCursor    = errs.New("invalid cursor")
	ErrInvalidStatus    = errs.New("invalid status filter")
	ErrInvalidDate      = errs.New("invalid date, expected YYYY-MM-DD")
)

func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
