package errors

import (
	stderrors "errors"
)

// MapError converts any error into an AppError. Errors that already carry an
// AppError in their chain keep it; everything else is an internal error.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	return NewInternalError(err.Error(), err)
}

// IsUpstream reports whether err is a provider failure.
func IsUpstream(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Code == ErrCodeUpstream
}
