package repository

import "errors"

var ErrStorageUnavailable = errors.New("task storage unavailable")
