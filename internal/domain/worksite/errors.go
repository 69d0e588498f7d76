package worksite

import "errors"

var ErrWorksiteNotFound = errors.New("worksite not found")
