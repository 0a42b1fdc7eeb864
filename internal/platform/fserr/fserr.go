// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

// Package fserr provides a bridge between low-level filesystem errors and
// higher-level application errors.
package fserr

import (
	"errors"
	"io/fs"

	"github.com/meibo-app/meibo/internal/platform/apperr"
)

// Wrap inspects a filesystem error and wraps it into a meaningful
// [apperr.AppError]. It hides raw OS error text from the operator while
// classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Missing files are a distinct, usually recoverable condition.
	if errors.Is(err, fs.ErrNotExist) {
		return &apperr.AppError{
			Code:    "NOT_FOUND",
			Message: "No file found while trying to " + action,
			Cause:   err,
		}
	}

	// 2. Permission problems and everything else are fatal I/O errors.
	return apperr.IO(action, err)
}

// IsNotExist reports whether err (anywhere in its chain) stems from a
// missing file or directory.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
