// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"log/slog"
)

// Service orchestrates field validators against raw form or file input.
//
// # Concurrency
//
// Service is stateless and safe for concurrent use; each call produces a
// fresh [Outcome]. It is constructed explicitly and injected where needed,
// so tests can instantiate isolated instances per test case.
type Service struct {
	logger *slog.Logger
}

// NewService creates a validation service.
func NewService(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// Run applies every validator in the map to its corresponding raw value.
//
// A field absent from raw is treated as the empty string. Fields are
// evaluated independently with no short-circuiting, so iteration order does
// not affect the outcome. A panicking validator is converted into that
// field's error rather than propagated; one malformed field never aborts
// validation of the rest.
func (service *Service) Run(raw map[string]string, validators map[string]Validator) *Outcome {
	outcome := NewOutcome()

	for field, validator := range validators {
		value := raw[field]
		normalized, ok := service.check(field, value, validator)
		if !ok {
			outcome.Errors[field] = validator.ErrorMessage()
			continue
		}
		outcome.Values[field] = normalized
	}

	return outcome
}

// check runs one validator, converting a panic into a rejection.
func (service *Service) check(field, raw string, validator Validator) (normalized string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			service.logger.Error("validator_panic",
				slog.String("field", field),
				slog.Any("panic", r),
			)
			ok = false
		}
	}()

	normalized = validator.Preprocess(raw)
	ok = validator.Validate(normalized)
	return normalized, ok
}
