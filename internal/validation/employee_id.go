// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"regexp"
	"strings"

	"github.com/meibo-app/meibo/internal/platform/constants"
	"github.com/meibo-app/meibo/pkg/jptext"
)

// employeeIDRegex matches the canonical identifier form: two ASCII capital
// letters followed by five digits, e.g. "SS00645".
var employeeIDRegex = regexp.MustCompile(`^[A-Z]{2}[0-9]{5}$`)

// CanonicalEmployeeID normalizes a raw identifier into canonical form:
// surrounding whitespace stripped, full-width characters folded to
// half-width, letters upper-cased. It does not reject anything; malformed
// input comes back normalized but still malformed.
func CanonicalEmployeeID(raw string) string {
	return strings.ToUpper(jptext.FoldWidth(strings.TrimSpace(raw)))
}

// IsCanonicalEmployeeID reports whether id is in canonical XX##### form.
func IsCanonicalEmployeeID(id string) bool {
	return employeeIDRegex.MatchString(id)
}

// EmployeeIDValidator validates the record identifier.
//
// The uniqueness set is supplied at construction time: interactive input
// passes the identifiers already present in the store, while bulk import
// passes none because duplicate detection across the whole file happens
// separately.
type EmployeeIDValidator struct {
	taken map[string]struct{}
}

// NewEmployeeIDValidator creates an identifier validator that rejects any
// identifier in existing in addition to malformed and reserved values.
func NewEmployeeIDValidator(existing []string) *EmployeeIDValidator {
	taken := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		taken[CanonicalEmployeeID(id)] = struct{}{}
	}
	return &EmployeeIDValidator{taken: taken}
}

func (v *EmployeeIDValidator) FieldName() string { return constants.ColEmployeeID }

func (v *EmployeeIDValidator) Preprocess(raw string) string {
	return CanonicalEmployeeID(raw)
}

func (v *EmployeeIDValidator) Validate(normalized string) bool {
	if !employeeIDRegex.MatchString(normalized) {
		return false
	}
	if normalized == constants.ReservedEmployeeID {
		return false
	}
	if _, exists := v.taken[normalized]; exists {
		return false
	}
	return true
}

func (v *EmployeeIDValidator) ErrorMessage() string {
	return "Must be a unique, unreserved identifier of the form XX#####"
}
