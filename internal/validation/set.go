// Copyright (c) 2026 Meibo. All rights reserved.
// Author: dev.meibo.app@gmail.com

package validation

import (
	"time"

	"github.com/meibo-app/meibo/internal/platform/config"
	"github.com/meibo-app/meibo/internal/platform/constants"
)

// RecordValidators builds the full validator map for one record, keyed by
// column name. existingIDs is the uniqueness set for the identifier field:
// interactive input passes the identifiers already in the store, bulk import
// passes nil because whole-file duplicate detection happens separately.
func RecordValidators(cfg *config.Config, existingIDs []string) map[string]Validator {
	return recordValidators(cfg, existingIDs, time.Now)
}

// recordValidators is the injectable-clock variant used by tests.
func recordValidators(cfg *config.Config, existingIDs []string, now func() time.Time) map[string]Validator {
	validators := map[string]Validator{
		constants.ColEmployeeID:      NewEmployeeIDValidator(existingIDs),
		constants.ColName:            NameValidator{},
		constants.ColKana:            KanaValidator{},
		constants.ColBirthDate:       NewDateValidator(constants.ColBirthDate, cfg.MinBirth(), now),
		constants.ColJoinDate:        NewDateValidator(constants.ColJoinDate, cfg.MinJoin(), now),
		constants.ColYearsExperience: YearsExperienceValidator{},
		constants.ColSkills:          SkillsValidator{},
		constants.ColCareerHistory:   NewFreeTextValidator(constants.ColCareerHistory, constants.MaxHistoryLen, cfg.StrictText),
		constants.ColTrainingHistory: NewFreeTextValidator(constants.ColTrainingHistory, constants.MaxHistoryLen, cfg.StrictText),
		constants.ColNote:            NewFreeTextValidator(constants.ColNote, constants.MaxNoteLen, cfg.StrictText),
	}

	for _, field := range []string{
		constants.ColRatingTechnical,
		constants.ColRatingComms,
		constants.ColRatingLeader,
		constants.ColRatingAttitude,
	} {
		validators[field] = NewRatingValidator(field)
	}

	return validators
}
