package validators

import (
	"fmt"

	"rentmap-backend/internal/models"
)

const maxNoteLength = 2000

type decisionValidator struct{}

func NewDecisionValidator() DecisionValidator {
	return &decisionValidator{}
}

func (v *decisionValidator) ValidateUpsert(decision *models.Decision) error {
	if decision.ListingURL == "" {
		return fmt.Errorf("listing url is required")
	}
	if len(decision.ListingURL) > 512 {
		return fmt.Errorf("listing url exceeds maximum length of 512 characters")
	}
	if !models.ValidDecisionState(decision.State) {
		return fmt.Errorf("state must be one of none, like, no, maybe")
	}
	if len(decision.Note) > maxNoteLength {
		return fmt.Errorf("note exceeds maximum length of %d characters", maxNoteLength)
	}
	return nil
}
