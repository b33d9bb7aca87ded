package models

import "time"

// Decision states a user can attach to a listing.
const (
	DecisionNone  = "none"
	DecisionLike  = "like"
	DecisionNo    = "no"
	DecisionMaybe = "maybe"
)

// Decision is one user's verdict on a listing, keyed by the listing URL.
type Decision struct {
	ListingURL string    `json:"url"`
	State      string    `json:"state"`
	Note       string    `json:"note"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ValidDecisionState(state string) bool {
	switch state {
	case DecisionNone, DecisionLike, DecisionNo, DecisionMaybe:
		return true
	}
	return false
}
