package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBadge is assigned to every contributor at first contact.
// Badges are never recomputed from the contribution count.
const DefaultBadge = "New Contributor ✨"

// Contributor is an identity that has submitted, or may submit, places.
// Identity is determined by Username, which is always lowercase.
// PasswordHash is empty for contributors created implicitly by a submission.
type Contributor struct {
	ID            uuid.UUID
	Username      string
	DisplayName   string
	PasswordHash  string
	Badge         string
	Contributions int
	CreatedAt     time.Time
}
