package notifications

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification is a persisted in-app notice for a seller. The onboarding
// flow writes one per toast it raises; the bell menu reads them back.
type Notification struct {
	ID        uuid.UUID      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    uuid.UUID      `json:"user_id" gorm:"not null;index;type:uuid"`
	Severity  string         `json:"severity" gorm:"not null"`
	Message   string         `json:"message" gorm:"not null"`
	Section   string         `json:"section" gorm:""`
	Read      bool           `json:"read" gorm:"default:false"`
	ReadAt    *time.Time     `json:"read_at" gorm:""`
	Metadata  datatypes.JSON `json:"metadata" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime;index"`
}

// ArchivedNotification is the long-term copy kept in the document store
// after a notice ages out of the relational table.
type ArchivedNotification struct {
	ID         uuid.UUID  `bson:"_id"`
	UserID     uuid.UUID  `bson:"user_id"`
	Severity   string     `bson:"severity"`
	Message    string     `bson:"message"`
	Section    string     `bson:"section"`
	Read       bool       `bson:"read"`
	ReadAt     *time.Time `bson:"read_at,omitempty"`
	CreatedAt  time.Time  `bson:"created_at"`
	ArchivedAt time.Time  `bson:"archived_at"`
}

// DigestEntry summarizes one seller's recent notices for the daily email.
type DigestEntry struct {
	UserID      uuid.UUID
	UnreadCount int64
	Latest      []Notification
}
