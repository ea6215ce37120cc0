package settings

import (
	"time"

	"github.com/google/uuid"
)

// AccountSettings is a seller's account-level preferences, separate from the
// profile sections buyers see.
type AccountSettings struct {
	UserID      uuid.UUID `json:"user_id" gorm:"primaryKey;type:uuid"`
	DisplayName string    `json:"displayName" gorm:""`
	Language    string    `json:"language" gorm:"default:en"`
	Timezone    string    `json:"timezone" gorm:"default:UTC"`

	// EmailDigest gates the daily digest email, LiveToasts the websocket
	// pushes.
	EmailDigest bool `json:"emailDigest" gorm:"default:true"`
	LiveToasts  bool `json:"liveToasts" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
