package models

import (
	"time"

	"gorm.io/gorm"
)

// ScoutActionTypes is the set of in-match events the scout board records.
var ScoutActionTypes = []string{
	"goal", "assistencia", "desarme", "golSofrido",
	"falta", "passeCerto", "passeErrado", "chuteGol",
}

// IsValidScoutAction reports whether the given action type is known.
func IsValidScoutAction(actionType string) bool {
	for _, t := range ScoutActionTypes {
		if t == actionType {
			return true
		}
	}
	return false
}

// Match is one scouted game or training session. The ID is a UUID issued at
// creation so the scout board can reference the match before it is persisted.
type Match struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Date       time.Time `json:"date"`
	Opponent   string    `json:"opponent"`
	IsTraining bool      `json:"isTraining"`
	Category   string    `json:"category"`
	Finished   bool      `json:"finished"`
}

// Player is a scout-board roster entry. Reserves sit on the bench until a
// substitution swaps them with an active player.
type Player struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Position  string `json:"position"`
	Number    int    `json:"number"`
	IsReserve bool   `json:"isReserve"`
}

// ScoutAction is a timestamped in-match event attributed to a player.
// AreaNumber is the court region for actions that carry a location.
type ScoutAction struct {
	gorm.Model
	MatchID    string    `json:"matchId" gorm:"type:varchar(36);index"`
	PlayerID   uint      `json:"playerId"`
	Player     Player    `json:"player" gorm:"foreignKey:PlayerID"`
	Type       string    `json:"type" gorm:"not null"`
	Timestamp  time.Time `json:"timestamp"`
	AreaNumber *int      `json:"areaNumber,omitempty"`
}
