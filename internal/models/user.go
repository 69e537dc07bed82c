package models

import "time"

// Role values for User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a member of the skill-exchange platform.
type User struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string    `json:"name" gorm:"type:varchar(100)"`
	Email         string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	Password      string    `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	Location      string    `json:"location"`
	Photo         string    `json:"photo"` // served path, e.g. /uploads/<file>, or empty
	SkillsOffered []string  `json:"skillsOffered" gorm:"serializer:json"`
	SkillsWanted  []string  `json:"skillsWanted" gorm:"serializer:json"`
	Availability  []string  `json:"availability" gorm:"serializer:json"`
	IsPublic      bool      `json:"isPublic"`
	Rating        float64   `json:"rating"`
	TotalSwaps    int       `json:"totalSwaps"`
	Role          string    `json:"role"`
	IsBanned      bool      `json:"isBanned"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserSummary is the lightweight projection attached to swap requests and
// messages for display purposes.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

// Summary returns the display projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Photo: u.Photo}
}

// ProfileUpdate carries a partial profile edit. Nil fields are left untouched;
// set slice fields replace the stored slice whole.
type ProfileUpdate struct {
	Name          *string
	Location      *string
	SkillsOffered *[]string
	SkillsWanted  *[]string
	Availability  *[]string
	IsPublic      *bool
	Photo         *string
}
