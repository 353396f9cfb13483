package domain

import "time"

// UserAccessory is an accessory instance owned by a user
type UserAccessory struct {
	InstanceID  int       `json:"instance_id"`
	UserID      string    `json:"user_id"`
	AccessoryID int       `json:"accessory_id"`
	IsEquipped  bool      `json:"is_equipped"`
	ObtainedAt  time.Time `json:"obtained_at"`
}

// AccessoryView merges an equipped accessory with its template
type AccessoryView struct {
	ID          int    `json:"id"`
	InstanceID  int    `json:"instance_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TitleView is an owned title annotated for display
type TitleView struct {
	TitleID     int    `json:"title_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsCurrent   bool   `json:"is_current"`
}
