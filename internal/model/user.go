package model

import "time"

// User is the single persisted entity: one row per registered account.
// Name and email each carry their own unique index; there is no compound
// constraint on the pair.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Age          *int       `json:"age,omitempty"`
	Gender       *string    `json:"gender,omitempty" gorm:"size:50"`
	DOB          *time.Time `json:"dob,omitempty"`
	Weight       *float64   `json:"weight,omitempty"`
	Height       *float64   `json:"height,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Profile carries the five body-profile fields written by the profile form.
// All of them are mandatory on that path.
type Profile struct {
	Age    int
	Gender string
	DOB    time.Time
	Weight float64
	Height float64
}
