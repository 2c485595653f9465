package models

import (
	"time"
)

type Realtor struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Photo       *string   `json:"photo,omitempty"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	IsMVP       bool      `json:"is_mvp"`
	HireDate    time.Time `json:"hire_date"`
}
