// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

type School struct {
	Model
	Name           string   `json:"name" gorm:"not null;type:text;"`
	Slug           string   `json:"slug" gorm:"uniqueIndex;not null;type:text;"`
	State          string   `json:"state" gorm:"not null;type:text;"`
	District       string   `json:"district" gorm:"not null;type:text;index;"`
	Address        *string  `json:"address" gorm:"type:text;"`
	EducationBoard *string  `json:"educationBoard" gorm:"type:education_board;"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	ContactEmail   *string  `json:"contactEmail" gorm:"type:text;"`
}

func (s School) TableName() string {
	return "schools"
}
