// Copyright 2025 EduChain Contributors.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

import (
	"github.com/educhain-dev/educhain/dtos"
	"github.com/google/uuid"
)

type Profile struct {
	Model
	FullName     string        `json:"fullName" gorm:"not null;type:text;"`
	Email        string        `json:"email" gorm:"uniqueIndex;not null;type:text;"`
	Role         dtos.UserRole `json:"role" gorm:"type:user_role;not null;default:'school';"`
	Organization *string       `json:"organization" gorm:"type:text;"`
	Phone        *string       `json:"phone" gorm:"type:text;"`
	SchoolID     *uuid.UUID    `json:"schoolId" gorm:"type:uuid;"`
	School       *School       `json:"school,omitempty" gorm:"foreignKey:SchoolID;"`
}

func (p Profile) TableName() string {
	return "profiles"
}
