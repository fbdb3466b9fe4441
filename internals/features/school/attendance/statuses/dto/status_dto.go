// file: internals/features/school/attendance/statuses/dto/status_dto.go
package dto

import (
	"strings"

	statmodel "sekolahku_backend/internals/features/school/attendance/statuses/model"
)

type AttendanceStatusCreateRequest struct {
	Code  string `json:"code"  validate:"required,max=32"`
	Name  string `json:"name"  validate:"required,max=80"`
	Color string `json:"color" validate:"omitempty,max=16"`

	RequiresJustification bool `json:"requires_justification"`
	CanHaveNotes          bool `json:"can_have_notes"`
	IsNegative            bool `json:"is_negative"`
	IsExcused             bool `json:"is_excused"`
	IsTemporal            bool `json:"is_temporal"`

	Order int `json:"order"`
}

func (r AttendanceStatusCreateRequest) ToModel() statmodel.AttendanceStatusModel {
	m := statmodel.AttendanceStatusModel{
		AttendanceStatusCode:                  strings.ToUpper(strings.TrimSpace(r.Code)),
		AttendanceStatusName:                  strings.TrimSpace(r.Name),
		AttendanceStatusRequiresJustification: r.RequiresJustification,
		AttendanceStatusCanHaveNotes:          r.CanHaveNotes,
		AttendanceStatusIsNegative:            r.IsNegative,
		AttendanceStatusIsExcused:             r.IsExcused,
		AttendanceStatusIsTemporal:            r.IsTemporal,
		AttendanceStatusOrder:                 r.Order,
		AttendanceStatusIsActive:              true,
	}
	if s := strings.TrimSpace(r.Color); s != "" {
		m.AttendanceStatusColor = s
	}
	return m
}

type AttendanceStatusUpdateRequest struct {
	Name  *string `json:"name"  validate:"omitempty,max=80"`
	Color *string `json:"color" validate:"omitempty,max=16"`

	RequiresJustification *bool `json:"requires_justification"`
	CanHaveNotes          *bool `json:"can_have_notes"`
	IsNegative            *bool `json:"is_negative"`
	IsExcused             *bool `json:"is_excused"`
	IsTemporal            *bool `json:"is_temporal"`

	Order    *int  `json:"order"`
	IsActive *bool `json:"is_active"`
}

func (r AttendanceStatusUpdateRequest) Apply(m *statmodel.AttendanceStatusModel) {
	if r.Name != nil {
		m.AttendanceStatusName = strings.TrimSpace(*r.Name)
	}
	if r.Color != nil {
		m.AttendanceStatusColor = strings.TrimSpace(*r.Color)
	}
	if r.RequiresJustification != nil {
		m.AttendanceStatusRequiresJustification = *r.RequiresJustification
	}
	if r.CanHaveNotes != nil {
		m.AttendanceStatusCanHaveNotes = *r.CanHaveNotes
	}
	if r.IsNegative != nil {
		m.AttendanceStatusIsNegative = *r.IsNegative
	}
	if r.IsExcused != nil {
		m.AttendanceStatusIsExcused = *r.IsExcused
	}
	if r.IsTemporal != nil {
		m.AttendanceStatusIsTemporal = *r.IsTemporal
	}
	if r.Order != nil {
		m.AttendanceStatusOrder = *r.Order
	}
	if r.IsActive != nil {
		m.AttendanceStatusIsActive = *r.IsActive
	}
}

type RoleStatusGrantRequest struct {
	RoleID   int `json:"role_id"   validate:"required,gt=0"`
	StatusID int `json:"status_id" validate:"required,gt=0"`
}
