package dto

import (
	"time"

	"learnify_backend/internals/features/courses/subjects/model"
)

// ============================
// Response DTO
// ============================

type SubjectDTO struct {
	SubjectID        string    `json:"subject_id"`
	SubjectTitle     string    `json:"subject_title"`
	SubjectCourseID  string    `json:"subject_course_id"`
	SubjectCreatedBy *string   `json:"subject_created_by,omitempty"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateSubjectRequest struct {
	SubjectTitle    string `json:"subject_title" validate:"required,min=2"`
	SubjectCourseID string `json:"subject_course_id" validate:"required,uuid"`
}

type UpdateSubjectRequest struct {
	SubjectTitle    string `json:"subject_title" validate:"required,min=2"`
	SubjectCourseID string `json:"subject_course_id" validate:"omitempty,uuid"`
}

// ============================
// Converter
// ============================

func ToSubjectDTO(m model.SubjectModel) SubjectDTO {
	dto := SubjectDTO{
		SubjectID:        m.SubjectID.String(),
		SubjectTitle:     m.SubjectTitle,
		SubjectCourseID:  m.SubjectCourseID.String(),
		SubjectCreatedAt: m.SubjectCreatedAt,
		SubjectUpdatedAt: m.SubjectUpdatedAt,
	}
	if m.SubjectCreatedBy != nil {
		s := m.SubjectCreatedBy.String()
		dto.SubjectCreatedBy = &s
	}
	return dto
}

func ToSubjectDTOs(models []model.SubjectModel) []SubjectDTO {
	out := make([]SubjectDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToSubjectDTO(m))
	}
	return out
}
