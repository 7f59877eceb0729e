package dto

import (
	"time"

	courseDTO "learnify_backend/internals/features/courses/courses/dto"
	"learnify_backend/internals/features/users/students/model"
)

// ============================
// Request DTO
// ============================

type RegisterStudentRequest struct {
	StudentName     string `json:"student_name" validate:"required,min=2"`
	StudentEmail    string `json:"student_email" validate:"required,email"`
	StudentPassword string `json:"student_password" validate:"required,min=6"`
	StudentCourseID string `json:"student_course_id" validate:"omitempty,uuid"`
}

type LoginStudentRequest struct {
	StudentEmail    string `json:"student_email" validate:"required,email"`
	StudentPassword string `json:"student_password" validate:"required"`
}

// ============================
// Response DTO
// ============================

type StudentDTO struct {
	StudentID        string               `json:"student_id"`
	StudentName      string               `json:"student_name"`
	StudentEmail     string               `json:"student_email"`
	StudentCourseID  *string              `json:"student_course_id,omitempty"`
	Course           *courseDTO.CourseDTO `json:"course,omitempty"`
	StudentCreatedAt time.Time            `json:"student_created_at"`
}

// ============================
// Converter
// ============================

func ToStudentDTO(m model.StudentModel) StudentDTO {
	dto := StudentDTO{
		StudentID:        m.StudentID.String(),
		StudentName:      m.StudentName,
		StudentEmail:     m.StudentEmail,
		StudentCreatedAt: m.StudentCreatedAt,
	}
	if m.StudentCourseID != nil {
		s := m.StudentCourseID.String()
		dto.StudentCourseID = &s
	}
	if m.Course != nil {
		c := courseDTO.ToCourseDTO(*m.Course)
		dto.Course = &c
	}
	return dto
}

func ToStudentDTOs(models []model.StudentModel) []StudentDTO {
	out := make([]StudentDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToStudentDTO(m))
	}
	return out
}
