package dto

import (
	"time"

	"learnify_backend/internals/features/enrollments/enrollments/model"
)

// ============================
// Response DTO
// ============================

type EnrollmentDTO struct {
	EnrolledStudentID             string    `json:"enrolled_student_id"`
	EnrolledStudentName           string    `json:"enrolled_student_name"`
	EnrolledStudentEmail          string    `json:"enrolled_student_email"`
	EnrolledStudentStudentID      string    `json:"enrolled_student_student_id"`
	EnrolledStudentCourseID       string    `json:"enrolled_student_course_id"`
	EnrolledStudentCourseTitle    string    `json:"enrolled_student_course_title"`
	EnrolledStudentCourseCategory string    `json:"enrolled_student_course_category"`
	EnrolledStudentEnrolledAt     time.Time `json:"enrolled_student_enrolled_at"`
}

type EnrollmentStatsDTO struct {
	TotalEnrollments int64              `json:"total_enrollments"`
	DistinctStudents int64              `json:"distinct_students"`
	PerCourse        []CourseEnrollStat `json:"per_course"`
}

type CourseEnrollStat struct {
	CourseID    string `json:"course_id" gorm:"column:enrolled_student_course_id"`
	CourseTitle string `json:"course_title" gorm:"column:enrolled_student_course_title"`
	Enrolled    int64  `json:"enrolled" gorm:"column:enrolled"`
}

// ============================
// Converter
// ============================

func ToEnrollmentDTO(m model.EnrolledStudentModel) EnrollmentDTO {
	return EnrollmentDTO{
		EnrolledStudentID:             m.EnrolledStudentID.String(),
		EnrolledStudentName:           m.EnrolledStudentName,
		EnrolledStudentEmail:          m.EnrolledStudentEmail,
		EnrolledStudentStudentID:      m.EnrolledStudentStudentID.String(),
		EnrolledStudentCourseID:       m.EnrolledStudentCourseID.String(),
		EnrolledStudentCourseTitle:    m.EnrolledStudentCourseTitle,
		EnrolledStudentCourseCategory: m.EnrolledStudentCourseCategory,
		EnrolledStudentEnrolledAt:     m.EnrolledStudentEnrolledAt,
	}
}

func ToEnrollmentDTOs(models []model.EnrolledStudentModel) []EnrollmentDTO {
	out := make([]EnrollmentDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToEnrollmentDTO(m))
	}
	return out
}
