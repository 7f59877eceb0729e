package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnrolledStudentModel links a student to a course they joined, with a
// denormalized snapshot of the student and course at enrollment time.
// The compound unique index is the authority against double enrollment;
// a pre-query check cannot be (two concurrent enrolls would both pass it).
type EnrolledStudentModel struct {
	EnrolledStudentID             uuid.UUID `gorm:"column:enrolled_student_id;type:uuid;primaryKey" json:"enrolled_student_id"`
	EnrolledStudentName           string    `gorm:"column:enrolled_student_name;type:varchar(100);not null" json:"enrolled_student_name"`
	EnrolledStudentEmail          string    `gorm:"column:enrolled_student_email;type:varchar(255);not null" json:"enrolled_student_email"`
	EnrolledStudentStudentID      uuid.UUID `gorm:"column:enrolled_student_student_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"enrolled_student_student_id"`
	EnrolledStudentCourseID       uuid.UUID `gorm:"column:enrolled_student_course_id;type:uuid;not null;uniqueIndex:uq_enrollment_student_course" json:"enrolled_student_course_id"`
	EnrolledStudentCourseTitle    string    `gorm:"column:enrolled_student_course_title;type:varchar(255);not null" json:"enrolled_student_course_title"`
	EnrolledStudentCourseCategory string    `gorm:"column:enrolled_student_course_category;type:varchar(100);not null" json:"enrolled_student_course_category"`
	EnrolledStudentEnrolledAt     time.Time `gorm:"column:enrolled_student_enrolled_at;autoCreateTime" json:"enrolled_student_enrolled_at"`
}

// TableName sets the table name for EnrolledStudentModel
func (EnrolledStudentModel) TableName() string {
	return "enrolled_students"
}

func (m *EnrolledStudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.EnrolledStudentID == uuid.Nil {
		m.EnrolledStudentID = uuid.New()
	}
	return nil
}
