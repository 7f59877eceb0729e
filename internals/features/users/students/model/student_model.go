package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "learnify_backend/internals/features/courses/courses/model"
)

type StudentModel struct {
	StudentID        uuid.UUID  `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	StudentName      string     `gorm:"column:student_name;type:varchar(100);not null" json:"student_name"`
	StudentEmail     string     `gorm:"column:student_email;type:varchar(255);not null;uniqueIndex" json:"student_email"`
	StudentPassword  string     `gorm:"column:student_password;type:varchar(255);not null" json:"-"`
	StudentCourseID  *uuid.UUID `gorm:"column:student_course_id;type:uuid" json:"student_course_id"`
	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time  `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`

	Course *courseModel.CourseModel `gorm:"foreignKey:StudentCourseID;references:CourseID" json:"course,omitempty"`
}

// TableName sets the table name for StudentModel
func (StudentModel) TableName() string {
	return "students"
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
