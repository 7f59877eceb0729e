package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "learnify_backend/internals/features/courses/courses/model"
)

type SubjectModel struct {
	SubjectID        uuid.UUID  `gorm:"column:subject_id;type:uuid;primaryKey" json:"subject_id"`
	SubjectTitle     string     `gorm:"column:subject_title;type:varchar(255);not null" json:"subject_title"`
	SubjectCourseID  uuid.UUID  `gorm:"column:subject_course_id;type:uuid;not null;index" json:"subject_course_id"`
	SubjectCreatedBy *uuid.UUID `gorm:"column:subject_created_by;type:uuid" json:"subject_created_by,omitempty"`
	SubjectCreatedAt time.Time  `gorm:"column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time  `gorm:"column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`

	Course *courseModel.CourseModel `gorm:"foreignKey:SubjectCourseID;references:CourseID" json:"course,omitempty"`
}

// TableName sets the table name for SubjectModel
func (SubjectModel) TableName() string {
	return "subjects"
}

func (m *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if m.SubjectID == uuid.Nil {
		m.SubjectID = uuid.New()
	}
	return nil
}
