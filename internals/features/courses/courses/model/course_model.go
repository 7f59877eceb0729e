package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Allowed values for the level and duration unit columns.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"

	DurationDays   = "days"
	DurationWeeks  = "weeks"
	DurationMonths = "months"
)

type CourseModel struct {
	CourseID            uuid.UUID      `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	CourseTitle         string         `gorm:"column:course_title;type:varchar(255);not null" json:"course_title"`
	CourseInstructor    string         `gorm:"column:course_instructor;type:varchar(100);not null" json:"course_instructor"`
	CourseCategory      string         `gorm:"column:course_category;type:varchar(100);not null" json:"course_category"`
	CourseLevel         string         `gorm:"column:course_level;type:varchar(20);not null" json:"course_level"`
	CourseDurationValue int            `gorm:"column:course_duration_value;not null" json:"course_duration_value"`
	CourseDurationUnit  string         `gorm:"column:course_duration_unit;type:varchar(10);not null;default:weeks" json:"course_duration_unit"`
	CourseDescription   string         `gorm:"column:course_description;type:text;not null" json:"course_description"`
	CourseThumbnail     string         `gorm:"column:course_thumbnail;type:text;not null" json:"course_thumbnail"`
	CourseRating        float64        `gorm:"column:course_rating;default:0" json:"course_rating"`
	CourseStudents      int            `gorm:"column:course_students;default:0" json:"course_students"`
	CoursePrice         float64        `gorm:"column:course_price;default:0" json:"course_price"`
	CourseModules       datatypes.JSON `gorm:"column:course_modules" json:"course_modules"`
	CourseCreatedAt     time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
}

// TableName sets the table name for CourseModel
func (CourseModel) TableName() string {
	return "courses"
}

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}
