package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"learnify_backend/internals/features/courses/courses/model"
)

// ============================
// Shared shapes
// ============================

type CourseModule struct {
	Title   string   `json:"title" validate:"required"`
	Lessons []string `json:"lessons"`
}

// ============================
// Response DTO
// ============================

type CourseDTO struct {
	CourseID            string         `json:"course_id"`
	CourseTitle         string         `json:"course_title"`
	CourseInstructor    string         `json:"course_instructor"`
	CourseCategory      string         `json:"course_category"`
	CourseLevel         string         `json:"course_level"`
	CourseDurationValue int            `json:"course_duration_value"`
	CourseDurationUnit  string         `json:"course_duration_unit"`
	CourseDescription   string         `json:"course_description"`
	CourseThumbnail     string         `json:"course_thumbnail"`
	CourseRating        float64        `json:"course_rating"`
	CourseStudents      int            `json:"course_students"`
	CoursePrice         float64        `json:"course_price"`
	CourseModules       []CourseModule `json:"course_modules"`
	CourseCreatedAt     time.Time      `json:"course_created_at"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateCourseRequest struct {
	CourseTitle         string         `json:"course_title" validate:"required,min=3"`
	CourseInstructor    string         `json:"course_instructor" validate:"required"`
	CourseCategory      string         `json:"course_category" validate:"required"`
	CourseLevel         string         `json:"course_level" validate:"required,oneof=Beginner Intermediate Advanced"`
	CourseDurationValue int            `json:"course_duration_value" validate:"required,gt=0"`
	CourseDurationUnit  string         `json:"course_duration_unit" validate:"omitempty,oneof=days weeks months"`
	CourseDescription   string         `json:"course_description" validate:"required"`
	CourseThumbnail     string         `json:"course_thumbnail" validate:"required"`
	CourseRating        float64        `json:"course_rating" validate:"gte=0,lte=5"`
	CourseStudents      int            `json:"course_students" validate:"gte=0"`
	CoursePrice         float64        `json:"course_price" validate:"gte=0"`
	CourseModules       []CourseModule `json:"course_modules" validate:"omitempty,dive"`
}

// UpdateCourseRequest allows full or partial replace; nil fields are left as-is.
type UpdateCourseRequest struct {
	CourseTitle         *string         `json:"course_title" validate:"omitempty,min=3"`
	CourseInstructor    *string         `json:"course_instructor"`
	CourseCategory      *string         `json:"course_category"`
	CourseLevel         *string         `json:"course_level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	CourseDurationValue *int            `json:"course_duration_value" validate:"omitempty,gt=0"`
	CourseDurationUnit  *string         `json:"course_duration_unit" validate:"omitempty,oneof=days weeks months"`
	CourseDescription   *string         `json:"course_description"`
	CourseThumbnail     *string         `json:"course_thumbnail"`
	CourseRating        *float64        `json:"course_rating" validate:"omitempty,gte=0,lte=5"`
	CourseStudents      *int            `json:"course_students" validate:"omitempty,gte=0"`
	CoursePrice         *float64        `json:"course_price" validate:"omitempty,gte=0"`
	CourseModules       *[]CourseModule `json:"course_modules" validate:"omitempty,dive"`
}

// ============================
// Converters
// ============================

func ModulesToJSON(modules []CourseModule) datatypes.JSON {
	if modules == nil {
		modules = []CourseModule{}
	}
	b, _ := json.Marshal(modules)
	return datatypes.JSON(b)
}

func modulesFromJSON(raw datatypes.JSON) []CourseModule {
	out := []CourseModule{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func ToCourseDTO(m model.CourseModel) CourseDTO {
	return CourseDTO{
		CourseID:            m.CourseID.String(),
		CourseTitle:         m.CourseTitle,
		CourseInstructor:    m.CourseInstructor,
		CourseCategory:      m.CourseCategory,
		CourseLevel:         m.CourseLevel,
		CourseDurationValue: m.CourseDurationValue,
		CourseDurationUnit:  m.CourseDurationUnit,
		CourseDescription:   m.CourseDescription,
		CourseThumbnail:     m.CourseThumbnail,
		CourseRating:        m.CourseRating,
		CourseStudents:      m.CourseStudents,
		CoursePrice:         m.CoursePrice,
		CourseModules:       modulesFromJSON(m.CourseModules),
		CourseCreatedAt:     m.CourseCreatedAt,
	}
}

func ToCourseDTOs(models []model.CourseModel) []CourseDTO {
	out := make([]CourseDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToCourseDTO(m))
	}
	return out
}
