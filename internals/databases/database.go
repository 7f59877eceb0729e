package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"learnify_backend/internals/configs"
	courseModel "learnify_backend/internals/features/courses/courses/model"
	subjectModel "learnify_backend/internals/features/courses/subjects/model"
	enrollmentModel "learnify_backend/internals/features/enrollments/enrollments/model"
	testModel "learnify_backend/internals/features/tests/tests/model"
	adminModel "learnify_backend/internals/features/users/admins/model"
	studentModel "learnify_backend/internals/features/users/students/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=learnify&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // needed for transaction-pooling PgBouncer setups
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
		// Deletes must not cascade: removing a Course leaves its Subjects and
		// EnrolledStudent rows in place (frontend contract).
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates every table the API serves, including the
// compound unique index that guards against double enrollment.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&adminModel.AdminModel{},
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&subjectModel.SubjectModel{},
		&enrollmentModel.EnrolledStudentModel{},
		&testModel.TestModel{},
		&testModel.TestQuestionModel{},
	)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
