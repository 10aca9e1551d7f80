package infrastructure

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"resume-screener/domain"
)

func NewMySQLConnection(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DB_DSN is not set in environment")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&domain.Session{},
		&domain.JobRequirements{},
		&domain.Bucket{},
		&domain.Resume{},
		&domain.Candidate{},
		&domain.Evaluation{},
		&domain.Document{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	seedDemoSession(db)

	fmt.Println("✅ Connected to MySQL and migrated schema")
	return db
}

// seedDemoSession inserts one screening session with requirements and its
// three triage buckets when the database is empty.
func seedDemoSession(db *gorm.DB) {
	var count int64
	if err := db.Model(&domain.Session{}).Count(&count).Error; err != nil {
		log.Fatalf("failed to count sessions: %v", err)
	}
	if count > 0 {
		return
	}

	session := domain.Session{Name: "Backend Engineer Screening", CreatedAt: time.Now()}
	if err := db.Create(&session).Error; err != nil {
		log.Fatalf("failed to seed session: %v", err)
	}

	requirements := domain.JobRequirements{
		SessionID:      session.ID,
		Title:          "Product Engineer (Backend)",
		Description:    "Backend engineer building scalable services in Go with MySQL, RabbitMQ and AI/LLM integration.",
		Location:       "Remote",
		EmploymentType: "full-time",
		MinExperience:  3,
		MaxExperience:  8,
		RequiredSkills: domain.StringList{"Go", "MySQL", "RabbitMQ", "REST APIs"},
		PreferredSkills: domain.StringList{
			"Docker", "Kubernetes", "LLM integration",
		},
		Responsibilities: domain.StringList{
			"Design and build backend services",
			"Integrate AI-powered features",
			"Own services in production",
		},
		EducationRequired:  domain.StringList{"Bachelor in Computer Science or equivalent"},
		EducationPreferred: domain.StringList{},
	}
	if err := db.Create(&requirements).Error; err != nil {
		log.Fatalf("failed to seed requirements: %v", err)
	}

	buckets := defaultBuckets(session.ID)
	if err := db.Create(&buckets).Error; err != nil {
		log.Fatalf("failed to seed buckets: %v", err)
	}

	fmt.Println("✅ Seeded demo screening session")
}

func defaultBuckets(sessionID uint) []domain.Bucket {
	return []domain.Bucket{
		{SessionID: sessionID, Name: domain.BucketExcellent, Position: 0},
		{SessionID: sessionID, Name: domain.BucketGood, Position: 1},
		{SessionID: sessionID, Name: domain.BucketNoGo, Position: 2},
	}
}
