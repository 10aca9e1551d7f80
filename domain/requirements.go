package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList is stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

// Session groups the résumés screened against one set of job requirements.
type Session struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time
}

// JobRequirements is the job profile a session screens against. The row is
// written once at session creation; workers receive a snapshot in the queue
// message and never read it back mid-job.
type JobRequirements struct {
	ID                 uint       `gorm:"primaryKey" json:"-"`
	SessionID          uint       `gorm:"not null;index" json:"-"`
	Title              string     `gorm:"size:255;not null" json:"title"`
	Description        string     `gorm:"type:text" json:"description"`
	Location           string     `gorm:"size:255" json:"location"`
	EmploymentType     string     `gorm:"size:64" json:"employment_type"`
	MinExperience      int        `json:"min_experience"`
	MaxExperience      int        `json:"max_experience"`
	RequiredSkills     StringList `gorm:"type:json" json:"required_skills"`
	PreferredSkills    StringList `gorm:"type:json" json:"preferred_skills"`
	Responsibilities   StringList `gorm:"type:json" json:"responsibilities"`
	EducationRequired  StringList `gorm:"type:json" json:"education_required"`
	EducationPreferred StringList `gorm:"type:json" json:"education_preferred"`
	CreatedAt          time.Time  `json:"-"`
}
