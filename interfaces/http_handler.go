package interfaces

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"resume-screener/domain"
	"resume-screener/pipeline"
)

// JobPublisher is the queue-facing surface the handler needs.
type JobPublisher interface {
	PublishJob(job domain.ScreeningJob) error
}

type HTTPHandler struct {
	DB      *gorm.DB
	Queue   JobPublisher
	Docs    pipeline.DocumentStore
	Tracker *pipeline.JobTracker
}

func NewHTTPHandler(router *gin.Engine, db *gorm.DB, queue JobPublisher, docs pipeline.DocumentStore, tracker *pipeline.JobTracker) {
	h := &HTTPHandler{DB: db, Queue: queue, Docs: docs, Tracker: tracker}

	router.POST("/sessions", h.CreateSession)
	router.POST("/sessions/:id/resumes", h.SubmitResumes)
	router.GET("/jobs/status", h.JobStatuses)
	router.GET("/resumes/:id", h.GetResume)
}

type createSessionRequest struct {
	Name         string `json:"name" binding:"required"`
	Requirements struct {
		Title              string   `json:"title" binding:"required"`
		Description        string   `json:"description"`
		Location           string   `json:"location"`
		EmploymentType     string   `json:"employment_type"`
		MinExperience      int      `json:"min_experience"`
		MaxExperience      int      `json:"max_experience"`
		RequiredSkills     []string `json:"required_skills"`
		PreferredSkills    []string `json:"preferred_skills"`
		Responsibilities   []string `json:"responsibilities"`
		EducationRequired  []string `json:"education_required"`
		EducationPreferred []string `json:"education_preferred"`
	} `json:"requirements" binding:"required"`
}

// CreateSession stores the job requirements and creates the three triage
// buckets the classifier resolves against.
func (h *HTTPHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := domain.Session{Name: req.Name}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		requirements := domain.JobRequirements{
			SessionID:          session.ID,
			Title:              req.Requirements.Title,
			Description:        req.Requirements.Description,
			Location:           req.Requirements.Location,
			EmploymentType:     req.Requirements.EmploymentType,
			MinExperience:      req.Requirements.MinExperience,
			MaxExperience:      req.Requirements.MaxExperience,
			RequiredSkills:     domain.StringList(req.Requirements.RequiredSkills),
			PreferredSkills:    domain.StringList(req.Requirements.PreferredSkills),
			Responsibilities:   domain.StringList(req.Requirements.Responsibilities),
			EducationRequired:  domain.StringList(req.Requirements.EducationRequired),
			EducationPreferred: domain.StringList(req.Requirements.EducationPreferred),
		}
		if err := tx.Create(&requirements).Error; err != nil {
			return err
		}
		buckets := []domain.Bucket{
			{SessionID: session.ID, Name: domain.BucketExcellent, Position: 0},
			{SessionID: session.ID, Name: domain.BucketGood, Position: 1},
			{SessionID: session.ID, Name: domain.BucketNoGo, Position: 2},
		}
		return tx.Create(&buckets).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": session.ID})
}

// SubmitResumes accepts one or more résumé files, stores the raw bytes,
// creates placeholder resume records and enqueues one job per file. The
// requirements snapshot travels inside the queue message.
func (h *HTTPHandler) SubmitResumes(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	var requirements domain.JobRequirements
	if err := h.DB.First(&requirements, "session_id = ?", sessionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one file is required"})
		return
	}

	type submitted struct {
		ResumeID uint   `json:"resume_id"`
		JobID    string `json:"job_id"`
		FileName string `json:"file_name"`
	}
	results := make([]submitted, 0, len(files))

	for _, header := range files {
		mimeType := declaredMimeType(header.Header.Get("Content-Type"), header.Filename)
		if !pipeline.SupportedMimeType(mimeType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type: " + header.Filename})
			return
		}

		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open " + header.Filename})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read " + header.Filename})
			return
		}

		key, err := h.Docs.Put(c.Request.Context(), data, header.Filename, mimeType)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store " + header.Filename})
			return
		}

		resume := domain.Resume{
			SessionID:   uint(sessionID),
			DocumentKey: key,
			FileName:    header.Filename,
			MimeType:    mimeType,
			Status:      domain.ResumeStatusProcessing,
		}
		if err := h.DB.Create(&resume).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save resume record"})
			return
		}

		job := domain.ScreeningJob{
			JobID:        uuid.NewString(),
			SessionID:    uint(sessionID),
			ResumeID:     resume.ID,
			DocumentKey:  key,
			MimeType:     mimeType,
			Requirements: requirements,
		}
		h.Tracker.Enqueued(job.JobID)
		if err := h.Queue.PublishJob(job); err != nil {
			h.Tracker.Failed(job.JobID, err)
			h.DB.Model(&domain.Resume{}).
				Where("id = ?", resume.ID).
				Update("status", domain.ResumeStatusFailed)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to queue job"})
			return
		}

		results = append(results, submitted{ResumeID: resume.ID, JobID: job.JobID, FileName: header.Filename})
	}

	c.JSON(http.StatusOK, gin.H{"jobs": results})
}

// JobStatuses reports tracker state for a comma-separated id list.
func (h *HTTPHandler) JobStatuses(c *gin.Context) {
	idsParam := strings.TrimSpace(c.Query("ids"))
	if idsParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids query parameter is required"})
		return
	}

	statuses := make(map[string]pipeline.JobState)
	for _, id := range strings.Split(idsParam, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		statuses[id] = h.Tracker.Status(id)
	}

	c.JSON(http.StatusOK, gin.H{"jobs": statuses})
}

// GetResume returns the stored résumé with its structured profile and, once
// a terminal status is reached, the evaluation and bucket assignment.
func (h *HTTPHandler) GetResume(c *gin.Context) {
	id, err := strconv.Atoi(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var resume domain.Resume
	if err := h.DB.First(&resume, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "resume not found"})
		return
	}

	resp := gin.H{
		"id":         resume.ID,
		"session_id": resume.SessionID,
		"file_name":  resume.FileName,
		"status":     resume.Status,
		"created_at": resume.CreatedAt,
		"updated_at": resume.UpdatedAt,
	}

	if resume.Status == domain.ResumeStatusProcessed || resume.Status == domain.ResumeStatusNeedsReview {
		resp["extracted_text"] = resume.ExtractedText
		if resume.StructuredData != nil {
			var profile domain.CandidateProfile
			if err := json.Unmarshal([]byte(*resume.StructuredData), &profile); err == nil {
				resp["profile"] = profile
			}
		}
	}

	if resume.Status == domain.ResumeStatusProcessed {
		var eval domain.Evaluation
		if err := h.DB.Where("resume_id = ?", resume.ID).
			Order("created_at DESC").
			First(&eval).Error; err == nil {
			resp["evaluation"] = gin.H{
				"keyword_score":     eval.KeywordScore,
				"qualitative_score": eval.QualitativeScore,
				"total_score":       eval.TotalScore,
			}
		}
		var candidate domain.Candidate
		if err := h.DB.Where("resume_id = ?", resume.ID).First(&candidate).Error; err == nil {
			var bucket domain.Bucket
			if err := h.DB.First(&bucket, candidate.BucketID).Error; err == nil {
				resp["bucket"] = bucket.Name
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func declaredMimeType(contentType, filename string) string {
	contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pipeline.MimePDF
	case ".docx":
		return pipeline.MimeDocx
	default:
		return contentType
	}
}
