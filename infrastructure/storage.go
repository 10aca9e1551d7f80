package infrastructure

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"resume-screener/domain"
)

// DocumentStorage keeps raw document bytes in a blob table behind the
// pipeline's DocumentStore interface. Keys are opaque and prefixed with the
// upload timestamp.
type DocumentStorage struct {
	db *gorm.DB
}

func NewDocumentStorage(db *gorm.DB) *DocumentStorage {
	return &DocumentStorage{db: db}
}

func (s *DocumentStorage) Put(ctx context.Context, data []byte, name, contentType string) (string, error) {
	key := fmt.Sprintf("%s/%s/%s",
		time.Now().UTC().Format("20060102T150405"),
		uuid.NewString(),
		sanitizeName(name),
	)

	doc := domain.Document{
		Key:         key,
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}
	if err := s.db.WithContext(ctx).Create(&doc).Error; err != nil {
		return "", fmt.Errorf("store document: %w", err)
	}
	return key, nil
}

func (s *DocumentStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var doc domain.Document
	if err := s.db.WithContext(ctx).First(&doc, "`key` = ?", key).Error; err != nil {
		return nil, fmt.Errorf("load document %q: %w", key, err)
	}
	return doc.Data, nil
}

func (s *DocumentStorage) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&domain.Document{}, "`key` = ?", key).Error; err != nil {
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}

func sanitizeName(name string) string {
	name = path.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." {
		name = "document"
	}
	return name
}
