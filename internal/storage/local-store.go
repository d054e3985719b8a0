package storage

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// StoredFile beschreibt eine gespeicherte Datei.
type StoredFile struct {
	Filename string
	Path     string
	Size     int64
	MimeType string
}

type FileStore interface {
	Validate(header *multipart.FileHeader) *app_errors.AppError
	Save(field string, header *multipart.FileHeader) (*StoredFile, *app_errors.AppError)
	Exists(path string) bool
	Remove(path string) error
}

// LocalStore legt Anhänge im lokalen Upload-Verzeichnis ab.
type LocalStore struct {
	dir         string
	maxSize     int64
	allowedExt  map[string]bool
	allowedMime map[string]bool
}

func NewLocalStore(dir string, maxSize int64, extensions, mimeTypes []string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("upload dir %s: %w", dir, err)
	}

	s := &LocalStore{
		dir:         dir,
		maxSize:     maxSize,
		allowedExt:  make(map[string]bool, len(extensions)),
		allowedMime: make(map[string]bool, len(mimeTypes)),
	}
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		s.allowedExt[e] = true
	}
	for _, m := range mimeTypes {
		s.allowedMime[strings.ToLower(strings.TrimSpace(m))] = true
	}
	return s, nil
}

func (s *LocalStore) MaxSize() int64 {
	return s.maxSize
}

// Validate prüft Größe, Endung und MIME-Typ. Beide Listen müssen passen.
func (s *LocalStore) Validate(header *multipart.FileHeader) *app_errors.AppError {
	if header.Size > s.maxSize {
		return app_errors.NewAppError(413, app_errors.ErrTooLarge, "attachment.too_large", nil)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !s.allowedExt[ext] || !s.allowedMime[contentType(header)] {
		return app_errors.NewAppError(400, app_errors.ErrInvalidBody, "attachment.type_not_allowed", nil)
	}
	return nil
}

func (s *LocalStore) Save(field string, header *multipart.FileHeader) (*StoredFile, *app_errors.AppError) {
	if err := s.Validate(header); err != nil {
		return nil, err
	}

	suffix, err := gonanoid.Generate("0123456789", 9)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	name := fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), suffix, ext)
	path := filepath.Join(s.dir, name)

	src, err := header.Open()
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer src.Close()

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, app_errors.Internal(err)
	}

	// Eine Byte mehr lesen als erlaubt, um falsche Size-Header zu erkennen.
	size, copyErr := io.Copy(dst, io.LimitReader(src, s.maxSize+1))
	closeErr := dst.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		return nil, app_errors.Internal(errors.Join(copyErr, closeErr))
	}
	if size > s.maxSize {
		_ = os.Remove(path)
		return nil, app_errors.NewAppError(413, app_errors.ErrTooLarge, "attachment.too_large", nil)
	}

	return &StoredFile{
		Filename: header.Filename,
		Path:     path,
		Size:     size,
		MimeType: contentType(header),
	}, nil
}

func (s *LocalStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (s *LocalStore) Remove(path string) error {
	return os.Remove(path)
}

func contentType(header *multipart.FileHeader) string {
	raw := header.Header.Get("Content-Type")
	if raw == "" {
		return "application/octet-stream"
	}
	mt, _, err := mime.ParseMediaType(raw)
	if err != nil {
		return strings.ToLower(raw)
	}
	return mt
}
