package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func (s *Service) Documents(ctx context.Context, companyID uuid.UUID) ([]entity.Document, error) {
	return s.repo.DocumentsByCompany(ctx, companyID)
}

// UploadDocument stores the file first and then its metadata. A failed
// metadata insert removes the stored file.
func (s *Service) UploadDocument(ctx context.Context, companyID uuid.UUID, in entity.DocumentInput) (entity.Document, error) {
	in.Name = strings.TrimSpace(in.Name)

	err := ValidateDocument(in)
	if err != nil {
		return entity.Document{}, err
	}

	if s.maxUploadSize > 0 && in.Size > s.maxUploadSize {
		return entity.Document{}, entity.NewValidationError(nil, "file",
			fmt.Sprintf("Arquivo maior que o limite de %d MB", s.maxUploadSize>>20))
	}

	_, err = s.repo.CompanyByID(ctx, companyID)
	if err != nil {
		return entity.Document{}, fmt.Errorf("get company %s: %w", companyID, err)
	}

	id := uuid.Must(uuid.NewV4())
	key := id.String() + strings.ToLower(filepath.Ext(in.FileName))

	err = s.storage.Save(ctx, key, in.Content, in.Size, in.MimeType)
	if err != nil {
		return entity.Document{}, fmt.Errorf("save file: %w", err)
	}

	doc := entity.Document{
		ID:          id,
		CompanyID:   companyID,
		Name:        in.Name,
		FileName:    filepath.Base(in.FileName),
		FilePath:    key,
		FileSize:    in.Size,
		MimeType:    in.MimeType,
		Kind:        in.Kind,
		StorageType: s.storage.Type(),
		UploadedAt:  s.now(),
	}

	err = s.repo.CreateDocument(ctx, doc)
	if err != nil {
		s.removeFile(ctx, doc)
		return entity.Document{}, fmt.Errorf("create document: %w", err)
	}

	slog.InfoContext(ctx, "document uploaded", "document_id", doc.ID, "company_id", companyID, "size", doc.FileSize)

	return doc, nil
}

func (s *Service) DownloadDocument(ctx context.Context, id uuid.UUID) (entity.DownloadedDocument, error) {
	doc, err := s.repo.DocumentByID(ctx, id)
	if err != nil {
		return entity.DownloadedDocument{}, err
	}

	if doc.StorageType != s.storage.Type() {
		return entity.DownloadedDocument{}, fmt.Errorf("document %s is kept in %s storage", id, doc.StorageType)
	}

	content, err := s.storage.Open(ctx, doc.FilePath)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("open file: %w", err)
	}

	return entity.DownloadedDocument{
		FileName: doc.FileName,
		MimeType: doc.MimeType,
		Content:  content,
	}, nil
}

func (s *Service) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	doc, err := s.repo.DocumentByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.repo.DeleteDocument(ctx, id)
	if err != nil {
		return fmt.Errorf("delete document %s: %w", id, err)
	}

	s.removeFile(ctx, doc)

	return nil
}

// removeFile only logs failures, the metadata is already gone.
func (s *Service) removeFile(ctx context.Context, doc entity.Document) {
	if doc.StorageType != s.storage.Type() {
		return
	}

	err := s.storage.Remove(ctx, doc.FilePath)
	if err != nil {
		slog.ErrorContext(ctx, fmt.Sprintf("remove file: %s", err), "document_id", doc.ID, "path", doc.FilePath)
	}
}
