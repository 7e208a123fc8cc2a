package entity

import (
	"io"
	"time"

	"github.com/gofrs/uuid/v5"
)

type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeCloud StorageType = "cloud"
)

type Document struct {
	ID          uuid.UUID   `json:"id"`
	CompanyID   uuid.UUID   `json:"clienteId"`
	Name        string      `json:"nomeDocumento"`
	FileName    string      `json:"nomeArquivo"`
	FilePath    string      `json:"caminhoArquivo"`
	FileSize    int64       `json:"tamanhoArquivo"`
	MimeType    string      `json:"tipoMime"`
	Kind        string      `json:"tipoDocumento,omitempty"`
	StorageType StorageType `json:"tipoArmazenamento"`
	UploadedAt  time.Time   `json:"dataUpload"`
}

type DocumentInput struct {
	Name     string
	Kind     string
	FileName string
	MimeType string
	Size     int64
	Content  io.Reader
}

type DownloadedDocument struct {
	FileName string
	MimeType string
	Content  io.ReadCloser
}
