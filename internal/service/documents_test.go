package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/alvaras/internal/entity"
)

func TestService_UploadDocument(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	in := entity.DocumentInput{
		Name:     " Contrato Social ",
		FileName: "Contrato.PDF",
		MimeType: "application/pdf",
		Size:     7,
		Content:  strings.NewReader("content"),
	}

	var savedKey string

	ts.repo.EXPECT().CompanyByID(gomock.Any(), companyID).Return(entity.Company{ID: companyID}, nil)
	ts.storage.EXPECT().Type().Return(entity.StorageTypeLocal).AnyTimes()
	ts.storage.EXPECT().Save(gomock.Any(), gomock.Any(), in.Content, int64(7), "application/pdf").
		DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ int64, _ string) error {
			savedKey = key
			return nil
		})
	ts.repo.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return(nil)

	doc, err := ts.s.UploadDocument(context.Background(), companyID, in)
	r.NoError(err)
	r.Equal("Contrato Social", doc.Name)
	r.Equal(savedKey, doc.FilePath)
	r.True(strings.HasSuffix(savedKey, ".pdf"))
	r.Equal(entity.StorageTypeLocal, doc.StorageType)
	r.Equal(testNow, doc.UploadedAt)
}

func TestService_UploadDocument_RemovesFileWhenMetadataFails(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	companyID := uuid.Must(uuid.NewV4())
	dbErr := errors.New("db down")

	ts.repo.EXPECT().CompanyByID(gomock.Any(), companyID).Return(entity.Company{ID: companyID}, nil)
	ts.storage.EXPECT().Type().Return(entity.StorageTypeCloud).AnyTimes()
	ts.storage.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ts.repo.EXPECT().CreateDocument(gomock.Any(), gomock.Any()).Return(dbErr)
	ts.storage.EXPECT().Remove(gomock.Any(), gomock.Any()).Return(nil)

	_, err := ts.s.UploadDocument(context.Background(), companyID, entity.DocumentInput{
		Name:     "Alvará",
		FileName: "alvara.pdf",
		Size:     1,
		Content:  strings.NewReader("x"),
	})
	r.ErrorIs(err, dbErr)
}

func TestService_UploadDocument_TooLarge(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	_, err := ts.s.UploadDocument(context.Background(), uuid.Must(uuid.NewV4()), entity.DocumentInput{
		Name:     "Planta",
		FileName: "planta.dwg",
		Size:     2 << 20,
		Content:  strings.NewReader("x"),
	})

	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Contains(t, verr.Fields, "file")
}

func TestService_DownloadDocument(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	doc := entity.Document{
		ID:          uuid.Must(uuid.NewV4()),
		FileName:    "alvara.pdf",
		FilePath:    "abc.pdf",
		MimeType:    "application/pdf",
		StorageType: entity.StorageTypeLocal,
	}

	ts.repo.EXPECT().DocumentByID(gomock.Any(), doc.ID).Return(doc, nil)
	ts.storage.EXPECT().Type().Return(entity.StorageTypeLocal).AnyTimes()
	ts.storage.EXPECT().Open(gomock.Any(), "abc.pdf").Return(io.NopCloser(strings.NewReader("pdf")), nil)

	got, err := ts.s.DownloadDocument(context.Background(), doc.ID)
	r.NoError(err)
	r.Equal("alvara.pdf", got.FileName)

	data, err := io.ReadAll(got.Content)
	r.NoError(err)
	r.Equal("pdf", string(data))
}
