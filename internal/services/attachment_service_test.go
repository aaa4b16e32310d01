package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"testing"

	"apptrack/internal/cache"
	"apptrack/internal/models"
	"apptrack/internal/services/dto"
	"apptrack/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- fakes ---

type fakeAttachmentRepo struct {
	byID    map[string]*models.Attachment
	created []*models.Attachment
	nextID  int
}

func newFakeAttachmentRepo() *fakeAttachmentRepo {
	return &fakeAttachmentRepo{byID: make(map[string]*models.Attachment)}
}

func (r *fakeAttachmentRepo) Create(ctx context.Context, attachment *models.Attachment) error {
	r.nextID++
	attachment.ID = fmt.Sprintf("att-%d", r.nextID)
	r.byID[attachment.ID] = attachment
	r.created = append(r.created, attachment)
	return nil
}

func (r *fakeAttachmentRepo) GetByID(ctx context.Context, id string) (*models.Attachment, error) {
	att, ok := r.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return att, nil
}

func (r *fakeAttachmentRepo) ListByJob(ctx context.Context, jobID string) ([]*models.Attachment, error) {
	var out []*models.Attachment
	for _, att := range r.created {
		if att.JobID == jobID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (r *fakeAttachmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeJobRepo struct {
	jobs map[string]*models.Job
}

func (r *fakeJobRepo) List(ctx context.Context) ([]*models.Job, error) { return nil, nil }
func (r *fakeJobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	job, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return job, nil
}
func (r *fakeJobRepo) Create(ctx context.Context, job *models.Job) error { return nil }
func (r *fakeJobRepo) Update(ctx context.Context, job *models.Job) error { return nil }
func (r *fakeJobRepo) Delete(ctx context.Context, id string) error       { return nil }

type fakeStorage struct {
	files map[string][]byte
}

func newFakeStorage() *fakeStorage { return &fakeStorage{files: make(map[string][]byte)} }

func (s *fakeStorage) Save(ctx context.Context, path string, reader io.Reader, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(ctx context.Context, path string) (string, error) {
	return "/api/v1/files/" + path, nil
}

func (s *fakeStorage) GetSize(ctx context.Context, path string) (int64, error) {
	return int64(len(s.files[path])), nil
}

// --- helpers ---

const testJobID = "8b8f0d9c-1111-4222-8333-444455556666"

func newTestService(t *testing.T) (AttachmentService, *fakeAttachmentRepo, *fakeStorage) {
	t.Helper()
	repo := newFakeAttachmentRepo()
	jobRepo := &fakeJobRepo{jobs: map[string]*models.Job{
		testJobID: {PositionTitle: "Backend Engineer"},
	}}
	store := newFakeStorage()
	recordCache, err := cache.New()
	require.NoError(t, err)

	svc := NewAttachmentService(repo, jobRepo, store, recordCache, 1024, []string{".pdf", ".txt", ".md"})
	return svc, repo, store
}

func formFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

// --- tests ---

func TestAttachmentUpload(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: testJobID, Type: "resume"}

	att, err := svc.Upload(context.Background(), req, formFile(t, "resume.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)

	assert.Equal(t, models.AttachmentTypeResume, att.Type)
	assert.Equal(t, "resume.pdf", att.Filename)
	assert.Equal(t, testJobID, att.JobID)
	assert.NotEmpty(t, att.URL)
	require.NotNil(t, att.SizeBytes)
	assert.Equal(t, int64(8), *att.SizeBytes)

	// stored under a generated name, not the user's filename
	assert.NotContains(t, att.Path, "resume.pdf")
	assert.Contains(t, store.files, att.Path)
	assert.Len(t, repo.created, 1)
}

func TestAttachmentUploadDefaultsToOtherDocument(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: testJobID}

	att, err := svc.Upload(context.Background(), req, formFile(t, "notes.txt", []byte("hi")))
	require.NoError(t, err)
	assert.Equal(t, models.AttachmentTypeOtherDocument, att.Type)
}

func TestAttachmentUploadRejectsExtension(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: testJobID}

	_, err := svc.Upload(context.Background(), req, formFile(t, "photo.png", []byte("png")))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidFileType, appErr.Code)

	// nothing persisted, nothing stored
	assert.Empty(t, repo.created)
	assert.Empty(t, store.files)
}

func TestAttachmentUploadRejectsOversizedFile(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: testJobID}

	_, err := svc.Upload(context.Background(), req, formFile(t, "big.txt", bytes.Repeat([]byte("x"), 2048)))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeFileTooLarge, appErr.Code)
}

func TestAttachmentUploadUnknownJob(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: "00000000-0000-4000-8000-000000000000"}

	_, err := svc.Upload(context.Background(), req, formFile(t, "resume.pdf", []byte("%PDF")))
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestAttachmentDelete(t *testing.T) {
	t.Parallel()

	svc, repo, store := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: testJobID}
	att, err := svc.Upload(context.Background(), req, formFile(t, "notes.md", []byte("# notes")))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), att.ID))

	assert.NotContains(t, repo.byID, att.ID)
	assert.NotContains(t, store.files, att.Path)
}

// Deleting an id the server no longer knows is a reported failure; the stale
// entry disappears only when the caller refreshes.
func TestAttachmentDeleteMissingID(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)

	err := svc.Delete(context.Background(), "gone")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestAttachmentOpenStreamsStoredBytes(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: testJobID}
	att, err := svc.Upload(context.Background(), req, formFile(t, "cover.txt", []byte("dear team")))
	require.NoError(t, err)

	reader, got, err := svc.Open(context.Background(), att.ID)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "dear team", string(data))
	assert.Equal(t, att.ID, got.ID)
}

func TestAttachmentListByJob(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	req := &dto.UploadAttachmentRequest{JobID: testJobID}

	_, err := svc.Upload(context.Background(), req, formFile(t, "a.txt", []byte("a")))
	require.NoError(t, err)
	_, err = svc.Upload(context.Background(), req, formFile(t, "b.txt", []byte("b")))
	require.NoError(t, err)

	attachments, err := svc.ListByJob(context.Background(), testJobID)
	require.NoError(t, err)
	assert.Len(t, attachments, 2)
}
