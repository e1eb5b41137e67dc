package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"time"

	"Backend-Masons-Leads/src/models"
)

var ErrPhotoNotFound = errors.New("photo not found")

// ObjectMeta is attached to every stored binary object.
type ObjectMeta struct {
	ContentType  string
	OriginalName string
	UserFullName string
	UserTelegram string
	Timestamp    string
}

// BlobStore persists photo bytes as chunked objects.
type BlobStore interface {
	Upload(ctx context.Context, filename string, meta ObjectMeta, data []byte) (string, error)
	Download(ctx context.Context, id string) ([]byte, error)
}

// FolderRepository persists photo folder documents.
type FolderRepository interface {
	Insert(ctx context.Context, folder *models.PhotoFolder) (string, error)
	FindAll(ctx context.Context) ([]models.PhotoFolder, error)
}

// UploadedFile is one file from the inbound form.
type UploadedFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

func FromFileHeader(fh *multipart.FileHeader) UploadedFile {
	return UploadedFile{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

type Service struct {
	blobs   BlobStore
	folders FolderRepository
	now     func() time.Time
}

func NewService(blobs BlobStore, folders FolderRepository) *Service {
	return &Service{blobs: blobs, folders: folders, now: time.Now}
}

// CreateFolder stores every non-empty file and then records one folder
// document listing what was stored. A file that fails is logged and left out;
// only a failed folder insert fails the call.
func (s *Service) CreateFolder(ctx context.Context, owner models.PhotoOwner, files []UploadedFile) (string, error) {
	stored := make([]models.PhotoMetadata, 0, len(files))

	for _, f := range files {
		if f.Size == 0 {
			log.Printf("[photos] skipping empty file: %s", f.Name)
			continue
		}

		data, err := readFile(f)
		if err != nil {
			log.Printf("[photos] error reading %s: %v", f.Name, err)
			continue
		}
		if len(data) == 0 {
			log.Printf("[photos] skipping empty buffer for file: %s", f.Name)
			continue
		}

		filename := fmt.Sprintf("%s_%s_%d_%s", owner.FullName, owner.Telegram, s.now().UnixMilli(), f.Name)
		id, err := s.blobs.Upload(ctx, filename, ObjectMeta{
			ContentType:  f.ContentType,
			OriginalName: f.Name,
			UserFullName: owner.FullName,
			UserTelegram: owner.Telegram,
			Timestamp:    owner.Timestamp,
		}, data)
		if err != nil {
			log.Printf("[photos] upload error for file %s: %v", f.Name, err)
			continue
		}

		stored = append(stored, models.PhotoMetadata{
			Name:        f.Name,
			ContentType: f.ContentType,
			Size:        int64(len(data)),
			GridFSID:    id,
		})
	}

	if len(stored) == 0 {
		log.Println("[photos] no photos were successfully processed")
	}

	now := s.now()
	folder := &models.PhotoFolder{
		FolderKey: folderKey(owner, now),
		UserType:  string(models.UserTypeMediaBuying),
		FullName:  owner.FullName,
		Telegram:  owner.Telegram,
		Timestamp: owner.Timestamp,
		Photos:    stored,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.folders.Insert(ctx, folder)
	if err != nil {
		return "", fmt.Errorf("insert photo folder: %w", err)
	}
	log.Printf("[photos] folder %s created with %d photos", id, len(stored))
	return id, nil
}

func (s *Service) ListFolders(ctx context.Context) ([]models.PhotoFolder, error) {
	return s.folders.FindAll(ctx)
}

func (s *Service) OpenPhoto(ctx context.Context, id string) ([]byte, error) {
	return s.blobs.Download(ctx, id)
}

// FolderLink is the reference written into the sheet row.
func FolderLink(folderID string) string {
	return "MongoDB folder ID: " + folderID
}

func folderKey(owner models.PhotoOwner, fallback time.Time) string {
	day := fallback.UTC().Format("2006-01-02")
	if ts, err := time.Parse(time.RFC3339Nano, owner.Timestamp); err == nil {
		day = ts.UTC().Format("2006-01-02")
	}
	return fmt.Sprintf("%s_%s_%s", owner.FullName, owner.Telegram, day)
}

func readFile(f UploadedFile) ([]byte, error) {
	if f.Open == nil {
		return nil, errors.New("file has no content")
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
