package leads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"Backend-Masons-Leads/src/models"
	"Backend-Masons-Leads/src/services/photos"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Sentinels written into the photos column when no folder link exists.
const (
	NoValidImages     = "no valid images"
	PhotoUploadFailed = "photo upload failed"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type DuplicateChecker interface {
	CheckDuplicate(ctx context.Context, spreadsheetID string, role models.UserType, value string) bool
}

type RowAppender interface {
	AppendRow(ctx context.Context, spreadsheetID string, lead models.Lead) error
}

type PhotoStore interface {
	CreateFolder(ctx context.Context, owner models.PhotoOwner, files []photos.UploadedFile) (string, error)
}

// Archiver receives every lead after its row was appended.
type Archiver interface {
	Archive(ctx context.Context, submissionID string, lead models.Lead)
}

type Deps struct {
	SpreadsheetID string
	Checker       DuplicateChecker
	Appender      RowAppender
	Photos        PhotoStore
	Claims        ClaimGuard
	Archiver      Archiver
}

type Service struct {
	spreadsheetID string
	checker       DuplicateChecker
	appender      RowAppender
	photos        PhotoStore
	claims        ClaimGuard
	archiver      Archiver
	validate      *validator.Validate
	now           func() time.Time
}

func NewService(d Deps) *Service {
	return &Service{
		spreadsheetID: d.SpreadsheetID,
		checker:       d.Checker,
		appender:      d.Appender,
		photos:        d.Photos,
		claims:        d.Claims,
		archiver:      d.Archiver,
		validate:      newValidator(),
		now:           time.Now,
	}
}

// Submit validates the input, builds the role's record and appends it to the
// role's sheet unless the uniqueness field is already taken. It returns an
// *Error wrapping ErrValidation or ErrConflict for rejected input; any other
// error is internal. Nothing is rolled back on failure.
func (s *Service) Submit(ctx context.Context, in SubmitInput) error {
	if err := validateInput(s.validate, in); err != nil {
		return err
	}

	if s.spreadsheetID == "" {
		return errors.New("google spreadsheet ID not configured")
	}

	role := models.UserType(in.UserType)
	if !role.Valid() {
		log.Printf("[leads] rejecting unknown user type %q", in.UserType)
		return validationError("Unknown user type")
	}

	timestamp := s.now().UTC().Format(isoMillis)
	submissionID := uuid.NewString()

	var lead models.Lead
	switch role {
	case models.UserTypeMediaBuying:
		lead = s.mediaBuyingLead(ctx, in, timestamp)
	case models.UserTypeAdvertiser:
		lead = models.AdvertiserLead{
			Brand:       in.Brand,
			Geolocation: in.Geolocation,
			Contacts:    in.Contacts,
			Timestamp:   timestamp,
		}
	case models.UserTypeServiceRep:
		lead = models.ServiceRepLead{
			Service:   in.Service,
			Contacts:  in.Contacts,
			Terms:     in.Terms,
			Timestamp: timestamp,
		}
	case models.UserTypeOther:
		lead = models.OtherLead{
			FullName:    in.FullName,
			Description: in.Description,
			Timestamp:   timestamp,
		}
	}

	log.Printf("[leads] IN id=%s type=%s", submissionID, role)
	return s.store(ctx, submissionID, lead)
}

func (s *Service) mediaBuyingLead(ctx context.Context, in SubmitInput, timestamp string) models.MediaBuyingLead {
	lead := models.MediaBuyingLead{
		FullName:       in.FullName,
		Telegram:       in.Telegram,
		TeamName:       in.TeamName,
		Niche:          in.Niche,
		Vertical:       in.Vertical,
		TrafficSources: in.TrafficSources,
		PhotosLink:     NoValidImages,
		Timestamp:      timestamp,
	}

	images := filterImages(in.Photos)
	if len(images) == 0 {
		return lead
	}

	if s.photos == nil {
		log.Println("[leads] photo store not configured")
		lead.PhotosLink = PhotoUploadFailed
		return lead
	}

	folderID, err := s.photos.CreateFolder(ctx, models.PhotoOwner{
		FullName:  in.FullName,
		Telegram:  in.Telegram,
		Timestamp: timestamp,
	}, images)
	if err != nil {
		log.Printf("[leads] photo upload failed, continuing without link: %v", err)
		lead.PhotosLink = PhotoUploadFailed
		return lead
	}

	lead.PhotosLink = photos.FolderLink(folderID)
	lead.PhotosCount = len(images)
	return lead
}

func (s *Service) store(ctx context.Context, submissionID string, lead models.Lead) error {
	role := lead.Role()
	key := lead.UniqueValue()
	claimed := false

	if key != "" {
		if s.checker.CheckDuplicate(ctx, s.spreadsheetID, role, key) {
			log.Printf("[leads] duplicate %s submission id=%s", role, submissionID)
			return conflictError(conflictMessage(role))
		}

		if s.claims != nil {
			ok, err := s.claims.Claim(ctx, role, key)
			switch {
			case err != nil:
				log.Printf("[leads] claim unavailable, continuing without it: %v", err)
			case !ok:
				log.Printf("[leads] concurrent %s submission lost claim id=%s", role, submissionID)
				return conflictError(conflictMessage(role))
			default:
				claimed = true
			}
		}
	}

	if err := s.appender.AppendRow(ctx, s.spreadsheetID, lead); err != nil {
		if claimed {
			if rerr := s.claims.Release(ctx, role, key); rerr != nil {
				log.Printf("[leads] release claim: %v", rerr)
			}
		}
		return fmt.Errorf("append %s row: %w", role, err)
	}

	if s.archiver != nil {
		s.archiver.Archive(ctx, submissionID, lead)
	}
	log.Printf("[leads] stored id=%s type=%s", submissionID, role)
	return nil
}

func filterImages(files []photos.UploadedFile) []photos.UploadedFile {
	out := make([]photos.UploadedFile, 0, len(files))
	for _, f := range files {
		if f.Size > 0 && strings.HasPrefix(f.ContentType, "image/") {
			out = append(out, f)
		}
	}
	return out
}

func conflictMessage(role models.UserType) string {
	switch role {
	case models.UserTypeMediaBuying:
		return "A submission with this Telegram already exists"
	case models.UserTypeOther:
		return "A submission with this name already exists"
	default:
		return "A submission with these contacts already exists"
	}
}
