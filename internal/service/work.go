package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"studioapi/internal/model"
	"studioapi/internal/repository"
	"studioapi/internal/repository/postgres"
	"studioapi/internal/storage"
)

var (
	ErrTitleRequired     = errors.New("title is required")
	ErrCategoryRequired  = errors.New("category is required")
	ErrUnknownCategory   = errors.New("unknown category")
	ErrMainImageRequired = errors.New("main image is required")
	ErrReaderNil         = errors.New("file reader is nil")
	ErrWorkNotFound      = errors.New("work not found")
	ErrDuplicateTitle    = errors.New("a project with this title already exists")
	ErrNoPublicURL       = errors.New("public URL unavailable after upload")
)

// Destination folders inside the bucket, one per file role.
const (
	folderWorks      = "works"
	folderLogos      = "logos"
	folderAdditional = "additional"
)

// relatedLimit caps the related-works query.
const relatedLimit = 3

// FileInput is one file selected for upload.
type FileInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// TeamInput carries the optional team attribution fields as entered.
// Blank fields persist as NULL, never as empty strings.
type TeamInput struct {
	WebDeveloper string
	UIUXDesigner string
	Photographer string
	Illustrator  string
}

// CreateWorkInput is everything a submission provides: scalar fields plus
// the selected files. MainImage is required; ClientLogo and
// AdditionalImages are optional.
type CreateWorkInput struct {
	Title            string
	Category         string
	Description      string
	ClientName       string
	PDFURL           string
	Team             TeamInput
	MainImage        *FileInput
	ClientLogo       *FileInput
	AdditionalImages []FileInput
}

// WorkService defines the use cases for portfolio works.
type WorkService interface {
	// Create validates the submission, uploads all selected files
	// concurrently, and persists exactly one work record. If the insert
	// fails, objects uploaded for this submission are best-effort deleted.
	Create(ctx context.Context, in CreateWorkInput) (*model.Work, error)

	// Get returns a single work by its ID.
	Get(ctx context.Context, id int64) (*model.Work, error)

	// List returns display summaries of all works, newest first.
	List(ctx context.Context) ([]model.WorkSummary, error)

	// Related returns up to 3 works sharing the category of the given work,
	// excluding the work itself, newest first.
	Related(ctx context.Context, id int64) ([]model.WorkSummary, error)
}

// workService is a concrete implementation of WorkService.
type workService struct {
	store storage.Storage
	repo  repository.WorkRepository
}

// NewWorkService constructs a new WorkService.
func NewWorkService(store storage.Storage, repo repository.WorkRepository) WorkService {
	return &workService{store: store, repo: repo}
}

func (s *workService) Create(ctx context.Context, in CreateWorkInput) (*model.Work, error) {
	// Validation happens before any network call.
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Category == "" {
		return nil, ErrCategoryRequired
	}
	if !model.ValidCategory(in.Category) {
		return nil, ErrUnknownCategory
	}
	if in.MainImage == nil {
		return nil, ErrMainImageRequired
	}

	// Track every key that reaches the bucket so a failed submission can be
	// cleaned up. Append happens from multiple upload goroutines.
	var (
		mu       sync.Mutex
		uploaded []string
	)
	record := func(key string) {
		if key == "" {
			return
		}
		mu.Lock()
		uploaded = append(uploaded, key)
		mu.Unlock()
	}

	// The main image, the optional logo, and each additional image upload
	// concurrently. Absent optional files never touch the network.
	var (
		mainURL string
		logoURL *string
		moreURL = make([]string, len(in.AdditionalImages))
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		url, key, err := s.uploadOne(gctx, *in.MainImage, folderWorks)
		record(key)
		if err != nil {
			return err
		}
		mainURL = url
		return nil
	})

	if in.ClientLogo != nil {
		logo := *in.ClientLogo
		g.Go(func() error {
			url, key, err := s.uploadOne(gctx, logo, folderLogos)
			record(key)
			if err != nil {
				return err
			}
			logoURL = &url
			return nil
		})
	}

	for i, f := range in.AdditionalImages {
		i, f := i, f
		g.Go(func() error {
			url, key, err := s.uploadOne(gctx, f, folderAdditional)
			record(key)
			if err != nil {
				return err
			}
			moreURL[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, s.withCleanup(ctx, err, uploaded)
	}

	w := &model.Work{
		Title:         in.Title,
		Category:      in.Category,
		Description:   nullIfBlank(in.Description),
		ImageURL:      mainURL,
		ClientName:    nullIfBlank(in.ClientName),
		ClientLogoURL: logoURL,
		ImageList:     moreURL,
		PDFURL:        nullIfBlank(in.PDFURL),
		Team: model.WorkTeam{
			WebDeveloper: nullIfBlank(in.Team.WebDeveloper),
			UIUXDesigner: nullIfBlank(in.Team.UIUXDesigner),
			Photographer: nullIfBlank(in.Team.Photographer),
			Illustrator:  nullIfBlank(in.Team.Illustrator),
		},
	}

	stored, err := s.repo.Create(ctx, w)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, s.withCleanup(ctx, ErrDuplicateTitle, uploaded)
		}
		return nil, s.withCleanup(ctx, fmt.Errorf("db save failed: %w", err), uploaded)
	}
	return stored, nil
}

// uploadOne stores one file under folder and resolves its public address.
// The generated object name combines a random token, the current timestamp,
// and the original extension so sibling uploads cannot collide.
// The key is returned even on failure so the caller can delete a stored
// object whose address could not be resolved.
func (s *workService) uploadOne(ctx context.Context, f FileInput, folder string) (url string, key string, err error) {
	if f.Reader == nil {
		return "", "", ErrReaderNil
	}
	ext := filepath.Ext(f.Filename)
	genName := fmt.Sprintf("%s_%d%s", uuid.NewString(), time.Now().UnixMilli(), ext)
	key = folder + "/" + genName

	_, err = s.store.Put(ctx, key, f.Reader, storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
		Metadata: map[string]string{
			"original-filename": f.Filename,
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("upload to storage: %w", err)
	}

	url, err = s.store.PublicURL(key)
	if err != nil {
		return "", key, fmt.Errorf("resolve public url: %w", err)
	}
	if url == "" {
		return "", key, ErrNoPublicURL
	}
	return url, key, nil
}

// withCleanup deletes every object uploaded for a failed submission and
// returns cause, annotated if any delete failed. Cleanup is best-effort:
// the original cause is never masked.
func (s *workService) withCleanup(ctx context.Context, cause error, keys []string) error {
	var delErr error
	for _, key := range keys {
		if err := s.store.Delete(ctx, key); err != nil && delErr == nil {
			delErr = err
		}
	}
	if delErr != nil {
		return fmt.Errorf("%w; cleanup delete failed: %v", cause, delErr)
	}
	return cause
}

// Get returns a work by ID.
func (s *workService) Get(ctx context.Context, id int64) (*model.Work, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if postgres.IsNoRowsError(err) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return w, nil
}

// List returns all works, newest first.
func (s *workService) List(ctx context.Context) ([]model.WorkSummary, error) {
	return s.repo.List(ctx)
}

// Related looks up the work, then returns up to 3 others in its category.
func (s *workService) Related(ctx context.Context, id int64) ([]model.WorkSummary, error) {
	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if postgres.IsNoRowsError(err) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return s.repo.ListRelated(ctx, w.Category, w.ID, relatedLimit)
}

// nullIfBlank maps empty strings to nil so the persisted schema
// distinguishes "not provided" from "empty".
func nullIfBlank(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
