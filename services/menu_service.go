package services

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/amjudson/react-redmango-api/entity"
	"github.com/amjudson/react-redmango-api/repository"
	"github.com/amjudson/react-redmango-api/pkg/storage"
)

type MenuService struct {
	Repo  *repository.MenuRepository
	Blobs storage.BlobStore
}

func NewMenuService(repo *repository.MenuRepository, blobs storage.BlobStore) *MenuService {
	return &MenuService{Repo: repo, Blobs: blobs}
}

// MenuItemIn carries the scalar fields of a create/update request.
type MenuItemIn struct {
	Name        string
	Description string
	SpecialTag  string
	Category    string
	Price       float64
}

// ImageUpload is an incoming image file.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

// Create uploads the image first, then persists the item with the
// resulting URL.
func (s *MenuService) Create(ctx context.Context, in MenuItemIn, img ImageUpload) (*entity.MenuItem, error) {
	url, err := s.Blobs.Upload(ctx, blobName(img.Filename), img.ContentType, img.Body)
	if err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        in.Name,
		Description: in.Description,
		SpecialTag:  in.SpecialTag,
		Category:    in.Category,
		Price:       in.Price,
		Image:       url,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update replaces the scalar fields and, when a new image arrives, swaps
// the blob: old one is deleted first, then the new one uploaded. A failure
// between the two leaves the item without an image; that gap is reported,
// not masked.
func (s *MenuService) Update(ctx context.Context, id uint, in MenuItemIn, img *ImageUpload) error {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}

	item.Name = in.Name
	item.Description = in.Description
	item.SpecialTag = in.SpecialTag
	item.Category = in.Category
	item.Price = in.Price

	if img != nil {
		if item.Image != "" {
			if err := s.Blobs.Delete(ctx, blobNameFromURL(item.Image)); err != nil {
				log.Warn().Err(err).Uint("menuItemId", id).Msg("delete old image blob failed")
			}
			item.Image = ""
		}
		url, err := s.Blobs.Upload(ctx, blobName(img.Filename), img.ContentType, img.Body)
		if err != nil {
			// Persist the cleared image so the row matches blob state.
			if saveErr := s.Repo.Update(item); saveErr != nil {
				return saveErr
			}
			return err
		}
		item.Image = url
	}

	return s.Repo.Update(item)
}

// Delete removes the blob first, then the row.
func (s *MenuService) Delete(ctx context.Context, id uint) error {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}

	if item.Image != "" {
		if err := s.Blobs.Delete(ctx, blobNameFromURL(item.Image)); err != nil {
			return err
		}
	}
	return s.Repo.Delete(id)
}

func blobName(filename string) string {
	return uuid.New().String() + filepath.Ext(filename)
}

func blobNameFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
