package media

import (
	"context"
	"fmt"
	"io"

	"github.com/BlueMoonStudio/BM-Backend/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// UploadResult is the subset of Cloudinary's response the admin UI consumes.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
	Bytes     int    `json:"bytes"`
}

// Uploader wraps the Cloudinary account all catalog and gallery images live
// in. The rest of the system only ever sees the resulting URL strings.
type Uploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func New(cfg *config.Config) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloud, cfg.CloudinaryKey, cfg.CloudinarySecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}

	return &Uploader{cld: cld, folder: cfg.CloudinaryFolder}, nil
}

// Upload stores an image under a fresh public ID. A non-empty subfolder is
// slugged and nested under the account's base folder.
func (u *Uploader) Upload(ctx context.Context, file io.Reader, subfolder string) (*UploadResult, error) {
	folder := u.folder
	if subfolder != "" {
		folder = folder + "/" + Slugify(subfolder)
	}

	res, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: uuid.New().String(),
		Folder:   folder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}

	return &UploadResult{
		SecureURL: res.SecureURL,
		PublicID:  res.PublicID,
		Width:     res.Width,
		Height:    res.Height,
		Format:    res.Format,
		Bytes:     res.Bytes,
	}, nil
}

// Destroy deletes an image by public ID. A missing image is treated as
// already deleted.
func (u *Uploader) Destroy(ctx context.Context, publicID string) error {
	res, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}

	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: unexpected result %q", res.Result)
	}
	return nil
}
