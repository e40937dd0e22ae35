package utils

import (
	"github.com/spf13/afero"
	"github.com/unicsmcr/healthcare_api/config"
)

// UploadsFs is the filesystem uploaded files are stored in
type UploadsFs afero.Fs

// PublicFs is the read-only filesystem of the public static files
type PublicFs afero.Fs

// NewUploadsFs returns the filesystem rooted at the configured uploads directory
func NewUploadsFs(cfg *config.AppConfig) UploadsFs {
	return afero.NewBasePathFs(afero.NewOsFs(), cfg.Server.UploadsDir)
}

// NewPublicFs returns the read-only filesystem rooted at the configured public directory
func NewPublicFs(cfg *config.AppConfig) PublicFs {
	return afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), cfg.Server.PublicDir))
}
