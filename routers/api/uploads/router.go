package uploads

import (
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/routers/middleware"
	"go.uber.org/zap"
)

// FormField is the multipart field uploaded files are read from
const FormField = "file"

// URLPrefix is the path stored files are served under
const URLPrefix = "/uploads/"

// Router stores and removes uploaded files
type Router interface {
	models.Router
	UploadFile(*gin.Context)
	DeleteFile(*gin.Context)
}

type uploadsRouter struct {
	logger  *zap.Logger
	uploads afero.Fs
}

// NewRouter creates a Router storing files in uploads. Fails if the root of uploads
// cannot be created
func NewRouter(logger *zap.Logger, uploads afero.Fs) (Router, error) {
	err := uploads.MkdirAll("/", 0755)
	if err != nil {
		return nil, errors.Wrap(err, "could not create uploads directory")
	}

	return &uploadsRouter{
		logger:  logger,
		uploads: uploads,
	}, nil
}

func (r *uploadsRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.POST("", r.UploadFile)
	routerGroup.DELETE("/:filename", r.DeleteFile)
}

// POST: /api/upload
// multipart/form-data
// Request:  file file
// Response: filename string, url string, size int64
func (r *uploadsRouter) UploadFile(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile(FormField)
	if err != nil {
		if middleware.IsBodyTooLarge(ctx) {
			r.logger.Debug("uploaded file too large", zap.Error(err))
			return
		}
		r.logger.Debug("file not provided", zap.Error(err))
		models.SendAPIError(ctx, http.StatusBadRequest, "file must be provided")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		r.logger.Error("could not open uploaded file", zap.Error(err))
		_ = ctx.Error(err)
		return
	}
	defer src.Close()

	filename := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	size, err := r.store(filename, src)
	if err != nil {
		r.logger.Error("could not store uploaded file", zap.String("filename", filename), zap.Error(err))
		_ = ctx.Error(err)
		return
	}

	r.logger.Info("file uploaded", zap.String("filename", filename), zap.Int64("size", size))
	ctx.JSON(http.StatusCreated, uploadFileRes{
		Filename: filename,
		URL:      path.Join(URLPrefix, filename),
		Size:     size,
	})
}

// DELETE: /api/upload/:filename
func (r *uploadsRouter) DeleteFile(ctx *gin.Context) {
	filename := ctx.Param("filename")
	if !isValidFilename(filename) {
		models.SendAPIError(ctx, http.StatusBadRequest, "invalid filename")
		return
	}

	exists, err := afero.Exists(r.uploads, filename)
	if err != nil {
		r.logger.Error("could not check file", zap.String("filename", filename), zap.Error(err))
		_ = ctx.Error(err)
		return
	}
	if !exists {
		models.SendAPIError(ctx, http.StatusNotFound, "file not found")
		return
	}

	err = r.uploads.Remove(filename)
	if err != nil {
		r.logger.Error("could not remove file", zap.String("filename", filename), zap.Error(err))
		_ = ctx.Error(err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Status: http.StatusOK,
	})
}

func (r *uploadsRouter) store(filename string, src io.Reader) (int64, error) {
	dst, err := r.uploads.Create(filename)
	if err != nil {
		return 0, errors.Wrap(err, "could not create file")
	}

	size, err := io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		_ = r.uploads.Remove(filename)
		return 0, errors.Wrap(err, "could not write file")
	}

	return size, dst.Close()
}

func isValidFilename(filename string) bool {
	return filename != "" &&
		!strings.HasPrefix(filename, ".") &&
		!strings.ContainsAny(filename, `/\`)
}
