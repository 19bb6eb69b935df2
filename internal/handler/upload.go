package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-catalog/internal/storage"
)

const uploadCacheControl = "public, max-age=31536000"

// imageExts maps each accepted content type to the extensions allowed for it;
// the first entry is used when the client name has none of them.
var imageExts = map[string][]string{
	"image/jpeg": {".jpg", ".jpeg"},
	"image/png":  {".png"},
	"image/gif":  {".gif"},
	"image/webp": {".webp"},
}

// UploadHandler stores poster images and serves them back.
type UploadHandler struct {
	Store    storage.Provider
	MaxBytes int64
}

func NewUploadHandler(store storage.Provider, maxBytes int64) *UploadHandler {
	return &UploadHandler{Store: store, MaxBytes: maxBytes}
}

type uploadResp struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

// UploadImage handles POST /api/upload/image with multipart field "image".
func (h *UploadHandler) UploadImage(c echo.Context) error {
	if _, err := getUserID(c); err != nil {
		return err
	}
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return fail(c, http.StatusBadRequest, "No image file provided")
		}
		return err
	}
	if fh.Size > h.MaxBytes {
		return fail(c, http.StatusBadRequest, "File too large. Maximum size is "+formatSize(h.MaxBytes))
	}

	f, err := fh.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return err
	}
	contentType := http.DetectContentType(head[:n])
	exts, allowed := imageExts[contentType]
	if !allowed {
		return fail(c, http.StatusBadRequest, "Only image files are allowed (jpeg, png, gif, webp)")
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return err
	}

	ext := exts[0]
	if orig := strings.ToLower(filepath.Ext(fh.Filename)); slices.Contains(exts, orig) {
		ext = orig
	}
	name := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	if err := h.Store.Put(name, f, contentType, uploadCacheControl); err != nil {
		return err
	}

	return ok(c, http.StatusOK, uploadResp{
		Filename:     name,
		OriginalName: fh.Filename,
		Size:         fh.Size,
		URL:          "/uploads/" + name,
	})
}

// ServeUpload handles GET /uploads/:filename.  Only plain base names are
// looked up.
func (h *UploadHandler) ServeUpload(c echo.Context) error {
	name := c.Param("filename")
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return fail(c, http.StatusNotFound, "File not found")
	}
	obj, err := h.Store.Get(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fail(c, http.StatusNotFound, "File not found")
		}
		return err
	}
	defer obj.Body.Close()

	hdr := c.Response().Header()
	hdr.Set("Cache-Control", uploadCacheControl)
	hdr.Set("Cross-Origin-Resource-Policy", "cross-origin")
	if obj.ContentLength > 0 {
		hdr.Set(echo.HeaderContentLength, strconv.FormatInt(obj.ContentLength, 10))
	}
	if !obj.LastModified.IsZero() {
		hdr.Set(echo.HeaderLastModified, obj.LastModified.UTC().Format(http.TimeFormat))
	}
	return c.Stream(http.StatusOK, obj.ContentType, obj.Body)
}

func formatSize(n int64) string {
	if n >= 1<<20 && n%(1<<20) == 0 {
		return strconv.FormatInt(n>>20, 10) + "MB"
	}
	if n >= 1<<10 && n%(1<<10) == 0 {
		return strconv.FormatInt(n>>10, 10) + "KB"
	}
	return strconv.FormatInt(n, 10) + " bytes"
}
