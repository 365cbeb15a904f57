package handlers

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"mealconnect-api/config"

	"github.com/gin-gonic/gin"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var proofExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// saveUpload validates the file's extension against allowed and writes it
// under the upload directory. Returns the public path ("/uploads/<name>").
func saveUpload(c *gin.Context, file *multipart.FileHeader, allowed map[string]bool) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return "", fmt.Errorf("file type %q is not allowed", ext)
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), sanitizeFilename(file.Filename))
	dst := filepath.Join(config.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// sanitizeFilename strips path separators and whitespace from an uploaded name
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		}
		return '_'
	}, name)
}
