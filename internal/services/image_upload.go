package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// PostImagePrefix namespaces uploaded post images inside the media
// directory. The stored Post.Image path starts with this prefix.
const PostImagePrefix = "posts"

// MediaRoot is the directory uploaded files land in, served under
// /media/.
func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "./media"
}

// SavePostImage writes an uploaded image under the posts/ media prefix
// keeping the original filename, and returns the media-relative path
// to store on the post. No format validation beyond what the upload
// itself enforces.
func SavePostImage(header *multipart.FileHeader) (string, error) {
	name := filepath.Base(header.Filename)
	relPath := filepath.Join(PostImagePrefix, name)

	dir := filepath.Join(MediaRoot(), PostImagePrefix)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(MediaRoot(), relPath))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return relPath, nil
}
