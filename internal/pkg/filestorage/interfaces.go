package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations. The rest of
// the application only sees public URLs; where the bytes live is this
// package's concern.
type FileStorage interface {
	// SaveFile saves a file and returns the public URL it is reachable at
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// SaveFileWithPath lets you specify a subdirectory for storing the file
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a file from storage
	DeleteFile(filePath string) error
}
