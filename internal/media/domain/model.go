package domain

import "time"

// FileInfo describes one stored media file.
type FileInfo struct {
	Name string    `json:"name"`
	URL  string    `json:"url"`
	Size int64     `json:"size"`
	Date time.Time `json:"date"`
}

// UploadResult is returned after a successful upload. The filename may carry
// a numeric suffix when the requested name was taken.
type UploadResult struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}
