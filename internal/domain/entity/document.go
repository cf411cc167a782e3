package entity

import "time"

// Document is a provider-hosted document created through the application folder.
type Document struct {
	ID           string    `json:"fileId"`
	Name         string    `json:"fileName"`
	WebViewLink  string    `json:"fileUrl"`
	ModifiedTime time.Time `json:"modifiedTime,omitzero"`
}

// DocumentContent is the plain-text rendering of a document body.
type DocumentContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
