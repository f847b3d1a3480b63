package resumes

import "time"

type Resume struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	FileName    string    `json:"fileName"`
	MimeType    string    `json:"mimeType"`
	SizeBytes   int64     `json:"sizeBytes"`
	StorageKey  string    `json:"-"`
	TextContent string    `json:"textContent,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
