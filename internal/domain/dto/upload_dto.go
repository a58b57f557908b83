package dto

// UploadResponse mirrors what the media-hosting provider reports back after
// a successful upload.
type UploadResponse struct {
	OK           bool   `json:"ok"`
	URL          string `json:"url"`
	PublicID     string `json:"public_id"`
	Bytes        int64  `json:"bytes"`
	Format       string `json:"format,omitempty"`
	ResourceType string `json:"resource_type"`
	OriginalName string `json:"originalname"`
}

type PingResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg,omitempty"`
}
