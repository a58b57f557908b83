package constants

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Coarse resource classification used by the media-hosting provider.
const (
	ResourceImage = "image"
	ResourceVideo = "video"
	ResourceRaw   = "raw"
	ResourceAuto  = "auto"
)

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)
