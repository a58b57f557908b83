package dto

// FileRefDTO is one asset reference inside a group create request.
type FileRefDTO struct {
	URL              string `json:"url"`
	PublicID         string `json:"public_id,omitempty"`
	Format           string `json:"format,omitempty"`
	Bytes            int64  `json:"bytes,omitempty"`
	ResourceType     string `json:"resource_type,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
}

type CreateGroupRequestDTO struct {
	Name  string       `json:"name"`
	Note  string       `json:"note,omitempty"`
	Files []FileRefDTO `json:"files"`
}

type CreateGroupResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type RemoveFileResponse struct {
	OK      bool  `json:"ok"`
	Updated int64 `json:"updated"`
}
