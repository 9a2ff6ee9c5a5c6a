package types

type UploadResponse struct {
	URL string `json:"url"`
}
