package domain

// Slide is one image on the homepage slider. The image URL usually points at
// an uploaded media file, but the reference is not checked to resolve.
type Slide struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Active   bool   `json:"active"`
}
