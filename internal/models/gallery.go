package models

// GalleryImage is one picture on the gallery page.
type GalleryImage struct {
	ID         int64  `json:"id"`
	Src        string `json:"src"`
	Alt        string `json:"alt"`
	UploadDate string `json:"uploadDate"`
}

// GalleryImageRequest is the admin payload for adding an image.
type GalleryImageRequest struct {
	Src string `json:"src" validate:"required,max=500"`
	Alt string `json:"alt" validate:"required,max=200"`
}
