package dtos

import "time"

type CreateProgramRequest struct {
	Title            string `json:"title" validate:"required,max=200"`
	ShortDescription string `json:"short_description" validate:"required,max=500"`
	Content          string `json:"content" validate:"required"`
	ImageURL         string `json:"image_url" validate:"omitempty,url"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=200"`
	Description string    `json:"description" validate:"required"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
}

type CreateTeamMemberRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	Position     string `json:"position" validate:"required,max=120"`
	Bio          string `json:"bio" validate:"omitempty,max=2000"`
	ImageURL     string `json:"image_url" validate:"omitempty,url"`
	Facebook     string `json:"facebook" validate:"omitempty,url"`
	Instagram    string `json:"instagram" validate:"omitempty,url"`
	Twitter      string `json:"twitter" validate:"omitempty,url"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

type CreateGalleryCategoryRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type CreateGalleryImageRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	CategoryID  string `json:"category_id" validate:"required,uuid4"`
	ImageURL    string `json:"image_url" validate:"required,url"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}
