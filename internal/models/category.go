package models

import "time"

// Category represents a browsable post category managed from the admin console
type Category struct {
	ID          string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty" bson:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// CreateCategoryRequest defines the request body for creating a category
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=60"`
	Description string `json:"description,omitempty" validate:"omitempty,max=300"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

// UpdateCategoryRequest defines the request body for updating a category
type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	Description string `json:"description,omitempty" validate:"omitempty,max=300"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}
