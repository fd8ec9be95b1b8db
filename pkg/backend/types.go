package backend

import (
	"fmt"
	"net/url"
)

type (
	// ListQuery carries the public recipe search parameters. Zero values
	// are omitted from the query string.
	ListQuery struct {
		Page       int
		Size       int
		CategoryID int64
		RecipeName string
	}

	// FileUpload is an in-memory file relayed to the backend.
	FileUpload struct {
		Name    string
		Content []byte
	}

	// RecipeUpload is the multipart payload for recipe create and update.
	// Video is optional; DeleteVideo stages removal of an existing video
	// and is only honored by the update endpoint.
	RecipeUpload struct {
		Name            string
		PreparationTime string
		CategoryID      int64
		Image           *FileUpload
		Video           *FileUpload
		DeleteVideo     bool
	}
)

func (q ListQuery) encode() string {
	values := url.Values{}
	values.Set("page", fmt.Sprintf("%d", q.Page))
	values.Set("size", fmt.Sprintf("%d", q.Size))
	if q.CategoryID > 0 {
		values.Set("categoryId", fmt.Sprintf("%d", q.CategoryID))
	}
	if q.RecipeName != "" {
		values.Set("recipeName", q.RecipeName)
	}
	return values.Encode()
}
