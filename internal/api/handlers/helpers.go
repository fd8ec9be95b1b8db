package handlers

import (
	"io"
	"strconv"

	"Masterchef-Web/pkg/backend"

	"github.com/gofiber/fiber/v2"
)

func paramID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}

// formFile reads an uploaded file into memory; a missing or empty field
// yields nil without error, since most uploads here are optional.
func formFile(c *fiber.Ctx, field string) (*backend.FileUpload, error) {
	header, err := c.FormFile(field)
	if err != nil || header == nil || header.Size == 0 {
		return nil, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &backend.FileUpload{Name: header.Filename, Content: content}, nil
}

// formValues returns every submitted value for a repeated multipart field.
func formValues(c *fiber.Ctx, field string) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		if v := c.FormValue(field); v != "" {
			return []string{v}
		}
		return nil
	}
	return form.Value[field]
}
