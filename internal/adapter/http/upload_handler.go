package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var uploadCategories = map[string]bool{
	"proposal":   true,
	"revisi":     true,
	"review":     true,
	"kontrak":    true,
	"sk":         true,
	"monitoring": true,
	"luaran":     true,
	"bukti":      true,
}

// UploadFile receives one multipart file and returns the stored path. The
// caller then attaches that path through the relevant lifecycle endpoint.
func (h *Handler) UploadFile(c echo.Context) error {
	category := c.FormValue("category")
	if !uploadCategories[category] {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid upload category"})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing file"})
	}
	path, err := h.files.Save(fh, category)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"file_path": path})
}
