package httpapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fitprogress/internal/progress"
	"fitprogress/internal/server/services"
)

func (h *Handlers) listPhotos(c *gin.Context) {
	claims := claimsFrom(c)
	ps, err := h.photos.List(c.Request.Context(), claims.UserID, c.Query("from"), c.Query("to"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPhotoResponses(ps))
}

func (h *Handlers) uploadPhoto(c *gin.Context) {
	claims := claimsFrom(c)

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file required"})
		return
	}
	if h.maxUploadBytes > 0 && file.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds size limit"})
		return
	}

	f, err := file.Open()
	if err != nil {
		abortWithError(c, err)
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		abortWithError(c, err)
		return
	}

	upload := services.PhotoUpload{
		Date:        c.PostForm("date"),
		Angle:       c.PostForm("angle"),
		Notes:       c.PostForm("notes"),
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}
	if upload.Date == "" || upload.Angle == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and angle form fields required"})
		return
	}

	photo, op, err := h.photos.Upload(c.Request.Context(), claims.UserID, upload, submitMode(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	status := http.StatusCreated
	if op == progress.OpUpdate {
		status = http.StatusOK
	}
	c.JSON(status, toPhotoResponse(photo))
}

func (h *Handlers) deletePhoto(c *gin.Context) {
	claims := claimsFrom(c)
	if err := h.photos.Delete(c.Request.Context(), claims.UserID, c.Param("id")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handlers) deletePhotosByDate(c *gin.Context) {
	claims := claimsFrom(c)
	n, err := h.photos.DeleteByDate(c.Request.Context(), claims.UserID, c.Param("date"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// splitListParam splits a comma-separated query value, dropping empties.
func splitListParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (h *Handlers) photoGrid(c *gin.Context) {
	claims := claimsFrom(c)
	var months []progress.MonthYear
	for _, m := range splitListParam(c.Query("months")) {
		months = append(months, progress.MonthYear(m))
	}
	res, err := h.photos.Grid(c.Request.Context(), claims.UserID, months)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGridResponse(res))
}

func (h *Handlers) comparePhotos(c *gin.Context) {
	claims := claimsFrom(c)
	dates := splitListParam(c.Query("dates"))
	if len(dates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dates query parameter required"})
		return
	}
	res, err := h.photos.Compare(c.Request.Context(), claims.UserID, dates)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toGridResponse(res))
}
