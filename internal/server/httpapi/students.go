package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) listStudents(c *gin.Context) {
	claims := claimsFrom(c)
	students, err := h.users.ListStudents(c.Request.Context(), claims.UserID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	out := make([]userResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toUserResponse(s))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) studentMeasurements(c *gin.Context) {
	claims := claimsFrom(c)
	student, err := h.users.CheckStudentAccess(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	ms, err := h.measurements.List(c.Request.Context(), student.ID, c.Query("from"), c.Query("to"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMeasurementResponses(ms))
}

func (h *Handlers) studentPhotos(c *gin.Context) {
	claims := claimsFrom(c)
	student, err := h.users.CheckStudentAccess(c.Request.Context(), claims.UserID, c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	ps, err := h.photos.List(c.Request.Context(), student.ID, c.Query("from"), c.Query("to"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPhotoResponses(ps))
}
