package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/records/service"
)

type createNoteRequest struct {
	PatientID  string         `json:"patientId" binding:"required"`
	Title      string         `json:"title" binding:"required,max=200"`
	Duration   float64        `json:"duration" binding:"required,gt=0"`
	RecordedAt string         `json:"recordedAt" binding:"required"`
	Metadata   map[string]any `json:"metadata"`
}

// RegisterNoteRoutes wires the note CRUD endpoints plus the per-note summary
// subresource.
func RegisterNoteRoutes(r gin.IRouter, notes *service.NoteService, summaries *service.SummaryService) {
	r.GET("/notes", func(c *gin.Context) {
		list, err := notes.GetAll(c.Query("patientId"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": list, "count": len(list)})
	})

	r.GET("/notes/:id", func(c *gin.Context) {
		note, err := notes.GetByID(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if note == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": note})
	})

	r.POST("/notes", func(c *gin.Context) {
		var req createNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeValidationError(c, err)
			return
		}
		note, err := notes.Create(records.CreateNote{
			PatientID:  req.PatientID,
			Title:      req.Title,
			Duration:   req.Duration,
			RecordedAt: req.RecordedAt,
			Metadata:   req.Metadata,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": note})
	})

	r.DELETE("/notes/:id", func(c *gin.Context) {
		deleted, err := notes.Delete(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		c.Status(http.StatusNoContent)
	})

	r.POST("/notes/:id/summary", func(c *gin.Context) {
		summary, err := summaries.Generate(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": summary})
	})

	r.GET("/notes/:id/summary", func(c *gin.Context) {
		summary, err := summaries.GetByNoteID(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if summary == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": summary})
	})

	r.DELETE("/notes/:id/summary", func(c *gin.Context) {
		deleted, err := summaries.Delete(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Summary not found"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}
