// Package handler exposes the records services over HTTP. Request shapes are
// validated here with gin binding tags; services receive already-validated
// DTOs and only enforce business rules.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medvoice/medvoice/internal/records"
	"github.com/medvoice/medvoice/internal/records/service"
)

type createPatientRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	DateOfBirth string `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
}

type updatePatientRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	DateOfBirth *string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Phone       *string `json:"phone"`
}

func RegisterPatientRoutes(r gin.IRouter, svc *service.PatientService) {
	r.GET("/patients", func(c *gin.Context) {
		patients, err := svc.GetAll()
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": patients, "count": len(patients)})
	})

	r.GET("/patients/:id", func(c *gin.Context) {
		patient, err := svc.GetByID(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if patient == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": patient})
	})

	r.POST("/patients", func(c *gin.Context) {
		var req createPatientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeValidationError(c, err)
			return
		}
		patient, err := svc.Create(records.CreatePatient{
			Name:        req.Name,
			DateOfBirth: req.DateOfBirth,
			Email:       req.Email,
			Phone:       req.Phone,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"data": patient})
	})

	r.PATCH("/patients/:id", func(c *gin.Context) {
		var req updatePatientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeValidationError(c, err)
			return
		}
		patient, err := svc.Update(c.Param("id"), records.UpdatePatient{
			Name:        req.Name,
			DateOfBirth: req.DateOfBirth,
			Email:       req.Email,
			Phone:       req.Phone,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		if patient == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": patient})
	})

	r.DELETE("/patients/:id", func(c *gin.Context) {
		deleted, err := svc.Delete(c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
			return
		}
		c.Status(http.StatusNoContent)
	})
}
