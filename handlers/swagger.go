package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the records API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>medvoice — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document for the records endpoints. All /api routes require
// the X-API-Key header.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "medvoice", "version": "v0.1.0" },
  "paths": {
    "/api/patients": {
      "get": { "summary": "List patients", "responses": { "200": { "description": "patients with count" } } },
      "post": { "summary": "Create a patient", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"name":{"type":"string"},"dateOfBirth":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"}}}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "validation or duplicate email" } } }
    },
    "/api/patients/{id}": {
      "get": { "summary": "Get a patient", "responses": { "200": { "description": "patient" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Partially update a patient", "responses": { "200": { "description": "updated patient" }, "400": { "description": "email already in use" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a patient (notes are not cascaded)", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/notes": {
      "get": { "summary": "List voice notes, optionally filtered by patientId", "responses": { "200": { "description": "notes with count" } } },
      "post": { "summary": "Create a voice note", "responses": { "201": { "description": "created" }, "400": { "description": "validation or patient not found" } } }
    },
    "/api/notes/{id}": {
      "get": { "summary": "Get a voice note", "responses": { "200": { "description": "note" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a voice note", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/api/notes/{id}/summary": {
      "post": { "summary": "Generate the note's summary", "responses": { "201": { "description": "generated" }, "400": { "description": "note missing or summary already exists" } } },
      "get": { "summary": "Get the note's summary", "responses": { "200": { "description": "summary" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete the note's summary", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/health/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" } } } }
  }
}`
