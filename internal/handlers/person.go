package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/alimgiray/personapi/internal/models"
	"github.com/alimgiray/personapi/pkg/logger"
	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=person.go -destination=mocks/person_mocks.go -package=mocks

// PersonService is the set of person operations the HTTP layer depends on
type PersonService interface {
	CreatePerson(ctx context.Context, req *models.CreatePersonRequest) (*models.Person, error)
	UpdatePerson(ctx context.Context, id string, req *models.UpdatePersonRequest) (*models.Person, error)
	DeletePerson(ctx context.Context, id string) error
	GetAllPeople(ctx context.Context) ([]*models.Person, error)
	GetPersonByID(ctx context.Context, id string) (*models.Person, error)
	SearchPeople(ctx context.Context, filter models.PersonFilter) ([]*models.Person, error)
	GetLocations(ctx context.Context) ([]*models.Location, error)
	SearchPeopleWithPagination(ctx context.Context, filter models.PersonFilter, page models.PageRequest) (*models.PaginatedPeople, error)
}

// PersonExporter writes all people as a spreadsheet
type PersonExporter interface {
	ExportPeople(ctx context.Context, w io.Writer) error
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PersonHandler struct {
	personService PersonService
	exporter      PersonExporter
}

func NewPersonHandler(personService PersonService, exporter PersonExporter) *PersonHandler {
	return &PersonHandler{
		personService: personService,
		exporter:      exporter,
	}
}

// RegisterRoutes mounts the person endpoints under group
func (h *PersonHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("", h.CreatePerson)
	group.PUT("/:id", h.UpdatePerson)
	group.DELETE("/:id", h.DeletePerson)
	group.GET("", h.GetAllPeople)
	group.GET("/id/:id", h.GetPersonByID)
	group.GET("/search", h.SearchPeople)
	group.GET("/location", h.GetLocations)
	group.GET("/search-by-pagination", h.SearchPeopleWithPagination)
	group.GET("/export", h.ExportPeople)
}

// CreatePerson handles POST /api/person
func (h *PersonHandler) CreatePerson(c *gin.Context) {
	var req models.CreatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	person, err := h.personService.CreatePerson(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, person)
}

// UpdatePerson handles PUT /api/person/:id
func (h *PersonHandler) UpdatePerson(c *gin.Context) {
	var req models.UpdatePersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}

	person, err := h.personService.UpdatePerson(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// DeletePerson handles DELETE /api/person/:id
func (h *PersonHandler) DeletePerson(c *gin.Context) {
	if err := h.personService.DeletePerson(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// GetAllPeople handles GET /api/person
func (h *PersonHandler) GetAllPeople(c *gin.Context) {
	people, err := h.personService.GetAllPeople(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if len(people) == 0 {
		respondNotFound(c)
		return
	}

	c.JSON(http.StatusOK, people)
}

// GetPersonByID handles GET /api/person/id/:id
func (h *PersonHandler) GetPersonByID(c *gin.Context) {
	person, err := h.personService.GetPersonByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, person)
}

// SearchPeople handles GET /api/person/search
func (h *PersonHandler) SearchPeople(c *gin.Context) {
	filter := models.NewPersonFilter(c.Query("name"), c.Query("id_card"))

	people, err := h.personService.SearchPeople(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(people) == 0 {
		respondNotFound(c)
		return
	}

	c.JSON(http.StatusOK, people)
}

// GetLocations handles GET /api/person/location
func (h *PersonHandler) GetLocations(c *gin.Context) {
	locations, err := h.personService.GetLocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// SearchPeopleWithPagination handles GET /api/person/search-by-pagination
func (h *PersonHandler) SearchPeopleWithPagination(c *gin.Context) {
	page, err := models.ParsePageRequest(c.Query("page"), c.Query("limit"))
	if err != nil {
		respondError(c, err)
		return
	}

	filter := models.NewPersonFilter(c.Query("name"), c.Query("id_card"))

	result, err := h.personService.SearchPeopleWithPagination(c.Request.Context(), filter, page)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportPeople handles GET /api/person/export
func (h *PersonHandler) ExportPeople(c *gin.Context) {
	// Buffer the workbook so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.exporter.ExportPeople(c.Request.Context(), &buf); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="people.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
}

// respondError maps a service error to the HTTP response: not found is 404, everything else 400
func respondError(c *gin.Context, err error) {
	if models.IsNotFound(err) {
		respondNotFound(c)
		return
	}

	logger.WithError(err).WithField("path", c.Request.URL.Path).Warn("Person request failed")
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
