package services

import (
	"context"

	"github.com/alimgiray/personapi/internal/metrics"
	"github.com/alimgiray/personapi/internal/models"
	"github.com/alimgiray/personapi/internal/repositories"
	"github.com/alimgiray/personapi/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type PersonService struct {
	personRepo *repositories.PersonRepository
	metrics    *metrics.Metrics
}

func NewPersonService(personRepo *repositories.PersonRepository, m *metrics.Metrics) *PersonService {
	return &PersonService{
		personRepo: personRepo,
		metrics:    m,
	}
}

// CreatePerson validates the request and stores a new person
func (s *PersonService) CreatePerson(ctx context.Context, req *models.CreatePersonRequest) (*models.Person, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	person := models.NewPerson(req)
	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, err
	}

	s.metrics.IncrementPeopleCreated()
	logger.WithField("person_id", person.ID).Info("Person created")
	return person, nil
}

// UpdatePerson applies a partial update to the person with the given ID
func (s *PersonService) UpdatePerson(ctx context.Context, id string, req *models.UpdatePersonRequest) (*models.Person, error) {
	if err := validatePersonID(id); err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		logger.WithField("person_id", id).Debug("Update has no fields, only updated_at changes")
	}

	person, err := s.personRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	logger.WithField("person_id", id).Info("Person updated")
	return person, nil
}

// DeletePerson permanently removes the person with the given ID
func (s *PersonService) DeletePerson(ctx context.Context, id string) error {
	if err := validatePersonID(id); err != nil {
		return err
	}

	if err := s.personRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.IncrementPeopleDeleted()
	logger.WithField("person_id", id).Info("Person deleted")
	return nil
}

// GetAllPeople retrieves every person
func (s *PersonService) GetAllPeople(ctx context.Context) ([]*models.Person, error) {
	return s.personRepo.GetAll(ctx)
}

// GetPersonByID retrieves a person by ID
func (s *PersonService) GetPersonByID(ctx context.Context, id string) (*models.Person, error) {
	if err := validatePersonID(id); err != nil {
		return nil, err
	}

	return s.personRepo.GetByID(ctx, id)
}

// SearchPeople retrieves the people matching every supplied filter
func (s *PersonService) SearchPeople(ctx context.Context, filter models.PersonFilter) ([]*models.Person, error) {
	return s.personRepo.Search(ctx, filter)
}

// GetLocations retrieves name and coordinates for every person
func (s *PersonService) GetLocations(ctx context.Context) ([]*models.Location, error) {
	return s.personRepo.GetLocations(ctx)
}

// SearchPeopleWithPagination counts and fetches one page of matches concurrently
func (s *PersonService) SearchPeopleWithPagination(ctx context.Context, filter models.PersonFilter, page models.PageRequest) (*models.PaginatedPeople, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		total  int
		people []*models.Person
	)

	g.Go(func() error {
		var err error
		total, err = s.personRepo.Count(ctx, filter)
		return err
	})

	g.Go(func() error {
		var err error
		people, err = s.personRepo.SearchPage(ctx, filter, page.Offset(), page.Limit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"page":  page.Page,
		"limit": page.Limit,
		"total": total,
	}).Debug("Paginated person search")

	return &models.PaginatedPeople{
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      total,
		TotalPages: page.TotalPages(total),
		Data:       people,
	}, nil
}

func validatePersonID(id string) error {
	if id == "" {
		return models.ErrPersonIDRequired
	}

	// Validate UUID format
	if _, err := uuid.Parse(id); err != nil {
		return models.ErrInvalidPersonID
	}

	return nil
}
