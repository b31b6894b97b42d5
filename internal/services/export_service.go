package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alimgiray/personapi/internal/models"
	"github.com/alimgiray/personapi/internal/repositories"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "People"

var exportHeader = []interface{}{"ID", "Name", "ID Card", "Latitude", "Longitude", "Created At", "Updated At"}

type ExportService struct {
	personRepo *repositories.PersonRepository
}

func NewExportService(personRepo *repositories.PersonRepository) *ExportService {
	return &ExportService{
		personRepo: personRepo,
	}
}

// ExportPeople writes every person, in insertion order, as an XLSX workbook to w
func (s *ExportService) ExportPeople(ctx context.Context, w io.Writer) error {
	people, err := s.personRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	f, err := buildWorkbook(people)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

func buildWorkbook(people []*models.Person) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		f.Close()
		return nil, err
	}

	for i, person := range people {
		row := []interface{}{
			person.ID,
			person.Name,
			person.IDCard,
			optionalFloat(person.Lat),
			optionalFloat(person.Long),
			person.CreatedAt.Format(time.RFC3339),
			person.UpdatedAt.Format(time.RFC3339),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

func optionalFloat(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}
