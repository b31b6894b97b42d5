package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/alimgiray/personapi/internal/models"
	"github.com/alimgiray/personapi/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportPeople(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewPersonRepository(newTestDB(t))
	personService := NewPersonService(repo, nil)
	exportService := NewExportService(repo)

	jane, err := personService.CreatePerson(ctx, &models.CreatePersonRequest{Name: "Jane", IDCard: "111", Lat: floatPtr(13.75), Long: floatPtr(100.5)})
	require.NoError(t, err)
	_, err = personService.CreatePerson(ctx, &models.CreatePersonRequest{Name: "John", IDCard: "222"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, exportService.ExportPeople(ctx, &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("People")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"ID", "Name", "ID Card", "Latitude", "Longitude", "Created At", "Updated At"}, rows[0])

	names := []string{rows[1][1], rows[2][1]}
	assert.ElementsMatch(t, []string{"Jane", "John"}, names)

	for _, row := range rows[1:] {
		if row[1] == "Jane" {
			assert.Equal(t, jane.ID, row[0])
			assert.Equal(t, "111", row[2])
			assert.Equal(t, "13.75", row[3])
			assert.Equal(t, "100.5", row[4])
		}
	}
}

func TestExportPeopleEmpty(t *testing.T) {
	exportService := NewExportService(repositories.NewPersonRepository(newTestDB(t)))

	var buf bytes.Buffer
	require.NoError(t, exportService.ExportPeople(context.Background(), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("People")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
