package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alimgiray/personapi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runPersonRepositoryContract exercises PersonRepository behaviour every supported driver must share.
// newRepo must return a repository over an empty people table.
func runPersonRepositoryContract(t *testing.T, newRepo func(t *testing.T) *PersonRepository) {
	ctx := context.Background()

	t.Run("create then get by id", func(t *testing.T) {
		repo := newRepo(t)
		person := newTestPerson("Jane Doe", "123456789", floatPtrValue(13.7563), floatPtrValue(100.5018))

		require.NoError(t, repo.Create(ctx, person))
		assert.False(t, person.CreatedAt.IsZero())
		assert.True(t, person.CreatedAt.Equal(person.UpdatedAt))

		got, err := repo.GetByID(ctx, person.ID)
		require.NoError(t, err)
		assert.Equal(t, person.ID, got.ID)
		assert.Equal(t, "Jane Doe", got.Name)
		assert.Equal(t, "123456789", got.IDCard)
		require.NotNil(t, got.Lat)
		require.NotNil(t, got.Long)
		assert.InDelta(t, 13.7563, *got.Lat, 1e-9)
		assert.InDelta(t, 100.5018, *got.Long, 1e-9)
		assert.WithinDuration(t, person.CreatedAt, got.CreatedAt, time.Millisecond)
		assert.WithinDuration(t, person.UpdatedAt, got.UpdatedAt, time.Millisecond)
	})

	t.Run("missing coordinates stay nil", func(t *testing.T) {
		repo := newRepo(t)
		person := newTestPerson("No Coords", "555", nil, nil)
		require.NoError(t, repo.Create(ctx, person))

		got, err := repo.GetByID(ctx, person.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Lat)
		assert.Nil(t, got.Long)
	})

	t.Run("duplicate id card is rejected and leaves the table unchanged", func(t *testing.T) {
		repo := newRepo(t)
		first := newTestPerson("Jane Doe", "123456789", nil, nil)
		require.NoError(t, repo.Create(ctx, first))

		err := repo.Create(ctx, newTestPerson("Someone Else", "123456789", nil, nil))
		var dupErr *models.DuplicateKeyError
		require.True(t, errors.As(err, &dupErr), "expected DuplicateKeyError, got %v", err)
		assert.Equal(t, "id_card", dupErr.Field)
		assert.Equal(t, "123456789", dupErr.Value)

		people, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, first.ID, people[0].ID)
		assert.Equal(t, "Jane Doe", people[0].Name)
	})

	t.Run("get unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.GetByID(ctx, "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed")
		assert.ErrorIs(t, err, models.ErrPersonNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		repo := newRepo(t)
		person := newTestPerson("Jane Doe", "123456789", floatPtrValue(1), floatPtrValue(2))
		require.NoError(t, repo.Create(ctx, person))

		newName := "Jane Smith"
		updated, err := repo.Update(ctx, person.ID, &models.UpdatePersonRequest{Name: &newName, Lat: floatPtrValue(10)})
		require.NoError(t, err)

		assert.Equal(t, person.ID, updated.ID)
		assert.Equal(t, "Jane Smith", updated.Name)
		assert.Equal(t, "123456789", updated.IDCard)
		assert.InDelta(t, 10, *updated.Lat, 1e-9)
		assert.InDelta(t, 2, *updated.Long, 1e-9)
		assert.WithinDuration(t, person.CreatedAt, updated.CreatedAt, time.Millisecond)
		assert.False(t, updated.UpdatedAt.Before(person.UpdatedAt))

		got, err := repo.GetByID(ctx, person.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", got.Name)
	})

	t.Run("update can clear coordinates", func(t *testing.T) {
		repo := newRepo(t)
		person := newTestPerson("Jane Doe", "123456789", floatPtrValue(1), floatPtrValue(2))
		require.NoError(t, repo.Create(ctx, person))

		updated, err := repo.Update(ctx, person.ID, &models.UpdatePersonRequest{ClearLat: true})
		require.NoError(t, err)
		assert.Nil(t, updated.Lat)
		require.NotNil(t, updated.Long)
		assert.InDelta(t, 2, *updated.Long, 1e-9)

		got, err := repo.GetByID(ctx, person.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Lat)

		locations, err := repo.GetLocations(ctx)
		require.NoError(t, err)
		require.Len(t, locations, 1)
		assert.Nil(t, locations[0].Lat)
	})

	t.Run("update unknown id is not found", func(t *testing.T) {
		repo := newRepo(t)
		name := "Ghost"
		_, err := repo.Update(ctx, "1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed", &models.UpdatePersonRequest{Name: &name})
		assert.ErrorIs(t, err, models.ErrPersonNotFound)
	})

	t.Run("update to an existing id card is rejected", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newTestPerson("First", "111", nil, nil)))
		second := newTestPerson("Second", "222", nil, nil)
		require.NoError(t, repo.Create(ctx, second))

		taken := "111"
		_, err := repo.Update(ctx, second.ID, &models.UpdatePersonRequest{IDCard: &taken})
		var dupErr *models.DuplicateKeyError
		require.True(t, errors.As(err, &dupErr), "expected DuplicateKeyError, got %v", err)

		got, err := repo.GetByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "222", got.IDCard)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		repo := newRepo(t)
		person := newTestPerson("Jane Doe", "123456789", nil, nil)
		require.NoError(t, repo.Create(ctx, person))

		require.NoError(t, repo.Delete(ctx, person.ID))

		_, err := repo.GetByID(ctx, person.ID)
		assert.ErrorIs(t, err, models.ErrPersonNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, person.ID), models.ErrPersonNotFound)
	})

	t.Run("get all on empty table returns empty slice", func(t *testing.T) {
		repo := newRepo(t)
		people, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, people)
		assert.Empty(t, people)
	})

	t.Run("search by name is a case-insensitive substring match", func(t *testing.T) {
		repo := newRepo(t)
		for i, name := range []string{"Anne", "ANNA", "banner-ann", "Bob"} {
			require.NoError(t, repo.Create(ctx, newTestPerson(name, fmt.Sprintf("card-%d", i), nil, nil)))
		}

		people, err := repo.Search(ctx, models.PersonFilter{Name: "ann"})
		require.NoError(t, err)

		var names []string
		for _, p := range people {
			names = append(names, p.Name)
		}
		assert.ElementsMatch(t, []string{"Anne", "ANNA", "banner-ann"}, names)
	})

	t.Run("name search folds non-ascii letters", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newTestPerson("ÉMILE Zola", "1", nil, nil)))
		require.NoError(t, repo.Create(ctx, newTestPerson("Ärger", "2", nil, nil)))
		require.NoError(t, repo.Create(ctx, newTestPerson("Emil", "3", nil, nil)))

		people, err := repo.Search(ctx, models.PersonFilter{Name: "émile"})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "ÉMILE Zola", people[0].Name)

		people, err = repo.Search(ctx, models.PersonFilter{Name: "ärg"})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Ärger", people[0].Name)

		count, err := repo.Count(ctx, models.PersonFilter{Name: "ÄRG"})
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("search filters are combined", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newTestPerson("Anne", "111", nil, nil)))
		require.NoError(t, repo.Create(ctx, newTestPerson("Anna", "222", nil, nil)))

		people, err := repo.Search(ctx, models.PersonFilter{Name: "an", IDCard: "222"})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "Anna", people[0].Name)

		people, err = repo.Search(ctx, models.PersonFilter{IDCard: "22"})
		require.NoError(t, err)
		assert.Empty(t, people, "id_card must match exactly")

		people, err = repo.Search(ctx, models.PersonFilter{})
		require.NoError(t, err)
		assert.Len(t, people, 2)
	})

	t.Run("like wildcards in the name filter are literal", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newTestPerson("100% Real", "1", nil, nil)))
		require.NoError(t, repo.Create(ctx, newTestPerson("1000 Real", "2", nil, nil)))
		require.NoError(t, repo.Create(ctx, newTestPerson("snake_case", "3", nil, nil)))
		require.NoError(t, repo.Create(ctx, newTestPerson("snakeXcase", "4", nil, nil)))

		people, err := repo.Search(ctx, models.PersonFilter{Name: "0%"})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "100% Real", people[0].Name)

		people, err = repo.Search(ctx, models.PersonFilter{Name: "e_c"})
		require.NoError(t, err)
		require.Len(t, people, 1)
		assert.Equal(t, "snake_case", people[0].Name)
	})

	t.Run("count and page", func(t *testing.T) {
		repo := newRepo(t)
		// Insert in reverse so name order differs from insertion order
		for i := 25; i >= 1; i-- {
			require.NoError(t, repo.Create(ctx, newTestPerson(fmt.Sprintf("Person %02d", i), fmt.Sprintf("card-%02d", i), nil, nil)))
		}
		require.NoError(t, repo.Create(ctx, newTestPerson("Unrelated", "other", nil, nil)))

		filter := models.PersonFilter{Name: "person"}
		total, err := repo.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, 25, total)

		page, err := repo.SearchPage(ctx, filter, 10, 10)
		require.NoError(t, err)
		require.Len(t, page, 10)
		for i, p := range page {
			assert.Equal(t, fmt.Sprintf("Person %02d", i+11), p.Name)
		}

		last, err := repo.SearchPage(ctx, filter, 20, 10)
		require.NoError(t, err)
		assert.Len(t, last, 5)

		beyond, err := repo.SearchPage(ctx, filter, 30, 10)
		require.NoError(t, err)
		assert.NotNil(t, beyond)
		assert.Empty(t, beyond)
	})

	t.Run("locations", func(t *testing.T) {
		repo := newRepo(t)
		require.NoError(t, repo.Create(ctx, newTestPerson("Jane", "1", floatPtrValue(13.75), floatPtrValue(100.5))))
		require.NoError(t, repo.Create(ctx, newTestPerson("John", "2", nil, nil)))

		locations, err := repo.GetLocations(ctx)
		require.NoError(t, err)
		require.Len(t, locations, 2)

		byName := make(map[string]*models.Location)
		for _, location := range locations {
			byName[location.Name] = location
		}
		require.Contains(t, byName, "Jane")
		require.Contains(t, byName, "John")
		assert.InDelta(t, 13.75, *byName["Jane"].Lat, 1e-9)
		assert.InDelta(t, 100.5, *byName["Jane"].Long, 1e-9)
		assert.Nil(t, byName["John"].Lat)
		assert.Nil(t, byName["John"].Long)
	})
}

func newTestPerson(name, idCard string, lat, long *float64) *models.Person {
	return models.NewPerson(&models.CreatePersonRequest{Name: name, IDCard: idCard, Lat: lat, Long: long})
}

func floatPtrValue(f float64) *float64 { return &f }
