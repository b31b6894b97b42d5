package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alimgiray/personapi/internal/models"
	"github.com/alimgiray/personapi/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// pgUniqueViolation is the Postgres SQLSTATE for unique_violation
const pgUniqueViolation = "23505"

const personColumns = `id, name, id_card, lat, long, created_at, updated_at`

type PersonRepository struct {
	db    *sql.DB
	lower string
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{
		db:    db,
		lower: lowerFunc(db),
	}
}

// lowerFunc is the SQL function used to fold names for case-insensitive search
func lowerFunc(db *sql.DB) string {
	if _, ok := db.Driver().(*sqlite3.SQLiteDriver); ok {
		return database.UnicodeLowerFunc
	}
	return "LOWER"
}

// Create inserts a new person and sets its timestamps
func (r *PersonRepository) Create(ctx context.Context, person *models.Person) error {
	query := `
		INSERT INTO people (
			id, name, id_card, lat, long, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	now := timestamp()
	_, err := r.db.ExecContext(ctx, query,
		person.ID, person.Name, person.IDCard, person.Lat, person.Long, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &models.DuplicateKeyError{Field: "id_card", Value: person.IDCard, Err: err}
		}
		return fmt.Errorf("insert person: %w", err)
	}

	person.CreatedAt = now
	person.UpdatedAt = now
	return nil
}

// GetByID retrieves a person by ID
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people WHERE id = $1`

	person, err := scanPerson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get person: %w", err)
	}

	return person, nil
}

// Update applies the non-nil fields of update and returns the stored record
func (r *PersonRepository) Update(ctx context.Context, id string, update *models.UpdatePersonRequest) (*models.Person, error) {
	var (
		sets []string
		args []interface{}
	)
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		set("name", *update.Name)
	}
	if update.IDCard != nil {
		set("id_card", *update.IDCard)
	}
	switch {
	case update.Lat != nil:
		set("lat", *update.Lat)
	case update.ClearLat:
		set("lat", nil)
	}
	switch {
	case update.Long != nil:
		set("long", *update.Long)
	case update.ClearLong:
		set("long", nil)
	}
	set("updated_at", timestamp())
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE people SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &models.DuplicateKeyError{Field: "id_card", Value: stringValue(update.IDCard), Err: err}
		}
		return nil, fmt.Errorf("update person: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, models.ErrPersonNotFound
	}

	person, err := scanPerson(tx.QueryRowContext(ctx, `SELECT `+personColumns+` FROM people WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("reload person: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return person, nil
}

// Delete removes a person by ID
func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return models.ErrPersonNotFound
	}

	return nil
}

// GetAll retrieves every person in insertion order
func (r *PersonRepository) GetAll(ctx context.Context) ([]*models.Person, error) {
	query := `SELECT ` + personColumns + ` FROM people ORDER BY created_at, id`
	return r.queryPeople(ctx, query)
}

// Search retrieves the people matching every supplied filter
func (r *PersonRepository) Search(ctx context.Context, filter models.PersonFilter) ([]*models.Person, error) {
	where, args := filterClause(filter, r.lower)
	query := `SELECT ` + personColumns + ` FROM people` + where + ` ORDER BY created_at, id`
	return r.queryPeople(ctx, query, args...)
}

// Count returns the number of people matching filter
func (r *PersonRepository) Count(ctx context.Context, filter models.PersonFilter) (int, error) {
	where, args := filterClause(filter, r.lower)

	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM people`+where, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	return count, nil
}

// SearchPage retrieves one page of people matching filter, ordered by name
func (r *PersonRepository) SearchPage(ctx context.Context, filter models.PersonFilter, offset, limit int) ([]*models.Person, error) {
	where, args := filterClause(filter, r.lower)
	args = append(args, limit, offset)

	query := fmt.Sprintf(
		`SELECT %s FROM people%s ORDER BY name, created_at, id LIMIT $%d OFFSET $%d`,
		personColumns, where, len(args)-1, len(args),
	)
	return r.queryPeople(ctx, query, args...)
}

// GetLocations retrieves the name and coordinates of every person
func (r *PersonRepository) GetLocations(ctx context.Context) ([]*models.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, lat, long FROM people ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query locations: %w", err)
	}
	defer rows.Close()

	locations := make([]*models.Location, 0)
	for rows.Next() {
		var (
			location  models.Location
			lat, long sql.NullFloat64
		)
		if err := rows.Scan(&location.Name, &lat, &long); err != nil {
			return nil, err
		}
		location.Lat = floatPtr(lat)
		location.Long = floatPtr(long)
		locations = append(locations, &location)
	}

	return locations, rows.Err()
}

func (r *PersonRepository) queryPeople(ctx context.Context, query string, args ...interface{}) ([]*models.Person, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}
	defer rows.Close()

	people := make([]*models.Person, 0)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, person)
	}

	return people, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(row rowScanner) (*models.Person, error) {
	var (
		person    models.Person
		lat, long sql.NullFloat64
	)

	err := row.Scan(
		&person.ID, &person.Name, &person.IDCard, &lat, &long, &person.CreatedAt, &person.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	person.Lat = floatPtr(lat)
	person.Long = floatPtr(long)
	person.CreatedAt = person.CreatedAt.UTC()
	person.UpdatedAt = person.UpdatedAt.UTC()
	return &person, nil
}

// filterClause builds the WHERE clause for filter; name is a case-insensitive substring match
// folded with the SQL function lower
func filterClause(filter models.PersonFilter, lower string) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Name != "" {
		args = append(args, "%"+escapeLike(strings.ToLower(filter.Name))+"%")
		conditions = append(conditions, fmt.Sprintf(`%s(name) LIKE $%d ESCAPE '\'`, lower, len(args)))
	}
	if filter.IDCard != "" {
		args = append(args, filter.IDCard)
		conditions = append(conditions, fmt.Sprintf(`id_card = $%d`, len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	return false
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// timestamp returns the current time at the precision both drivers store
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
