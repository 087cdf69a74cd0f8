package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/railticket/internal/common"
	"github.com/dmitrijs2005/railticket/internal/dbx"
	"github.com/dmitrijs2005/railticket/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

const userColumns = `id, first_name, last_name, user_name, email, phone, gender, profile_image, password_hash, created_at, updated_at`

// constraintFields maps unique constraints to the identity field they guard.
var constraintFields = map[string]string{
	"users_user_name_key": models.FieldUserName,
	"users_email_key":     models.FieldEmail,
	"users_phone_key":     models.FieldPhone,
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var gender, image sql.NullString
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.UserName, &u.Email, &u.Phone,
		&gender, &image, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if gender.Valid {
		u.Gender = &gender.String
	}
	if image.Valid {
		u.ProfileImage = &image.String
	}
	return u, nil
}

// mapError turns driver errors into the repository's error contract.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if field, ok := constraintFields[pgErr.ConstraintName]; ok {
			return &common.DuplicateIdentityError{Field: field}
		}
		return common.ErrDuplicateIdentity
	}
	// ids are uuid columns; a malformed id cannot name any row
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {

	query :=
		`INSERT INTO users (id, first_name, last_name, user_name, email, phone, gender, profile_image, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.FirstName, user.LastName, user.UserName, user.Email, user.Phone,
		user.Gender, user.ProfileImage, user.PasswordHash).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

// FindBy looks a user up by one identity field: models.FieldUserName,
// models.FieldEmail or models.FieldPhone. Matching is exact.
func (r *PostgresRepository) FindBy(ctx context.Context, field, value string) (*models.User, error) {
	col, ok := identityColumn(field)
	if !ok {
		return nil, fmt.Errorf("%w: unknown identity field %q", common.ErrorValidation, field)
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + col + ` = $1`

	u, err := scanUser(r.db.QueryRowContext(ctx, query, value))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func identityColumn(field string) (string, bool) {
	switch field {
	case models.FieldUserName, models.FieldEmail, models.FieldPhone:
		return field, true
	}
	return "", false
}

// Exists reports whether any user has one of the non-empty values.
func (r *PostgresRepository) Exists(ctx context.Context, email, userName, phone string) (bool, error) {
	var conds []string
	var args []any
	for _, c := range []struct{ col, val string }{
		{models.FieldEmail, email},
		{models.FieldUserName, userName},
		{models.FieldPhone, phone},
	} {
		if c.val == "" {
			continue
		}
		args = append(args, c.val)
		conds = append(conds, fmt.Sprintf("%s = $%d", c.col, len(args)))
	}
	if len(conds) == 0 {
		return false, nil
	}

	query := `SELECT EXISTS (SELECT 1 FROM users WHERE ` + strings.Join(conds, " OR ") + `)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Update applies the non-nil fields of patch and returns the stored row.
// An empty patch only reads the row.
func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	var sets []string
	var args []any
	add := func(col string, v *string) {
		if v == nil {
			return
		}
		args = append(args, *v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	add("first_name", patch.FirstName)
	add("last_name", patch.LastName)
	add("user_name", patch.UserName)
	add("email", patch.Email)
	add("phone", patch.Phone)
	add("gender", patch.Gender)
	add("profile_image", patch.ProfileImage)
	add("password_hash", patch.PasswordHash)

	args = append(args, id)
	query := `UPDATE users SET ` + strings.Join(sets, ", ") + `, updated_at = now()
		 WHERE id = $` + fmt.Sprint(len(args)) + `
		 RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
