package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/book/model"
)

const uniqueViolationCode = "23505"

const bookColumns = `id, title, author, description, publication_year, isbn, genre, cover_url, created_at, updated_at`

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository - constructor
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

// ============================================
// FILTER COMPILER
// ============================================

// buildWhereClause turns the sparse filter into a conjunctive WHERE
// clause with positional args. title/author match as case-insensitive
// substrings, publication_year/isbn as exact values. An empty filter
// compiles to an empty clause (match all).
func buildWhereClause(filter *model.BookFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter == nil {
		return "", args
	}

	if filter.Title != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Title+"%")
		argIndex++
	}

	if filter.Author != "" {
		conditions = append(conditions, fmt.Sprintf("author ILIKE $%d", argIndex))
		args = append(args, "%"+filter.Author+"%")
		argIndex++
	}

	if filter.PublicationYear != nil {
		conditions = append(conditions, fmt.Sprintf("publication_year = $%d", argIndex))
		args = append(args, *filter.PublicationYear)
		argIndex++
	}

	if filter.ISBN != "" {
		conditions = append(conditions, fmt.Sprintf("isbn = $%d", argIndex))
		args = append(args, filter.ISBN)
		argIndex++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// ============================================
// LIST BOOKS
// ============================================

// List returns one page plus the total count for the same predicate.
// Ordering by id keeps the page stable across repeated calls.
func (r *postgresRepository) List(ctx context.Context, filter *model.BookFilter, limit, offset int) ([]model.Book, int, error) {
	whereClause, args := buildWhereClause(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM books %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		%s
		ORDER BY id
		LIMIT $%d OFFSET $%d`,
		bookColumns, whereClause, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, limit)
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, total, nil
}

// ============================================
// CRUD
// ============================================

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)

	var b model.Book
	err := scanBook(r.pool.QueryRow(ctx, query, id), &b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	query := fmt.Sprintf(`
		INSERT INTO books (title, author, description, publication_year, isbn, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, bookColumns)

	var b model.Book
	err := scanBook(r.pool.QueryRow(ctx, query,
		req.Title, req.Author, req.Description, req.PublicationYear, req.ISBN,
	), &b)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrISBNAlreadyExists
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return &b, nil
}

// Update applies the patch's present fields in one statement.
// updated_at is always refreshed, even for an empty patch.
func (r *postgresRepository) Update(ctx context.Context, id int64, patch *model.UpdateBookRequest) (*model.Book, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	set := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Author != nil {
		set("author", *patch.Author)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.PublicationYear != nil {
		set("publication_year", *patch.PublicationYear)
	}
	if patch.ISBN != nil {
		set("isbn", *patch.ISBN)
	}
	if patch.Genre != nil {
		set("genre", *patch.Genre)
	}
	if patch.CoverURL != nil {
		set("cover_url", *patch.CoverURL)
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE books
		SET %s
		WHERE id = $%d
		RETURNING %s`,
		strings.Join(setClauses, ", "), argIndex, bookColumns)
	args = append(args, id)

	var b model.Book
	err := scanBook(r.pool.QueryRow(ctx, query, args...), &b)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrISBNAlreadyExists
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return &b, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete book: %w", err)
	}
	return ct.RowsAffected() > 0, nil
}

// ============================================
// HELPERS
// ============================================

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Description, &b.PublicationYear,
		&b.ISBN, &b.Genre, &b.CoverURL, &b.CreatedAt, &b.UpdatedAt,
	)
}

// isUniqueViolation reports whether err is the store rejecting a
// duplicate isbn. The constraint, not application code, is the
// authority on uniqueness.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
