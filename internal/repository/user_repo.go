package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"user-registration-service/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

// Код unique_violation PostgreSQL, ловим гонку check-then-insert по email.
const uniqueViolationCode = "23505"

// UserRepository реализует взаимодействие с данными пользователей в PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// ExistsByEmail проверяет, занят ли email существующим пользователем.
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT count(*) FROM users WHERE email = $1`, email,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

// FindByActivationToken возвращает пользователя с данным токеном активации.
func (r *UserRepository) FindByActivationToken(ctx context.Context, token string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, inactive, activation_token, created_at
		 FROM users WHERE activation_token = $1`, token,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by token: %w", err)
	}
	return user, nil
}

// Activate переводит пользователя в активное состояние и очищает токен.
func (r *UserRepository) Activate(ctx context.Context, userID int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET inactive = FALSE, activation_token = NULL WHERE id = $1`, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to activate user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// FindActiveByID возвращает активного пользователя по ID.
func (r *UserRepository) FindActiveByID(ctx context.Context, userID int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, email, password_hash, inactive, activation_token, created_at
		 FROM users WHERE id = $1 AND inactive = FALSE`, userID,
	)

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find active user: %w", err)
	}
	return user, nil
}

// ListActive возвращает страницу активных пользователей и их общее количество.
func (r *UserRepository) ListActive(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, email, count(*) OVER () AS total
		 FROM users WHERE inactive = FALSE
		 ORDER BY id
		 LIMIT $1 OFFSET $2`, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list active users: %w", err)
	}
	defer rows.Close()

	var total int64
	users := make([]*domain.User, 0, limit)
	for rows.Next() {
		user := &domain.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate user rows: %w", err)
	}

	return users, total, nil
}

// Begin открывает транзакцию регистрации.
func (r *UserRepository) Begin(ctx context.Context) (domain.RegistrationTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &registrationTx{tx: tx}, nil
}

// registrationTx реализует domain.RegistrationTx поверх *sql.Tx.
type registrationTx struct {
	tx *sql.Tx
}

// InsertUser вставляет пользователя в рамках транзакции и возвращает его ID.
func (t *registrationTx) InsertUser(ctx context.Context, user *domain.User) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx,
		`INSERT INTO users (username, email, password_hash, inactive, activation_token)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		user.Username, user.Email, user.PasswordHash, user.Inactive, user.ActivationToken,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, domain.ErrEmailInUse
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	user.ID = id
	return id, nil
}

func (t *registrationTx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (t *registrationTx) Rollback() error {
	return t.tx.Rollback()
}

// scanner покрывает *sql.Row и *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	user := &domain.User{}
	var token sql.NullString

	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.Inactive, &token, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if token.Valid {
		user.ActivationToken = token.String
	}
	return user, nil
}
