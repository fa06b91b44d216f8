package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
	querybuilder "gitlab.com/codeprep.net/internal/utils"
)

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (u userRepo) columns() []string {
	userTbl := domain.GetUserTable()
	return []string{
		userTbl.ID, userTbl.Name, userTbl.Email, userTbl.PasswordHash,
		userTbl.AuthProvider, userTbl.GoogleID,
		userTbl.CreatedAt, userTbl.LastLogin,
	}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) error {
	userTbl := domain.GetUserTable()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	query, args := querybuilder.NewQueryBuilder(u.schema).Insert(u.columns()...).
		Into(userTbl.GetTableName()).
		Values(
			user.ID, user.Name, user.Email, user.PasswordHash,
			user.AuthProvider, user.GoogleID,
			user.CreatedAt, user.LastLogin,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := u.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (u userRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	return u.getBy(ctx, domain.GetUserTable().ID, id)
}

func (u userRepo) GetByEmail(ctx context.Context, email string) (*domain.Users, error) {
	return u.getBy(ctx, domain.GetUserTable().Email, email)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return u.getBy(ctx, domain.GetUserTable().GoogleID, googleID)
}

func (u userRepo) getBy(ctx context.Context, col string, value interface{}) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(u.columns()...).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", col), value).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (u userRepo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Update(userTbl.GetTableName(), querybuilder.UpdateData{userTbl.LastLogin: time.Now()}).
		Where(fmt.Sprintf("%s = ?", userTbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := u.db.ExecContext(ctx, query, args...)
	return err
}
