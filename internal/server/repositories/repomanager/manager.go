package repomanager

import (
	"context"
	"database/sql"

	"fitprogress/internal/dbx"
	"fitprogress/internal/server/repositories/measurements"
	"fitprogress/internal/server/repositories/photos"
	"fitprogress/internal/server/repositories/refreshtokens"
	"fitprogress/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Measurements(db dbx.DBTX) measurements.Repository
	Photos(db dbx.DBTX) photos.Repository
}
