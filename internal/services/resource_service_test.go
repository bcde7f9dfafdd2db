package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crop-exchange/internal/models"
)

func newResourceServiceTest(t *testing.T) (*ResourceService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := NewUserService(db, zerolog.Nop())
	return NewResourceService(db, zerolog.Nop(), users), mock
}

func resourceRow(id int, title string, ownerID, version int, createdAt time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "image_url", "price", "price_type", "availability", "condition", "location", "description", "owner_id", "owner_name", "version", "created_at"}).
		AddRow(id, title, "http://img", "500", "per-day", "Weekdays", "Good", "Konya", "sturdy", ownerID, "Mehmet", version, createdAt)
}

func TestResourceUpdateOwnership(t *testing.T) {
	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, mock := newResourceServiceTest(t)
		mock.ExpectQuery("SELECT " + resourceColumns + " FROM resources WHERE id = ?").
			WithArgs(4).
			WillReturnRows(resourceRow(4, "Tractor", 5, 0, time.Now()))

		_, err := svc.Update(4, 12, &models.UpdateResourceRequest{Title: "Not yours"})
		assert.ErrorIs(t, err, ErrForbidden)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner update succeeds", func(t *testing.T) {
		svc, mock := newResourceServiceTest(t)
		now := time.Now()
		mock.ExpectQuery("SELECT " + resourceColumns + " FROM resources WHERE id = ?").
			WithArgs(4).
			WillReturnRows(resourceRow(4, "Tractor", 5, 1, now))
		mock.ExpectExec("UPDATE resources SET title = ?, image_url = ?, price = ?, price_type = ?, availability = ?, `condition` = ?, location = ?, description = ?, version = version + 1 WHERE id = ? AND version = ?").
			WithArgs("Tractor with plow", "http://img", "500", "per-day", "Weekdays", "Good", "Konya", "sturdy", 4, 1).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT " + resourceColumns + " FROM resources WHERE id = ?").
			WithArgs(4).
			WillReturnRows(resourceRow(4, "Tractor with plow", 5, 2, now))

		updated, err := svc.Update(4, 5, &models.UpdateResourceRequest{Title: "Tractor with plow"})
		require.NoError(t, err)
		assert.Equal(t, "Tractor with plow", updated.Title)
		assert.Equal(t, 2, updated.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version conflicts", func(t *testing.T) {
		svc, mock := newResourceServiceTest(t)
		mock.ExpectQuery("SELECT " + resourceColumns + " FROM resources WHERE id = ?").
			WithArgs(4).
			WillReturnRows(resourceRow(4, "Tractor", 5, 1, time.Now()))
		mock.ExpectExec("UPDATE resources SET title = ?, image_url = ?, price = ?, price_type = ?, availability = ?, `condition` = ?, location = ?, description = ?, version = version + 1 WHERE id = ? AND version = ?").
			WithArgs("Tractor", "http://img", "500", "per-day", "Weekdays", "Good", "Konya", "sturdy", 4, 1).
			WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := svc.Update(4, 5, &models.UpdateResourceRequest{})
		assert.ErrorIs(t, err, ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResourceDeleteOwnership(t *testing.T) {
	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, mock := newResourceServiceTest(t)
		mock.ExpectQuery("SELECT " + resourceColumns + " FROM resources WHERE id = ?").
			WithArgs(4).
			WillReturnRows(resourceRow(4, "Tractor", 5, 0, time.Now()))

		err := svc.Delete(4, 12)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("owner delete succeeds", func(t *testing.T) {
		svc, mock := newResourceServiceTest(t)
		mock.ExpectQuery("SELECT " + resourceColumns + " FROM resources WHERE id = ?").
			WithArgs(4).
			WillReturnRows(resourceRow(4, "Tractor", 5, 0, time.Now()))
		mock.ExpectExec("DELETE FROM resources WHERE id = ?").
			WithArgs(4).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, svc.Delete(4, 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResourceListAllOrdersNewestFirst(t *testing.T) {
	svc, mock := newResourceServiceTest(t)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "image_url", "price", "price_type", "availability", "condition", "location", "description", "owner_id", "owner_name", "version", "created_at"}).
		AddRow(8, "Harvester", "http://img", "900", "per-day", "Weekends", "New", "Adana", nil, 5, "Mehmet", 0, now).
		AddRow(2, "Tractor", "http://img", "500", "per-day", "Weekdays", "Good", "Konya", "sturdy", 5, "Mehmet", 0, now.Add(-24*time.Hour))

	mock.ExpectQuery("SELECT " + resourceColumns + " FROM resources ORDER BY created_at DESC, id DESC").
		WillReturnRows(rows)

	resources, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, "Harvester", resources[0].Title)
	assert.Equal(t, "Tractor", resources[1].Title)
	assert.Empty(t, resources[0].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}
