package postgres

import (
	"context"
	"testing"
	"time"

	"betak-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRentalFixture(t *testing.T) (*domain.Rental, time.Time) {
	t.Helper()
	created := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)
	return &domain.Rental{
		PropertyID:     2,
		UserID:         1,
		StartDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Year:           2025,
		Status:         domain.RentalStatusPending,
		BeforePictures: []string{"before1.jpg", "before2.jpg"},
		CreatedAt:      created,
	}, created
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	rt, _ := newRentalFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO rentals`).
		WithArgs(rt.PropertyID, rt.UserID, rt.StartDate, rt.EndDate, rt.Year, rt.Status,
			pq.Array(rt.BeforePictures), pq.Array(rt.AfterPictures), rt.ConditionReport, rt.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(7)))
	mock.ExpectExec(`INSERT INTO property_rental_history`).
		WithArgs(rt.PropertyID, rt.UserID, rt.StartDate, rt.EndDate, int32(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = repo.Create(context.Background(), rt)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), rt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Create_UniqueViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	rt, _ := newRentalFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO rentals`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "rentals_property_user_year_key"})
	mock.ExpectRollback()

	err = repo.Create(context.Background(), rt)
	assert.Error(t, err)

	var dupErr *domain.DuplicateError
	assert.ErrorAs(t, err, &dupErr)
	assert.Equal(t, rt.PropertyID, dupErr.PropertyID)
	assert.Equal(t, rt.UserID, dupErr.UserID)
	assert.Equal(t, rt.Year, dupErr.Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Create_HistoryFailureRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	rt, _ := newRentalFixture(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO rentals`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int32(7)))
	mock.ExpectExec(`INSERT INTO property_rental_history`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = repo.Create(context.Background(), rt)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_ExistsForYear(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(int32(2), int32(1), 2025).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsForYear(context.Background(), 2, 1, 2025)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE id`).
		WithArgs(int32(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rt, err := repo.GetByID(context.Background(), 99)
	assert.Nil(t, rt)

	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Complete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	rt, _ := newRentalFixture(t)
	rt.ID = 7
	rt.Status = domain.RentalStatusCompleted
	rt.AfterPictures = []string{"after1.jpg"}
	rt.ConditionReport = "minor scuffs"
	now := time.Now()
	rt.CompletedAt = &now

	mock.ExpectExec(`UPDATE rentals`).
		WithArgs(rt.Status, pq.Array(rt.BeforePictures), pq.Array(rt.AfterPictures), rt.ConditionReport, rt.CompletedAt, rt.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Complete(context.Background(), rt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Complete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	rt, _ := newRentalFixture(t)
	rt.ID = 99
	rt.AfterPictures = []string{"after1.jpg"}
	now := time.Now()
	rt.CompletedAt = &now

	mock.ExpectExec(`UPDATE rentals`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Complete(context.Background(), rt)
	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	created := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "property_id", "user_id", "start_date", "end_date", "year", "status",
		"before_pictures", "after_pictures", "condition_report", "created_at", "completed_at",
	}).AddRow(
		int32(7), int32(2), int32(1),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		2025, "pending",
		"{before1.jpg}", "{}", "", created, nil,
	)

	mock.ExpectQuery(`SELECT (.+) FROM rentals WHERE user_id`).
		WithArgs(int32(1)).
		WillReturnRows(rows)

	rentals, err := repo.ListByUser(context.Background(), 1)
	assert.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, int32(7), rentals[0].ID)
	assert.Equal(t, domain.RentalStatusPending, rentals[0].Status)
	assert.Equal(t, []string{"before1.jpg"}, rentals[0].BeforePictures)
	assert.Nil(t, rentals[0].CompletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)
	created := time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "property_id", "user_id", "start_date", "end_date", "year", "status",
		"before_pictures", "after_pictures", "condition_report", "created_at", "completed_at",
	}).AddRow(
		int32(7), int32(2), int32(1),
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		2025, "approved",
		"{before1.jpg}", "{}", "", created, nil,
	)

	mock.ExpectQuery(`UPDATE rentals SET status`).
		WithArgs(domain.RentalStatusApproved, int32(7)).
		WillReturnRows(rows)

	rt, err := repo.UpdateStatus(context.Background(), 7, domain.RentalStatusApproved)
	assert.NoError(t, err)
	assert.Equal(t, domain.RentalStatusApproved, rt.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRepository_Delete_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRentalRepository(db)

	mock.ExpectExec(`DELETE FROM rentals`).
		WithArgs(int32(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), 99)
	var nfErr *domain.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
