package repository

import (
	"context"
	"testing"

	"github.com/pavlenko-transit/pickboard/modules/assignments/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignmentRepository_ReplaceForPeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	routeID := "R1"
	choice := 1

	mock.ExpectExec("DELETE FROM assignments").
		WithArgs("period-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("INSERT INTO assignments").
		WithArgs(pgxmock.AnyArg(), "A", "period-1", &routeID, &choice, pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO assignments").
		WithArgs(pgxmock.AnyArg(), "B", "period-1", (*string)(nil), (*int)(nil), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewAssignmentRepository(mock)
	err = repo.ReplaceForPeriod(context.Background(), "period-1", []*model.Assignment{
		{EmployeeID: "A", RouteID: &routeID, ChoiceReceived: &choice},
		{EmployeeID: "B"},
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignmentRepository_IsRouteTaken(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("period-1", "R1", "A").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewAssignmentRepository(mock)
	taken, err := repo.IsRouteTaken(context.Background(), "period-1", "R1", "A")

	require.NoError(t, err)
	assert.True(t, taken)
	require.NoError(t, mock.ExpectationsWereMet())
}
