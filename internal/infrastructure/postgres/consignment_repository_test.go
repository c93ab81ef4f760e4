package postgres

import (
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tenaxis/tenaxis-api/internal/domain"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

func newMockConsignmentRepo(t *testing.T) (pgxmock.PgxPoolIface, *ConsignmentRepo) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewConsignmentRepository(mock)
}

func TestConsignmentRepo_Create(t *testing.T) {
	mock, repo := newMockConsignmentRepo(t)

	now := time.Now()
	c := &entity.Consignment{
		ID:           "con-1",
		TenantID:     "ten-1",
		CompanyID:    "co-1",
		MembershipID: "tec-1",
		Date:         now,
		Amount:       decimal.RequireFromString("152300.50"),
		BankRef:      "BCO-778812",
		Status:       entity.ConsignmentRegistrada,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec(`INSERT INTO consignments`).
		WithArgs(c.ID, c.TenantID, c.CompanyID, c.MembershipID, c.Date, c.Amount,
			c.BankRef, c.Status, c.Notes, c.CreatedAt, c.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(c))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsignmentRepo_ListByCompany_DateRange(t *testing.T) {
	mock, repo := newMockConsignmentRepo(t)

	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now

	rows := pgxmock.NewRows([]string{
		"id", "tenant_id", "company_id", "membership_id", "date", "amount",
		"bank_ref", "status", "notes", "created_at", "updated_at",
	}).AddRow("con-1", "ten-1", "co-1", "tec-1", now, decimal.RequireFromString("80000"),
		"BCO-1", entity.ConsignmentConfirmada, "", now, now)

	mock.ExpectQuery(`FROM consignments`).
		WithArgs("co-1", &from, &to, 20, 0).
		WillReturnRows(rows)

	list, err := repo.ListByCompany("co-1", &from, &to, 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, list[0].Amount.Equal(decimal.RequireFromString("80000")))
	require.Equal(t, entity.ConsignmentConfirmada, list[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsignmentRepo_GetByID_NotFound(t *testing.T) {
	mock, repo := newMockConsignmentRepo(t)

	mock.ExpectQuery(`FROM consignments WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "tenant_id", "company_id", "membership_id", "date", "amount",
			"bank_ref", "status", "notes", "created_at", "updated_at",
		}))

	c, err := repo.GetByID("missing")
	require.NoError(t, err)
	require.Nil(t, c)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConsignmentRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, repo := newMockConsignmentRepo(t)

	mock.ExpectExec(`UPDATE consignments SET status`).
		WithArgs("missing", entity.ConsignmentConfirmada).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus("missing", entity.ConsignmentConfirmada)
	require.True(t, errors.Is(err, domain.ErrNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}
