package admin

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Company{}))
	return db
}

func register(t *testing.T, svc *adminService, email string) *models.Admin {
	t.Helper()
	a, err := svc.Register(&RegisterRequest{Name: "Pat", Email: email, Password: "hunter22"})
	require.NoError(t, err)
	return a
}

func TestRegisterStartsUnapproved(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	a := register(t, svc, "pat@example.com")
	require.Equal(t, models.AccessUnapproved, a.AccessLevel)
	require.NotEqual(t, "hunter22", a.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	register(t, svc, "pat@example.com")

	_, err := svc.Register(&RegisterRequest{Name: "Sam", Email: "pat@example.com", Password: "pw"})
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterMissingFields(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	_, err := svc.Register(&RegisterRequest{Email: "pat@example.com"})
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestLogin(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	a := register(t, svc, "pat@example.com")
	_, err := svc.SetAccess(a.ID, models.AccessStaff)
	require.NoError(t, err)

	got, err := svc.Login("pat@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	a := register(t, svc, "pat@example.com")
	_, err := svc.SetAccess(a.ID, models.AccessStaff)
	require.NoError(t, err)

	_, err = svc.Login("pat@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email yields the same error
	_, err = svc.Login("nobody@example.com", "hunter22")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnapproved(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	register(t, svc, "pat@example.com")

	_, err := svc.Login("pat@example.com", "hunter22")
	require.ErrorIs(t, err, ErrNotApproved)
}

func TestClientLoginRequiresCompany(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	a := register(t, svc, "client@example.com")
	_, err := svc.SetAccess(a.ID, models.AccessClient)
	require.NoError(t, err)

	// client level but no company binding
	_, err = svc.ClientLogin("client@example.com", "hunter22")
	require.ErrorIs(t, err, ErrNotClient)

	company := &models.Company{ID: uuid.New(), Code: "ACME", Name: "Acme"}
	require.NoError(t, db.Create(company).Error)
	_, err = svc.SetCompany(a.ID, &company.ID)
	require.NoError(t, err)

	got, err := svc.ClientLogin("client@example.com", "hunter22")
	require.NoError(t, err)
	require.Equal(t, a.ID, got.ID)
}

func TestClientLoginRejectsStaff(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	a := register(t, svc, "staff@example.com")
	_, err := svc.SetAccess(a.ID, models.AccessStaff)
	require.NoError(t, err)

	_, err = svc.ClientLogin("staff@example.com", "hunter22")
	require.ErrorIs(t, err, ErrNotClient)
}

func TestSetAccessRange(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	a := register(t, svc, "pat@example.com")

	_, err := svc.SetAccess(a.ID, models.AccessLevel(4))
	require.ErrorIs(t, err, ErrBadAccessLevel)

	got, err := svc.SetAccess(a.ID, models.AccessManager)
	require.NoError(t, err)
	require.Equal(t, models.AccessManager, got.AccessLevel)
}

func TestSetCompanyUnknownCompany(t *testing.T) {
	db := openTestDB(t)
	svc := &adminService{ctx: context.Background(), db: db}

	a := register(t, svc, "pat@example.com")
	unknown := uuid.New()

	_, err := svc.SetCompany(a.ID, &unknown)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
