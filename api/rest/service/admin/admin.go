package admin

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopops-cloud/shopops/internal/auth"
	"github.com/shopops-cloud/shopops/internal/models"
	"github.com/shopops-cloud/shopops/pkg/db"
	"gorm.io/gorm"
)

var (
	// ErrEmailTaken is returned when registering an email that
	// already exists.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned when login fails. The cause
	// (unknown email vs wrong password) is deliberately not exposed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotApproved is returned when an unapproved admin logs in.
	ErrNotApproved = errors.New("account awaiting approval")
	// ErrNotClient is returned when a client login is attempted by
	// an account that is not a company-bound client.
	ErrNotClient = errors.New("not a client account")
	// ErrMissingFields is returned when a registration is incomplete.
	ErrMissingFields = errors.New("name, email and password are required")
	// ErrBadAccessLevel is returned for out-of-range access levels.
	ErrBadAccessLevel = errors.New("invalid access level")
)

type Admin interface {
	WithDatabase(*gorm.DB) Admin
	List(*ListRequest) (models.Admins, int64, error)
	Get(uuid.UUID) (*models.Admin, error)
	Register(*RegisterRequest) (*models.Admin, error)
	Login(email, password string) (*models.Admin, error)
	ClientLogin(email, password string) (*models.Admin, error)
	SetAccess(uuid.UUID, models.AccessLevel) (*models.Admin, error)
	SetCompany(uuid.UUID, *uuid.UUID) (*models.Admin, error)
	Delete(uuid.UUID) error
}

type adminService struct {
	ctx context.Context
	db  *gorm.DB
}

func Service(ctx context.Context) Admin {
	return &adminService{
		ctx: ctx,
		db:  db.Connection(),
	}
}

func (a *adminService) WithDatabase(conn *gorm.DB) Admin {
	a.db = conn
	return a
}

type ListRequest struct {
	Limit   uint64
	Offset  uint64
	OrderBy []string
}

func (a *adminService) List(req *ListRequest) (models.Admins, int64, error) {
	var (
		admins = make(models.Admins, 0)
		total  int64
		q      = a.db.WithContext(a.ctx).Model(&models.Admin{})
	)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	for _, orderBy := range req.OrderBy {
		q = q.Order(orderBy)
	}

	if req.Limit > 0 {
		q = q.Limit(int(req.Limit))
	}

	if req.Offset > 0 {
		q = q.Offset(int(req.Offset))
	}

	return admins, total, q.Find(&admins).Error
}

func (a *adminService) Get(id uuid.UUID) (*models.Admin, error) {
	var (
		admin = &models.Admin{}
		q     = a.db.WithContext(a.ctx)
	)

	return admin, q.First(admin, "id = ?", id).Error
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an unapproved admin. A manager raises the access
// level afterwards via SetAccess.
func (a *adminService) Register(req *RegisterRequest) (*models.Admin, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	q := a.db.WithContext(a.ctx)

	var count int64
	if err := q.Model(&models.Admin{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AccessLevel:  models.AccessUnapproved,
	}

	return admin, q.Create(admin).Error
}

func (a *adminService) Login(email, password string) (*models.Admin, error) {
	admin := &models.Admin{}
	q := a.db.WithContext(a.ctx)

	if err := q.First(admin, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	if admin.AccessLevel == models.AccessUnapproved {
		return nil, ErrNotApproved
	}

	return admin, nil
}

// ClientLogin authenticates a client-portal account: access level 1,
// bound to a company.
func (a *adminService) ClientLogin(email, password string) (*models.Admin, error) {
	admin, err := a.Login(email, password)
	if err != nil {
		return nil, err
	}

	if admin.AccessLevel != models.AccessClient || admin.CompanyID == nil {
		return nil, ErrNotClient
	}

	return admin, nil
}

func (a *adminService) SetAccess(id uuid.UUID, level models.AccessLevel) (*models.Admin, error) {
	if level < models.AccessUnapproved || level > models.AccessManager {
		return nil, ErrBadAccessLevel
	}

	admin := &models.Admin{}
	q := a.db.WithContext(a.ctx)

	if err := q.First(admin, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if err := q.Model(admin).Update("access_level", level).Error; err != nil {
		return nil, err
	}

	admin.AccessLevel = level
	return admin, nil
}

func (a *adminService) SetCompany(id uuid.UUID, companyID *uuid.UUID) (*models.Admin, error) {
	admin := &models.Admin{}
	q := a.db.WithContext(a.ctx)

	if err := q.First(admin, "id = ?", id).Error; err != nil {
		return nil, err
	}

	if companyID != nil {
		if err := q.First(&models.Company{}, "id = ?", companyID).Error; err != nil {
			return nil, err
		}
	}

	if err := q.Model(admin).Update("company_id", companyID).Error; err != nil {
		return nil, err
	}

	admin.CompanyID = companyID
	return admin, nil
}

func (a *adminService) Delete(id uuid.UUID) error {
	result := a.db.WithContext(a.ctx).Delete(&models.Admin{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
