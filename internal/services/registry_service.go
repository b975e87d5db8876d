package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/zspldev/Webapp-NotesMate/internal/models"
)

// RegistryService manages organizations, employees and clients. All three
// are immutable after creation and never deleted.
type RegistryService struct {
	db *gorm.DB
}

// ClientSummary is the fetch-clients projection.
type ClientSummary struct {
	ClientID        uint   `json:"ClientID"`
	ClientName      string `json:"ClientName"`
	ClientShortname string `json:"ClientShortname"`
}

func NewRegistryService(db *gorm.DB) *RegistryService {
	return &RegistryService{db: db}
}

// RegisterOrganizationAndEmployee inserts whichever of the organization and
// employee rows are missing, as a single transaction. Registration is
// idempotent on the organization but the employee must be new.
func (s *RegistryService) RegisterOrganizationAndEmployee(ctx context.Context, org *models.Organization, emp *models.Employee) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Organization
		err := tx.Where("orgid = ?", org.OrgID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(org).Error; err != nil {
				return fmt.Errorf("failed to create organization: %w", err)
			}
		} else if err != nil {
			return fmt.Errorf("failed to look up organization: %w", err)
		}

		var count int64
		err = tx.Model(&models.Employee{}).
			Where("orgid = ? AND empid = ?", emp.OrgID, emp.EmpID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to look up employee: %w", err)
		}
		if count > 0 {
			return ErrEmployeeExists
		}

		if err := tx.Create(emp).Error; err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}
		return nil
	})
}

// RegisterClient assigns the next per-organization client id (max existing
// + 1, starting at 1) and inserts the client. The read-max-then-insert pair
// is a known consistency gap under concurrent registration for the same
// organization; the duplicate re-check below narrows but does not close it.
func (s *RegistryService) RegisterClient(ctx context.Context, client *models.Client) (uint, error) {
	var assigned uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Organization{}).
			Where("orgid = ?", client.OrgID).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to look up organization: %w", err)
		}
		if count == 0 {
			return ErrOrganizationNotFound
		}

		var maxID *uint
		err = tx.Model(&models.Client{}).
			Where("orgid = ?", client.OrgID).
			Select("MAX(clientid)").
			Scan(&maxID).Error
		if err != nil {
			return fmt.Errorf("failed to compute next client id: %w", err)
		}

		next := uint(1)
		if maxID != nil {
			next = *maxID + 1
		}

		err = tx.Model(&models.Client{}).
			Where("orgid = ? AND clientid = ?", client.OrgID, next).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to re-check client id: %w", err)
		}
		if count > 0 {
			return ErrClientExists
		}

		client.ClientID = next
		if client.ClientPhone == "" {
			client.ClientPhone = "NA"
		}
		if err := tx.Create(client).Error; err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}

		assigned = next
		return nil
	})
	if err != nil {
		return 0, err
	}
	return assigned, nil
}

// FetchClients returns all clients of an organization; the order is not
// specified. An organization with no clients yields an empty list, not an
// error.
func (s *RegistryService) FetchClients(ctx context.Context, orgID uint) ([]ClientSummary, error) {
	clients := make([]ClientSummary, 0)
	err := s.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("orgid = ?", orgID).
		Select("clientid as client_id, clientname as client_name, clientshortname as client_shortname").
		Scan(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return clients, nil
}
