package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zspldev/Webapp-NotesMate/internal/models"
)

func testOrg(orgID uint) models.Organization {
	return models.Organization{
		OrgID:     orgID,
		OrgName:   "Acme Corp",
		Shortname: "ACME",
		Address:   "1 Main St",
		Phone:     "555-0100",
		Email:     "info@acme.test",
	}
}

func testEmployee(orgID, empID uint) models.Employee {
	return models.Employee{
		OrgID:        orgID,
		EmpID:        empID,
		EmpName:      "Jordan Smith",
		EmpShortname: "JS",
		EmpPhone:     "555-0101",
		EmpEmail:     "jordan@acme.test",
	}
}

func TestRegisterOrganizationAndEmployee(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistryService(db)

	org := testOrg(1)
	emp := testEmployee(1, 7)
	require.NoError(t, svc.RegisterOrganizationAndEmployee(context.Background(), &org, &emp))

	var orgCount, empCount int64
	require.NoError(t, db.Model(&models.Organization{}).Count(&orgCount).Error)
	require.NoError(t, db.Model(&models.Employee{}).Count(&empCount).Error)
	assert.Equal(t, int64(1), orgCount)
	assert.Equal(t, int64(1), empCount)
}

func TestRegisterSecondEmployeeSkipsOrganizationInsert(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistryService(db)

	org := testOrg(1)
	emp := testEmployee(1, 7)
	require.NoError(t, svc.RegisterOrganizationAndEmployee(context.Background(), &org, &emp))

	// Same org again with a new employee: idempotent on the org side.
	orgAgain := testOrg(1)
	second := testEmployee(1, 8)
	second.EmpEmail = "casey@acme.test"
	require.NoError(t, svc.RegisterOrganizationAndEmployee(context.Background(), &orgAgain, &second))

	var orgCount, empCount int64
	require.NoError(t, db.Model(&models.Organization{}).Count(&orgCount).Error)
	require.NoError(t, db.Model(&models.Employee{}).Count(&empCount).Error)
	assert.Equal(t, int64(1), orgCount, "Organization insert should be skipped")
	assert.Equal(t, int64(2), empCount)
}

func TestRegisterDuplicateEmployeeFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistryService(db)

	org := testOrg(1)
	emp := testEmployee(1, 7)
	require.NoError(t, svc.RegisterOrganizationAndEmployee(context.Background(), &org, &emp))

	orgAgain := testOrg(1)
	dup := testEmployee(1, 7)
	err := svc.RegisterOrganizationAndEmployee(context.Background(), &orgAgain, &dup)
	assert.ErrorIs(t, err, ErrEmployeeExists)

	var empCount int64
	require.NoError(t, db.Model(&models.Employee{}).Count(&empCount).Error)
	assert.Equal(t, int64(1), empCount)
}

func TestRegisterClientUnknownOrganization(t *testing.T) {
	db := newTestDB(t)
	svc := NewRegistryService(db)

	client := models.Client{OrgID: 42, ClientName: "Acme", ClientEmail: "acme@client.test"}
	_, err := svc.RegisterClient(context.Background(), &client)
	assert.ErrorIs(t, err, ErrOrganizationNotFound)
}

func TestRegisterClientAssignsSequentialIDs(t *testing.T) {
	db := newTestDB(t)
	seedOrgAndEmployee(t, db, 1, 7, "jordan@acme.test")
	svc := NewRegistryService(db)

	first := models.Client{OrgID: 1, ClientName: "Acme", ClientShortname: "ACM", ClientEmail: "acme@client.test"}
	id, err := svc.RegisterClient(context.Background(), &first)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id, "First client of an org gets id 1")

	second := models.Client{OrgID: 1, ClientName: "Globex", ClientEmail: "globex@client.test"}
	id, err = svc.RegisterClient(context.Background(), &second)
	require.NoError(t, err)
	assert.Equal(t, uint(2), id)

	// Ids are per-organization sequences, not global.
	org2 := testOrg(2)
	emp := testEmployee(2, 1)
	require.NoError(t, svc.RegisterOrganizationAndEmployee(context.Background(), &org2, &emp))

	other := models.Client{OrgID: 2, ClientName: "Initech", ClientEmail: "initech@client.test"}
	id, err = svc.RegisterClient(context.Background(), &other)
	require.NoError(t, err)
	assert.Equal(t, uint(1), id)
}

func TestRegisterClientDefaultsPhone(t *testing.T) {
	db := newTestDB(t)
	seedOrgAndEmployee(t, db, 1, 7, "jordan@acme.test")
	svc := NewRegistryService(db)

	client := models.Client{OrgID: 1, ClientName: "Acme", ClientEmail: "acme@client.test"}
	_, err := svc.RegisterClient(context.Background(), &client)
	require.NoError(t, err)

	var stored models.Client
	require.NoError(t, db.Where("orgid = ? AND clientid = ?", 1, 1).First(&stored).Error)
	assert.Equal(t, "NA", stored.ClientPhone)
}

func TestFetchClients(t *testing.T) {
	db := newTestDB(t)
	seedOrgAndEmployee(t, db, 1, 7, "jordan@acme.test")
	svc := NewRegistryService(db)

	clients, err := svc.FetchClients(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, clients, "Org with no clients yields an empty list")

	first := models.Client{OrgID: 1, ClientName: "Acme", ClientShortname: "ACM", ClientEmail: "acme@client.test"}
	_, err = svc.RegisterClient(context.Background(), &first)
	require.NoError(t, err)
	second := models.Client{OrgID: 1, ClientName: "Globex", ClientShortname: "GBX", ClientEmail: "globex@client.test"}
	_, err = svc.RegisterClient(context.Background(), &second)
	require.NoError(t, err)

	clients, err = svc.FetchClients(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.ElementsMatch(t, []ClientSummary{
		{ClientID: 1, ClientName: "Acme", ClientShortname: "ACM"},
		{ClientID: 2, ClientName: "Globex", ClientShortname: "GBX"},
	}, clients)
}
