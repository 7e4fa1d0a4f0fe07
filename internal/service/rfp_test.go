package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfp-management-api/internal/entity"
	"rfp-management-api/internal/extract"
)

func TestRfpService_CreateRfp_ParsesFreeText(t *testing.T) {
	repos := newFakeRepositories()
	s := NewRfpService(repos, extract.NewPatternExtractor())

	text := "I need 20 laptops (16GB RAM) and 15 monitors 27-inch. Budget $50,000. " +
		"Delivery within 30 days. Payment net 30. Warranty 12 months."
	rfp, err := s.CreateRfp(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, text, rfp.Description)
	assert.Equal(t, text[:80], rfp.Title)
	require.Len(t, rfp.Items, 2)
	require.NotNil(t, rfp.Budget)
	assert.Equal(t, 50000.0, *rfp.Budget)
	require.NotNil(t, rfp.DeliveryDays)
	assert.Equal(t, 30, *rfp.DeliveryDays)
	require.NotNil(t, rfp.PaymentTerms)
	assert.Equal(t, "net 30", *rfp.PaymentTerms)
	require.NotNil(t, rfp.WarrantyMonths)
	assert.Equal(t, 12, *rfp.WarrantyMonths)

	stored, err := s.GetRfpById(context.Background(), rfp.Id)
	require.NoError(t, err)
	assert.Equal(t, rfp, stored)
}

func TestRfpService_CreateRfp_FallsBackWhenExtractorFails(t *testing.T) {
	repos := newFakeRepositories()
	s := NewRfpService(repos, &failingExtractor{})

	rfp, err := s.CreateRfp(context.Background(), "5 monitors, budget $900")
	require.NoError(t, err)

	require.Len(t, rfp.Items, 1)
	assert.Equal(t, "monitor", rfp.Items[0].Name)
	require.NotNil(t, rfp.Budget)
	assert.Equal(t, 900.0, *rfp.Budget)
}

func TestRfpService_GetRfpById_NotFound(t *testing.T) {
	s := NewRfpService(newFakeRepositories(), extract.NewPatternExtractor())

	_, err := s.GetRfpById(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrRfpNotFound)
}

func TestRfpService_SendRfp_SkipsUnknownVendors(t *testing.T) {
	repos := newFakeRepositories()
	s := NewRfpService(repos, extract.NewPatternExtractor())

	rfp, err := s.CreateRfp(context.Background(), "Need 2 laptops. Budget $3,000.")
	require.NoError(t, err)

	vendorId, err := repos.Vendor.CreateVendor(context.Background(), &entity.CreateVendorInput{
		Name:  "Acme Co",
		Email: "sales@acme.example",
	})
	require.NoError(t, err)

	sent, err := s.SendRfp(context.Background(), rfp.Id, []string{
		vendorId.String(),
		"11111111-1111-1111-1111-111111111111", // no such vendor
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	messages, err := s.GetOutboxByRfpId(context.Background(), rfp.Id)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "sales@acme.example", messages[0].VendorEmail)
	assert.Contains(t, messages[0].Subject, "RFPID:"+rfp.Id)
	assert.Equal(t, rfp.Description, messages[0].Body)
}

func TestRfpService_SendRfp_NoVendorsMatched(t *testing.T) {
	repos := newFakeRepositories()
	s := NewRfpService(repos, extract.NewPatternExtractor())

	rfp, err := s.CreateRfp(context.Background(), "anything")
	require.NoError(t, err)

	_, err = s.SendRfp(context.Background(), rfp.Id, []string{"11111111-1111-1111-1111-111111111111"})
	assert.ErrorIs(t, err, ErrNoVendorsMatched)
}

func TestRfpService_SendRfp_RfpNotFound(t *testing.T) {
	s := NewRfpService(newFakeRepositories(), extract.NewPatternExtractor())

	_, err := s.SendRfp(context.Background(), "00000000-0000-0000-0000-000000000000", []string{"any"})
	assert.ErrorIs(t, err, ErrRfpNotFound)
}

func TestVendorService_CreateVendor_RoundTrip(t *testing.T) {
	s := NewVendorService(newFakeRepositories())

	vendor, err := s.CreateVendor(context.Background(), &entity.CreateVendorInput{
		Name:        "Acme Co",
		Email:       "Sales@Acme.example",
		ContactName: "Jo",
	})
	require.NoError(t, err)
	assert.Equal(t, "sales@acme.example", vendor.Email)

	vendors, err := s.GetVendors(context.Background(), entity.NewPaginationInput(10, 0))
	require.NoError(t, err)
	require.Len(t, vendors, 1)
	assert.Equal(t, vendor.Id, vendors[0].Id)
}
