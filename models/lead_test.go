package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadStatusLabel(t *testing.T) {
	assert.Equal(t, "not started", LeadNotStarted.Label())
	assert.Equal(t, "in progress", LeadInProgress.Label())
	assert.Equal(t, "complete", LeadComplete.Label())
	assert.Equal(t, "social media", SourceSocialMedia.Label())
}

func TestLeadFieldsValidate(t *testing.T) {
	fields := LeadFields{
		Status:       LeadNotStarted,
		Source:       SourceWebsite,
		PropertyType: TypeResidential,
		Requirement:  RequirementBuy,
	}
	require.NoError(t, fields.Validate())

	bad := fields
	bad.Source = "carrier-pigeon"
	require.Error(t, bad.Validate())
}

func TestLeadUpdateDecodeDistinguishesAbsentFromEmpty(t *testing.T) {
	var upd LeadUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"notes": ""}`), &upd))

	require.NotNil(t, upd.Notes)
	assert.Empty(t, *upd.Notes)
	assert.Nil(t, upd.Phone)

	lead := Lead{Notes: "old notes", Phone: "555-0100"}
	upd.Apply(&lead)
	assert.Empty(t, lead.Notes)
	assert.Equal(t, "555-0100", lead.Phone)
}

func TestSampleDataIsValid(t *testing.T) {
	for _, lead := range SampleLeads() {
		assert.NotEmpty(t, lead.ID)
		assert.True(t, lead.Status.Valid(), "lead %s has invalid status", lead.ID)
		assert.True(t, lead.Source.Valid(), "lead %s has invalid source", lead.ID)
	}
	for _, property := range SampleProperties() {
		assert.NotEmpty(t, property.ID)
		assert.True(t, property.Status.Valid(), "property %s has invalid status", property.ID)
		assert.NotNil(t, property.Availability)
	}
}
