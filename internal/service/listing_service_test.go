package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
)

func TestCreateJobWithContact(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := newUser(t, db, "anna")
	svc := NewListingService(db)

	job, err := svc.CreateJob(ctx, identOf(author), JobInput{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Berlin",
		Content:      "Go services",
		ContactEmail: "jobs@acme.example",
	})
	require.NoError(t, err)
	assert.Contains(t, job.Slug, "backend-engineer-")
	assert.Contains(t, job.SearchText, "Acme")
	assert.Contains(t, job.SearchText, "anna")

	got, contact, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	require.NotNil(t, contact)
	assert.Equal(t, "jobs@acme.example", contact.Email)

	// Publication event recorded for the relayer.
	assert.Equal(t, int64(1), countRows(t, db, &model.ContentOutbox{},
		"event_type = ? AND resource_id = ?", "job.published", job.ID))

	_, err = svc.CreateJob(ctx, nil, JobInput{Title: "x"})
	assert.ErrorIs(t, err, pkg.ErrNotAuthenticated)
}

func TestCreateRealEstateWithoutContact(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := newUser(t, db, "anna")
	svc := NewListingService(db)

	listing, err := svc.CreateRealEstate(ctx, identOf(author), RealEstateInput{
		Title:   "Sunny Flat",
		Address: "Hauptstrasse 1",
		Price:   1200,
	})
	require.NoError(t, err)

	got, contact, err := svc.GetRealEstate(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), got.Price)
	assert.Nil(t, contact)
}

func TestUpdateContactOwnership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := newUser(t, db, "anna")
	other := newUser(t, db, "bela")
	svc := NewListingService(db)

	job, err := svc.CreateJob(ctx, identOf(author), JobInput{Title: "Role"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateJobContact(ctx, identOf(other), job.ID, "x@y.example", ""),
		pkg.ErrNotAuthorized)

	require.NoError(t, svc.UpdateJobContact(ctx, identOf(author), job.ID, "hire@me.example", "123"))
	// Upsert keeps a single contact row per offer.
	require.NoError(t, svc.UpdateJobContact(ctx, identOf(author), job.ID, "new@me.example", "456"))
	assert.Equal(t, int64(1), countRows(t, db, &model.JobContact{}, "job_id = ?", job.ID))

	_, contact, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "new@me.example", contact.Email)
}

func TestSearchListings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := newUser(t, db, "anna")
	svc := NewListingService(db)

	_, err := svc.CreateJob(ctx, identOf(author), JobInput{Title: "Nurse", Location: "Hamburg"})
	require.NoError(t, err)
	_, err = svc.CreateJob(ctx, identOf(author), JobInput{Title: "Cook", Location: "Munich"})
	require.NoError(t, err)

	list, err := svc.SearchJobs(ctx, "Hamburg", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Nurse", list[0].Title)
}
