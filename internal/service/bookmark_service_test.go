package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
)

func TestBookmarkToggle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := newUser(t, db, "anna")
	reader := newUser(t, db, "bela")
	listings := NewListingService(db)
	bookmarks := NewBookmarkService(db)

	job, err := listings.CreateJob(ctx, identOf(author), JobInput{Title: "Role"})
	require.NoError(t, err)

	on, err := bookmarks.Toggle(ctx, identOf(reader), job.ID, model.ResourceJob)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, int64(1), countRows(t, db, &model.Bookmark{},
		"user_id = ? AND resource_id = ? AND resource_type = ?", reader.ID, job.ID, model.ResourceJob))

	on, err = bookmarks.Toggle(ctx, identOf(reader), job.ID, model.ResourceJob)
	require.NoError(t, err)
	assert.False(t, on)
	assert.Zero(t, countRows(t, db, &model.Bookmark{}, "user_id = ?", reader.ID))

	_, err = bookmarks.Toggle(ctx, identOf(reader), job.ID, "podcast")
	assert.Error(t, err)

	_, err = bookmarks.Toggle(ctx, nil, job.ID, model.ResourceJob)
	assert.ErrorIs(t, err, pkg.ErrNotAuthenticated)
}

func TestBookmarkListResolvesTargets(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := newUser(t, db, "anna")
	reader := newUser(t, db, "bela")
	listings := NewListingService(db)
	bookmarks := NewBookmarkService(db)

	job, err := listings.CreateJob(ctx, identOf(author), JobInput{Title: "Role"})
	require.NoError(t, err)
	flat, err := listings.CreateRealEstate(ctx, identOf(author), RealEstateInput{Title: "Flat"})
	require.NoError(t, err)

	_, err = bookmarks.Toggle(ctx, identOf(reader), job.ID, model.ResourceJob)
	require.NoError(t, err)
	_, err = bookmarks.Toggle(ctx, identOf(reader), flat.ID, model.ResourceRealEstate)
	require.NoError(t, err)

	list, err := bookmarks.List(ctx, identOf(reader))
	require.NoError(t, err)
	require.Len(t, list, 2)

	var sawJob, sawFlat bool
	for _, item := range list {
		switch {
		case item.Job != nil:
			sawJob = true
			assert.Equal(t, job.ID, item.Job.ID)
		case item.RealEstate != nil:
			sawFlat = true
			assert.Equal(t, flat.ID, item.RealEstate.ID)
		}
		assert.False(t, item.Gone)
	}
	assert.True(t, sawJob)
	assert.True(t, sawFlat)
}

// A bookmark whose target was removed survives as a tombstone entry.
func TestBookmarkListMarksVanishedTargets(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	author := newUser(t, db, "anna")
	reader := newUser(t, db, "bela")
	listings := NewListingService(db)
	bookmarks := NewBookmarkService(db)

	job, err := listings.CreateJob(ctx, identOf(author), JobInput{Title: "Role"})
	require.NoError(t, err)
	_, err = bookmarks.Toggle(ctx, identOf(reader), job.ID, model.ResourceJob)
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.JobOffer{}, job.ID).Error)

	list, err := bookmarks.List(ctx, identOf(reader))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Gone)
	assert.Nil(t, list[0].Job)
}
