package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
)

func TestCreatePostRequiresMembership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	outsider := newUser(t, db, "bela")
	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)

	community, err := communities.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)

	_, err = posts.Create(ctx, identOf(outsider), community.ID, "Hi", "")
	assert.ErrorIs(t, err, pkg.ErrNotAuthorized)

	_, err = posts.Create(ctx, nil, community.ID, "Hi", "")
	assert.ErrorIs(t, err, pkg.ErrNotAuthenticated)

	post, err := posts.Create(ctx, identOf(owner), community.ID, "Hello World", "body")
	require.NoError(t, err)
	assert.Contains(t, post.Slug, "hello-world-")
	assert.Contains(t, post.SearchText, "anna")
}

func TestDeletePostRequiresAuthor(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	other := newUser(t, db, "bela")
	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)

	community, err := communities.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)
	post, err := posts.Create(ctx, identOf(owner), community.ID, "Mine", "")
	require.NoError(t, err)

	assert.ErrorIs(t, posts.Delete(ctx, identOf(other), post.ID), pkg.ErrNotAuthorized)
	assert.Equal(t, int64(1), countRows(t, db, &model.Post{}, "id = ?", post.ID))
}

func TestUpdatePostRefreshesSearchText(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)

	community, err := communities.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)
	post, err := posts.Create(ctx, identOf(owner), community.ID, "Old Title", "Old Body")
	require.NoError(t, err)

	require.NoError(t, posts.Update(ctx, identOf(owner), post.ID, "New Title", "New Body"))

	got, err := posts.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Contains(t, got.SearchText, "New Title")
	assert.Contains(t, got.SearchText, "New Body")
	assert.NotContains(t, got.SearchText, "Old Title")
	assert.NotContains(t, got.SearchText, "Old Body")
	assert.Contains(t, got.SearchText, "anna")
}

func TestDeletePostCascadesOwnSubtreeOnly(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	likes := NewLikeService(db, nil)

	community, err := communities.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)
	doomed, err := posts.Create(ctx, identOf(owner), community.ID, "Doomed", "")
	require.NoError(t, err)
	survivor, err := posts.Create(ctx, identOf(owner), community.ID, "Survivor", "")
	require.NoError(t, err)

	comment, err := comments.AddComment(ctx, identOf(owner), doomed.ID, "c")
	require.NoError(t, err)
	reply, err := comments.AddReply(ctx, identOf(owner), comment.ID, "r")
	require.NoError(t, err)
	_, err = likes.ToggleReply(ctx, identOf(owner), reply.ID)
	require.NoError(t, err)

	require.NoError(t, posts.Delete(ctx, identOf(owner), doomed.ID))

	assert.Zero(t, countRows(t, db, &model.Post{}, "id = ?", doomed.ID))
	assert.Zero(t, countRows(t, db, &model.PostComment{}, "post_id = ?", doomed.ID))
	assert.Zero(t, countRows(t, db, &model.PostCommentReply{}, "comment_id = ?", comment.ID))
	assert.Zero(t, countRows(t, db, &model.PostCommentReplyLike{}, "reply_id = ?", reply.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.Post{}, "id = ?", survivor.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.Community{}, "id = ?", community.ID))
}

// A post already removed by its community's cascade must re-delete cleanly.
func TestDeletePostAfterCommunityCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)

	community, err := communities.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)
	post, err := posts.Create(ctx, identOf(owner), community.ID, "Hello", "")
	require.NoError(t, err)

	require.NoError(t, communities.Delete(ctx, identOf(owner), community.ID))
	assert.NoError(t, posts.Delete(ctx, identOf(owner), post.ID))
}

func TestListPostsByCommunity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)

	community, err := communities.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)
	for _, title := range []string{"one", "two", "three"} {
		_, err := posts.Create(ctx, identOf(owner), community.ID, title, "")
		require.NoError(t, err)
	}

	list, err := posts.ListByCommunity(ctx, community.ID, 1, 2)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	all, err := posts.ListByCommunity(ctx, community.ID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
