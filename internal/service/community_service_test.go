package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
)

func TestCreateCommunity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	svc := NewCommunityService(db, nil)

	community, err := svc.Create(ctx, identOf(owner), "Berlin Devs", "a place for devs", model.PrivacyPublic)
	require.NoError(t, err)
	assert.Equal(t, "berlin-devs", community.Slug)
	assert.Contains(t, community.SearchText, "Berlin Devs")
	assert.Contains(t, community.SearchText, "anna")

	// The creator becomes the sole admin member.
	var member model.CommunityMember
	require.NoError(t, db.Where("community_id = ?", community.ID).First(&member).Error)
	assert.Equal(t, owner.ID, member.UserID)
	assert.Equal(t, model.RoleAdmin, member.Role)

	_, err = svc.Create(ctx, nil, "x", "", "")
	assert.ErrorIs(t, err, pkg.ErrNotAuthenticated)

	_, err = svc.Create(ctx, identOf(owner), "x", "", "friends-only")
	assert.Error(t, err)
}

func TestUpdateCommunityOwnershipAndSearchText(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	other := newUser(t, db, "bela")
	svc := NewCommunityService(db, nil)

	community, err := svc.Create(ctx, identOf(owner), "Old Name", "old description", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Update(ctx, identOf(other), community.ID, "Hacked", "", ""), pkg.ErrNotAuthorized)
	assert.ErrorIs(t, svc.Update(ctx, nil, community.ID, "Hacked", "", ""), pkg.ErrNotAuthenticated)

	require.NoError(t, svc.Update(ctx, identOf(owner), community.ID, "New Name", "new description", model.PrivacyPrivate))

	got, err := svc.Get(ctx, community.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PrivacyPrivate, got.Privacy)
	assert.Contains(t, got.SearchText, "New Name")
	assert.Contains(t, got.SearchText, "new description")
	assert.NotContains(t, got.SearchText, "Old Name")
	assert.NotContains(t, got.SearchText, "old description")
}

// Full tree teardown: community -> post -> comment -> reply with likes at
// every level, then one delete at the root.
func TestDeleteCommunityCascade(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	member := newUser(t, db, "bela")

	communities := NewCommunityService(db, nil)
	posts := NewPostService(db)
	comments := NewCommentService(db)
	likes := NewLikeService(db, nil)

	community, err := communities.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)
	require.NoError(t, communities.Join(ctx, identOf(member), community.ID))

	post, err := posts.Create(ctx, identOf(member), community.ID, "Hello", "first post")
	require.NoError(t, err)
	comment, err := comments.AddComment(ctx, identOf(owner), post.ID, "Nice")
	require.NoError(t, err)
	reply, err := comments.AddReply(ctx, identOf(member), comment.ID, "Thanks")
	require.NoError(t, err)

	for _, toggle := range []func() (bool, error){
		func() (bool, error) { return likes.TogglePost(ctx, identOf(owner), post.ID) },
		func() (bool, error) { return likes.ToggleComment(ctx, identOf(member), comment.ID) },
		func() (bool, error) { return likes.ToggleReply(ctx, identOf(owner), reply.ID) },
	} {
		liked, err := toggle()
		require.NoError(t, err)
		require.True(t, liked)
	}

	require.NoError(t, communities.Delete(ctx, identOf(owner), community.ID))

	assert.Zero(t, countRows(t, db, &model.Post{}, "community_id = ?", community.ID))
	assert.Zero(t, countRows(t, db, &model.PostComment{}, "post_id = ?", post.ID))
	assert.Zero(t, countRows(t, db, &model.PostCommentReply{}, "comment_id = ?", comment.ID))
	assert.Zero(t, countRows(t, db, &model.PostLike{}, "post_id = ?", post.ID))
	assert.Zero(t, countRows(t, db, &model.PostCommentLike{}, "comment_id = ?", comment.ID))
	assert.Zero(t, countRows(t, db, &model.PostCommentReplyLike{}, "reply_id = ?", reply.ID))
	assert.Zero(t, countRows(t, db, &model.CommunityMember{}, "community_id = ?", community.ID))
	assert.Zero(t, countRows(t, db, &model.Community{}, "id = ?", community.ID))

	// The cascade leaves an event for the relayer.
	assert.Equal(t, int64(1), countRows(t, db, &model.ContentOutbox{},
		"event_type = ? AND resource_id = ?", "community.deleted", community.ID))

	// Deleting again is a no-op, not an error.
	assert.NoError(t, communities.Delete(ctx, identOf(owner), community.ID))
}

func TestDeleteCommunityRequiresOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	other := newUser(t, db, "bela")
	svc := NewCommunityService(db, nil)

	community, err := svc.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, identOf(other), community.ID), pkg.ErrNotAuthorized)
	assert.ErrorIs(t, svc.Delete(ctx, nil, community.ID), pkg.ErrNotAuthenticated)
	assert.Equal(t, int64(1), countRows(t, db, &model.Community{}, "id = ?", community.ID))
}

func TestInviteRequiresAdminOrModerator(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	member := newUser(t, db, "bela")
	invitee := newUser(t, db, "cem")
	svc := NewCommunityService(db, nil)

	community, err := svc.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)
	require.NoError(t, svc.Join(ctx, identOf(member), community.ID))

	// Plain members and outsiders cannot invite.
	assert.ErrorIs(t, svc.Invite(ctx, identOf(member), community.ID, invitee.ID), pkg.ErrNotAuthorized)
	assert.ErrorIs(t, svc.Invite(ctx, identOf(invitee), community.ID, member.ID), pkg.ErrNotAuthorized)

	require.NoError(t, svc.Invite(ctx, identOf(owner), community.ID, invitee.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.CommunityMember{},
		"community_id = ? AND user_id = ?", community.ID, invitee.ID))

	// Inviting twice is idempotent.
	assert.NoError(t, svc.Invite(ctx, identOf(owner), community.ID, invitee.ID))
	assert.Equal(t, int64(1), countRows(t, db, &model.CommunityMember{},
		"community_id = ? AND user_id = ?", community.ID, invitee.ID))
}

func TestJoinLeave(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	member := newUser(t, db, "bela")
	svc := NewCommunityService(db, nil)

	community, err := svc.Create(ctx, identOf(owner), "Devs", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Join(ctx, identOf(member), 9999), pkg.ErrNotFound)

	require.NoError(t, svc.Join(ctx, identOf(member), community.ID))
	require.NoError(t, svc.Join(ctx, identOf(member), community.ID)) // idempotent
	assert.Equal(t, int64(1), countRows(t, db, &model.CommunityMember{},
		"community_id = ? AND user_id = ?", community.ID, member.ID))

	require.NoError(t, svc.Leave(ctx, identOf(member), community.ID))
	assert.Zero(t, countRows(t, db, &model.CommunityMember{},
		"community_id = ? AND user_id = ?", community.ID, member.ID))
}

func TestCommunitySearchSkipsSecret(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := newUser(t, db, "anna")
	svc := NewCommunityService(db, nil)

	_, err := svc.Create(ctx, identOf(owner), "Berlin Gardeners", "", model.PrivacyPublic)
	require.NoError(t, err)
	_, err = svc.Create(ctx, identOf(owner), "Berlin Insiders", "", model.PrivacySecret)
	require.NoError(t, err)

	list, err := svc.Search(ctx, "Berlin", 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Berlin Gardeners", list[0].Name)
}
