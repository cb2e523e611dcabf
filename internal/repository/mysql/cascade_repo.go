package mysql

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"hallohallo/internal/model"
)

// CascadeRepository removes a content-graph root together with everything
// transitively parented to it. The store has no foreign-key cascades, so the
// walk is done here, depth-first post-order: the deepest likes go first, the
// root goes last. Every per-record delete is delete-if-exists, so re-invoking
// a delete on a half-gone subtree is a harmless no-op. Each root delete runs
// inside one transaction and writes an outbox event row in the same
// transaction.
type CascadeRepository struct {
	DB *gorm.DB
}

// deleted tallies what a cascade removed, for the outbox payload.
type deleted struct {
	Posts      int64  `json:"posts"`
	Comments   int64  `json:"comments"`
	Replies    int64  `json:"replies"`
	Likes      int64  `json:"likes"`
	Members    int64  `json:"members"`
	DeletedAtU string `json:"deleted_at"`
}

func (r *CascadeRepository) DeleteCommunityTree(ctx context.Context, actorID uint64, community *model.Community) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tally deleted

		var posts []model.Post
		if err := tx.Where("community_id = ?", community.ID).Find(&posts).Error; err != nil {
			return err
		}
		for i := range posts {
			if err := deletePostSubtree(tx, posts[i].ID, &tally); err != nil {
				return err
			}
		}

		res := tx.Where("community_id = ?", community.ID).Delete(&model.CommunityMember{})
		if res.Error != nil {
			return res.Error
		}
		tally.Members = res.RowsAffected

		if err := tx.Delete(&model.Community{}, community.ID).Error; err != nil {
			return err
		}

		return insertOutbox(tx, "community.deleted", actorID, "community", community.ID, &tally)
	})
}

func (r *CascadeRepository) DeletePostTree(ctx context.Context, actorID uint64, post *model.Post) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tally deleted
		if err := deletePostSubtree(tx, post.ID, &tally); err != nil {
			return err
		}
		return insertOutbox(tx, "post.deleted", actorID, "post", post.ID, &tally)
	})
}

func (r *CascadeRepository) DeleteCommentTree(ctx context.Context, actorID uint64, comment *model.PostComment) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tally deleted
		if err := deleteCommentSubtree(tx, comment.ID, &tally); err != nil {
			return err
		}
		return insertOutbox(tx, "comment.deleted", actorID, "comment", comment.ID, &tally)
	})
}

func (r *CascadeRepository) DeleteReplyTree(ctx context.Context, actorID uint64, reply *model.PostCommentReply) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tally deleted
		if err := deleteReplySubtree(tx, reply.ID, &tally); err != nil {
			return err
		}
		return insertOutbox(tx, "reply.deleted", actorID, "reply", reply.ID, &tally)
	})
}

// deletePostSubtree: comments (each with replies and likes) first, then the
// post's own likes, then the post row.
func deletePostSubtree(tx *gorm.DB, postID uint64, tally *deleted) error {
	var comments []model.PostComment
	if err := tx.Where("post_id = ?", postID).Find(&comments).Error; err != nil {
		return err
	}
	for i := range comments {
		if err := deleteCommentSubtree(tx, comments[i].ID, tally); err != nil {
			return err
		}
	}

	res := tx.Where("post_id = ?", postID).Delete(&model.PostLike{})
	if res.Error != nil {
		return res.Error
	}
	tally.Likes += res.RowsAffected

	res = tx.Delete(&model.Post{}, postID)
	if res.Error != nil {
		return res.Error
	}
	tally.Posts += res.RowsAffected
	return nil
}

func deleteCommentSubtree(tx *gorm.DB, commentID uint64, tally *deleted) error {
	var replies []model.PostCommentReply
	if err := tx.Where("comment_id = ?", commentID).Find(&replies).Error; err != nil {
		return err
	}
	for i := range replies {
		if err := deleteReplySubtree(tx, replies[i].ID, tally); err != nil {
			return err
		}
	}

	res := tx.Where("comment_id = ?", commentID).Delete(&model.PostCommentLike{})
	if res.Error != nil {
		return res.Error
	}
	tally.Likes += res.RowsAffected

	res = tx.Delete(&model.PostComment{}, commentID)
	if res.Error != nil {
		return res.Error
	}
	tally.Comments += res.RowsAffected
	return nil
}

func deleteReplySubtree(tx *gorm.DB, replyID uint64, tally *deleted) error {
	res := tx.Where("reply_id = ?", replyID).Delete(&model.PostCommentReplyLike{})
	if res.Error != nil {
		return res.Error
	}
	tally.Likes += res.RowsAffected

	res = tx.Delete(&model.PostCommentReply{}, replyID)
	if res.Error != nil {
		return res.Error
	}
	tally.Replies += res.RowsAffected
	return nil
}

func insertOutbox(tx *gorm.DB, event string, actorID uint64, resourceType string, resourceID uint64, tally *deleted) error {
	tally.DeletedAtU = time.Now().UTC().Format(time.RFC3339Nano)
	payload, _ := json.Marshal(tally)
	return tx.Create(&model.ContentOutbox{
		EventType:    event,
		ActorID:      actorID,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Payload:      string(payload),
		Status:       0,
	}).Error
}
