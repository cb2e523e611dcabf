package mysql

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"hallohallo/internal/model"
)

// InitDB opens the MySQL connection used by the API process.
func InitDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}

// AutoMigrate creates/updates every table the content graph depends on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.CommunityMember{},
		&model.Post{},
		&model.PostComment{},
		&model.PostCommentReply{},
		&model.PostLike{},
		&model.PostCommentLike{},
		&model.PostCommentReplyLike{},
		&model.JobOffer{},
		&model.JobContact{},
		&model.RealEstateListing{},
		&model.RealEstateContact{},
		&model.Bookmark{},
		&model.ContentOutbox{},
	)
}
