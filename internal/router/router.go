package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hallohallo/internal/handler"
	"hallohallo/internal/middleware"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/redis"
	"hallohallo/internal/service"
)

type Deps struct {
	DB     *gorm.DB
	TM     *pkg.TokenManager
	Tokens *redis.TokenRepository
	Cache  *redis.LikeCache
	Mailer *pkg.Mailer
}

func InitRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler(service.NewUserService(deps.DB, deps.Tokens, deps.TM))
	community := handler.NewCommunityHandler(service.NewCommunityService(deps.DB, deps.Mailer))
	post := handler.NewPostHandler(service.NewPostService(deps.DB))
	comment := handler.NewCommentHandler(service.NewCommentService(deps.DB))
	like := handler.NewLikeHandler(service.NewLikeService(deps.DB, deps.Cache))
	listing := handler.NewListingHandler(service.NewListingService(deps.DB))
	bookmark := handler.NewBookmarkHandler(service.NewBookmarkService(deps.DB))

	auth := middleware.AuthMiddleware(deps.TM, deps.Tokens)

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.GET("/:id", user.Profile)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	authGroup := r.Group("/api/auth")
	authGroup.Use(auth)
	{
		authGroup.POST("/logout", user.Logout)
		authGroup.POST("/change-password", user.ChangePassword)
	}

	communityGroup := r.Group("/api/community")
	{
		communityGroup.GET("/list", community.List)
		communityGroup.GET("/:id", community.Get)
	}
	communityAuth := r.Group("/api/community")
	communityAuth.Use(auth)
	{
		communityAuth.POST("/create", community.Create)
		communityAuth.PUT("/:id", community.Update)
		communityAuth.DELETE("/:id", community.Delete)
		communityAuth.POST("/:id/join", community.Join)
		communityAuth.POST("/:id/leave", community.Leave)
		communityAuth.POST("/:id/invite", community.Invite)
	}

	postGroup := r.Group("/api/post")
	{
		postGroup.GET("/search", post.Search)
		postGroup.GET("/:id", post.Get)
		postGroup.GET("/list/:id", post.ListByCommunity)
		postGroup.GET("/:id/comments", comment.ListByPost)
		postGroup.GET("/:id/likes", like.PostCount)
	}
	postAuth := r.Group("/api/post")
	postAuth.Use(auth)
	{
		postAuth.POST("/create", post.Create)
		postAuth.PUT("/:id", post.Update)
		postAuth.DELETE("/:id", post.Delete)
		postAuth.POST("/:id/comments", comment.AddComment)
		postAuth.POST("/:id/like", like.TogglePost)
		postAuth.GET("/:id/liked", like.IsPostLiked)
	}

	commentGroup := r.Group("/api/comment")
	{
		commentGroup.GET("/:id/replies", comment.ListReplies)
	}
	commentAuth := r.Group("/api/comment")
	commentAuth.Use(auth)
	{
		commentAuth.PUT("/:id", comment.UpdateComment)
		commentAuth.DELETE("/:id", comment.DeleteComment)
		commentAuth.POST("/:id/replies", comment.AddReply)
		commentAuth.POST("/:id/like", like.ToggleComment)
	}

	replyAuth := r.Group("/api/reply")
	replyAuth.Use(auth)
	{
		replyAuth.PUT("/:id", comment.UpdateReply)
		replyAuth.DELETE("/:id", comment.DeleteReply)
		replyAuth.POST("/:id/like", like.ToggleReply)
	}

	jobGroup := r.Group("/api/jobs")
	{
		jobGroup.GET("/list", listing.ListJobs)
		jobGroup.GET("/:id", listing.GetJob)
	}
	jobAuth := r.Group("/api/jobs")
	jobAuth.Use(auth)
	{
		jobAuth.POST("/create", listing.CreateJob)
		jobAuth.PUT("/:id/contact", listing.UpdateJobContact)
	}

	realEstateGroup := r.Group("/api/realestate")
	{
		realEstateGroup.GET("/list", listing.ListRealEstate)
		realEstateGroup.GET("/:id", listing.GetRealEstate)
	}
	realEstateAuth := r.Group("/api/realestate")
	realEstateAuth.Use(auth)
	{
		realEstateAuth.POST("/create", listing.CreateRealEstate)
		realEstateAuth.PUT("/:id/contact", listing.UpdateRealEstateContact)
	}

	bookmarkAuth := r.Group("/api/bookmarks")
	bookmarkAuth.Use(auth)
	{
		bookmarkAuth.POST("/toggle", bookmark.Toggle)
		bookmarkAuth.GET("/list", bookmark.List)
	}

	return r
}
