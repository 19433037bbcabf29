package services

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kerem/learnhub/internal/app/repositories"
	"github.com/kerem/learnhub/internal/pkg/auth"
	"github.com/kerem/learnhub/internal/pkg/filestorage"
)

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	CourseService       CourseService
	BlogService         BlogService
	InstructorService   InstructorService
	UserService         UserService
	SubscriptionService SubscriptionService
	AnalyticsService    AnalyticsService
}

// NewServices initializes all services
func NewServices(
	pool *pgxpool.Pool,
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	storage filestorage.FileStorage,
) *Services {
	return &Services{
		AuthService: NewAuthService(
			jwtService,
			repos.UserRepository,
			repos.InstructorRepository,
			repos.AdminRepository,
			repos.TokenRepository,
		),
		CourseService: NewCourseService(repos.CourseRepository, storage),
		BlogService:   NewBlogService(repos.BlogRepository, storage),
		InstructorService: NewInstructorService(
			pool,
			repos.InstructorRepository,
			repos.CourseRepository,
			repos.BlogRepository,
		),
		UserService: NewUserService(
			pool,
			repos.UserRepository,
			repos.SubscriptionRepository,
		),
		SubscriptionService: NewSubscriptionService(
			repos.SubscriptionRepository,
			repos.SubscriptionTypeRepository,
		),
		AnalyticsService: NewAnalyticsService(repos.StatsRepository),
	}
}
