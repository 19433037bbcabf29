package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	CourseRepository           *CourseRepository
	BlogRepository             *BlogRepository
	InstructorRepository       *InstructorRepository
	UserRepository             *UserRepository
	AdminRepository            *AdminRepository
	SubscriptionRepository     *SubscriptionRepository
	SubscriptionTypeRepository *SubscriptionTypeRepository
	TokenRepository            *TokenRepository
	StatsRepository            *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CourseRepository:           NewCourseRepository(db),
		BlogRepository:             NewBlogRepository(db),
		InstructorRepository:       NewInstructorRepository(db),
		UserRepository:             NewUserRepository(db),
		AdminRepository:            NewAdminRepository(db),
		SubscriptionRepository:     NewSubscriptionRepository(db),
		SubscriptionTypeRepository: NewSubscriptionTypeRepository(db),
		TokenRepository:            NewTokenRepository(db),
		StatsRepository:            NewStatsRepository(db),
	}
}
