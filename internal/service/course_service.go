package service

import (
	"context"

	"coursecatalog/internal/model"
	"coursecatalog/internal/repository"
)

// CourseService defines the interface for course operations
type CourseService interface {
	// ListCourses returns the full course catalog
	ListCourses(ctx context.Context) ([]model.Course, error)
}

// courseService is the implementation of CourseService
type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.ListCourses(ctx)
}
