package service

import (
	"context"

	"coursecatalog/internal/model"
	"coursecatalog/internal/repository"
)

type OfferingService interface {
	ListOfferings(ctx context.Context) ([]model.Offering, error)
}

type offeringService struct {
	repo repository.OfferingRepository
}

func NewOfferingService(repo repository.OfferingRepository) OfferingService {
	return &offeringService{repo: repo}
}

func (s *offeringService) ListOfferings(ctx context.Context) ([]model.Offering, error) {
	return s.repo.ListOfferings(ctx)
}
