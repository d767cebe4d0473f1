package service

import (
	"context"

	"github.com/ShopThryfted/Thryfted/internal/entity"
	"github.com/ShopThryfted/Thryfted/internal/repository"
)

// SurveyService appends responses to the durable survey log.
type SurveyService struct {
	surveys repository.SurveyStore
}

func NewSurveyService(surveys repository.SurveyStore) *SurveyService {
	return &SurveyService{surveys: surveys}
}

func (s *SurveyService) Record(ctx context.Context, style, size, brands, name, email string) error {
	resp := &entity.SurveyResponse{
		Style:  style,
		Size:   size,
		Brands: brands,
		Name:   name,
		Email:  email,
	}

	if err := s.surveys.Append(ctx, resp); err != nil {
		logger.Error().Err(err).Msg("Error recording survey response")
		return err
	}

	logger.Info().Str("email", email).Msg("Survey response recorded")
	return nil
}
