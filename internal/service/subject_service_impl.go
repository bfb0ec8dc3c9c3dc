package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/midoradev/study-planner/internal/repository"
)

type subjectService struct {
	subjects repository.SubjectRepo
}

func NewSubjectService(subjects repository.SubjectRepo) SubjectService {
	return &subjectService{subjects: subjects}
}

func (s *subjectService) Create(ctx context.Context, name string, weeklyTargetMin int, notes string) (*domain.Subject, error) {
	now := time.Now().UTC()
	subject := &domain.Subject{
		ID:              uuid.New().String(),
		Name:            name,
		WeeklyTargetMin: weeklyTargetMin,
		Notes:           notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := subject.Validate(); err != nil {
		return nil, err
	}
	if err := s.subjects.Create(ctx, subject); err != nil {
		return nil, fmt.Errorf("creating subject: %w", err)
	}
	return subject, nil
}

func (s *subjectService) GetByID(ctx context.Context, id string) (*domain.Subject, error) {
	return s.subjects.GetByID(ctx, id)
}

func (s *subjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	return s.subjects.List(ctx)
}

func (s *subjectService) Update(ctx context.Context, subject *domain.Subject) error {
	if err := subject.Validate(); err != nil {
		return err
	}
	subject.UpdatedAt = time.Now().UTC()
	return s.subjects.Update(ctx, subject)
}

func (s *subjectService) Delete(ctx context.Context, id string) error {
	return s.subjects.Delete(ctx, id)
}
