package application

import (
	"context"
	"errors"
	"time"

	"github.com/lifeosapp/backend/internal/domain/entity"
	repo "github.com/lifeosapp/backend/internal/domain/repository"
)

// RelationshipService owns tracked social connections.
type RelationshipService struct {
	Relationships repo.RelationshipRepository
	Kernel        *Kernel
}

func NewRelationshipService(rels repo.RelationshipRepository, kernel *Kernel) *RelationshipService {
	return &RelationshipService{Relationships: rels, Kernel: kernel}
}

type CreateRelationshipInput struct {
	Name        string
	Type        string
	HealthScore int
}

func (s *RelationshipService) CreateRelationship(ctx context.Context, userID string, in CreateRelationshipInput) (*entity.Relationship, error) {
	r := &entity.Relationship{
		UserID:             userID,
		Name:               in.Name,
		Type:               in.Type,
		HealthScore:        clamp(in.HealthScore, 0, 100),
		InteractionHistory: []entity.Interaction{},
	}
	if err := s.Relationships.Create(ctx, r); err != nil {
		return nil, err
	}

	if _, err := s.Kernel.RecordEvent(ctx, userID, EventInput{
		Type:   entity.EventSocial,
		Title:  "Added relationship: " + r.Name,
		Impact: entity.ImpactPositive,
		Value:  5,
		Source: &entity.SourceRef{Kind: entity.SourceRelationship, ID: r.ID},
	}); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RelationshipService) ListRelationships(ctx context.Context, userID string) ([]entity.Relationship, error) {
	return s.Relationships.ListByUser(ctx, userID)
}

type LogInteractionInput struct {
	Type        string
	Description string
}

func (s *RelationshipService) LogInteraction(ctx context.Context, userID, relID string, in LogInteractionInput) (*entity.Relationship, error) {
	r, err := s.Relationships.GetByID(ctx, relID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrRelationshipNotFound
		}
		return nil, err
	}
	if r.UserID != userID {
		return nil, ErrRelationshipNotFound
	}

	now := time.Now().UTC()
	r.LastInteraction = &now
	r.InteractionHistory = append(r.InteractionHistory, entity.Interaction{
		Date:        now,
		Type:        in.Type,
		Description: in.Description,
	})
	if err := s.Relationships.Update(ctx, r); err != nil {
		return nil, err
	}

	if _, err := s.Kernel.RecordEvent(ctx, userID, EventInput{
		Type:   entity.EventSocial,
		Title:  "Interaction with " + r.Name,
		Impact: entity.ImpactPositive,
		Value:  1,
		Source: &entity.SourceRef{Kind: entity.SourceRelationship, ID: r.ID},
	}); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *RelationshipService) DeleteRelationship(ctx context.Context, userID, relID string) error {
	r, err := s.Relationships.GetByID(ctx, relID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrRelationshipNotFound
		}
		return err
	}
	if r.UserID != userID {
		return ErrRelationshipNotFound
	}
	if err := s.Relationships.Delete(ctx, relID); err != nil {
		return err
	}
	_, err = s.Kernel.RecomputeScores(ctx, userID)
	return err
}
