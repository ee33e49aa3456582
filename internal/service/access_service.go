package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "tourboard/internal/errors"
	"tourboard/internal/model"
	"tourboard/internal/repository"
)

// AccessService manages per-user LGA grants and resolves effective scope.
type AccessService interface {
	GetGrants(ctx context.Context, userID uint) ([]string, error)
	ReplaceGrants(ctx context.Context, userID uint, requested []string) (assigned int, err error)
	ResolveScope(ctx context.Context, user *model.User) (model.Scope, error)
}

type accessService struct {
	userRepo  repository.UserRepository
	lgaRepo   repository.LGAAccessRepository
	statsRepo repository.StatsRepository
}

// NewAccessService builds an AccessService.
func NewAccessService(userRepo repository.UserRepository, lgaRepo repository.LGAAccessRepository, statsRepo repository.StatsRepository) AccessService {
	return &accessService{userRepo: userRepo, lgaRepo: lgaRepo, statsRepo: statsRepo}
}

func (s *accessService) checkUser(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	return nil
}

// GetGrants returns the user's current grant set.
func (s *accessService) GetGrants(ctx context.Context, userID uint) ([]string, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.lgaRepo.ListByUser(ctx, userID)
}

// ReplaceGrants swaps the user's grant set for the valid subset of the
// requested one. Unknown and duplicate names are silently dropped rather
// than failing the request; the count actually assigned is returned and may
// be lower than requested. Validation always consults the live distinct-LGA
// list, never a cache.
func (s *accessService) ReplaceGrants(ctx context.Context, userID uint, requested []string) (int, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return 0, err
	}

	known, err := s.statsRepo.DistinctLGAs(ctx)
	if err != nil {
		return 0, fmt.Errorf("list lgas: %w", err)
	}

	valid := FilterLGAs(requested, known)
	if err := s.lgaRepo.ReplaceForUser(ctx, userID, valid); err != nil {
		return 0, fmt.Errorf("replace grants: %w", err)
	}
	return len(valid), nil
}

// ResolveScope computes the user's effective data visibility: every LGA for
// admins, the current grant set for everyone else. An empty grant set is a
// legal outcome and renders as "no visible regions", not an error.
func (s *accessService) ResolveScope(ctx context.Context, user *model.User) (model.Scope, error) {
	if user.IsAdmin() {
		return model.AllScope(), nil
	}
	lgas, err := s.lgaRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return model.Scope{}, fmt.Errorf("list grants: %w", err)
	}
	return model.GrantScope(lgas), nil
}

// FilterLGAs returns the requested names that appear in the known list,
// deduplicated and in request order. It is the pure half of grant
// replacement; the transactional write is the other.
func FilterLGAs(requested, known []string) []string {
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}

	valid := make([]string, 0, len(requested))
	seen := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		if _, ok := knownSet[name]; !ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		valid = append(valid, name)
	}
	return valid
}
