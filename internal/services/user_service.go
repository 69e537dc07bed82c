package services

import (
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repositories"
)

// UserService handles profile lookup, the public directory, profile edits and
// directory search.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns a single user by ID.
func (s *UserService) GetProfile(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

// ListPublic returns every public, non-banned user except the given one, in
// insertion order.
func (s *UserService) ListPublic(excludingID string) ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}

	out := []models.User{}
	for _, u := range users {
		if u.IsPublic && !u.IsBanned && u.ID != excludingID {
			out = append(out, u)
		}
	}
	return out, nil
}

// UpdateProfile merges the provided fields into the stored record. Slice
// fields replace the stored slice whole; nil fields are left untouched.
func (s *UserService) UpdateProfile(id string, upd models.ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.Location != nil {
		user.Location = *upd.Location
	}
	if upd.SkillsOffered != nil {
		user.SkillsOffered = *upd.SkillsOffered
	}
	if upd.SkillsWanted != nil {
		user.SkillsWanted = *upd.SkillsWanted
	}
	if upd.Availability != nil {
		user.Availability = *upd.Availability
	}
	if upd.IsPublic != nil {
		user.IsPublic = *upd.IsPublic
	}
	if upd.Photo != nil {
		user.Photo = *upd.Photo
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Search filters the public directory (excluding the requester) by
// case-insensitive substring match on skills and location. Both filters are
// AND-composed when both terms are present; no match is an empty result, not
// an error.
func (s *UserService) Search(requesterID, skillTerm, locationTerm string) ([]models.User, error) {
	users, err := s.ListPublic(requesterID)
	if err != nil {
		return nil, err
	}

	out := []models.User{}
	for _, u := range users {
		if skillTerm != "" && !matchesSkill(&u, skillTerm) {
			continue
		}
		if locationTerm != "" && !containsFold(u.Location, locationTerm) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// matchesSkill reports whether any offered or wanted skill contains the term.
func matchesSkill(u *models.User, term string) bool {
	for _, skill := range u.SkillsOffered {
		if containsFold(skill, term) {
			return true
		}
	}
	for _, skill := range u.SkillsWanted {
		if containsFold(skill, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
