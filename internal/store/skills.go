package store

import (
	"errors"

	"gorm.io/gorm"

	"skillswap-be/internal/models"
)

func (s *Store) AddSkillOffer(email, skillName, skillLevel, category string) (models.SkillOffer, bool, error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil || !found {
		return models.SkillOffer{}, found, err
	}

	offer := models.SkillOffer{
		UserID:     u.ID,
		SkillName:  skillName,
		SkillLevel: skillLevel,
	}
	if category != "" {
		cat, err := s.EnsureCategory(category)
		if err != nil {
			return models.SkillOffer{}, false, err
		}
		offer.CategoryID = &cat.ID
	}

	if err := s.db.Create(&offer).Error; err != nil {
		return models.SkillOffer{}, false, err
	}
	return offer, true, nil
}

func (s *Store) AddSkillRequest(email, skillName, description string) (models.SkillRequest, bool, error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil || !found {
		return models.SkillRequest{}, found, err
	}

	req := models.SkillRequest{
		UserID:      u.ID,
		SkillName:   skillName,
		Description: description,
	}
	if err := s.db.Create(&req).Error; err != nil {
		return models.SkillRequest{}, false, err
	}
	return req, true, nil
}

func (s *Store) ListSkillOffers() ([]models.SkillOffer, error) {
	var offers []models.SkillOffer
	if err := s.db.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (s *Store) ListSkillRequests() ([]models.SkillRequest, error) {
	var reqs []models.SkillRequest
	if err := s.db.Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

// EnsureCategory returns the category with the given name, creating it on
// first sight.
func (s *Store) EnsureCategory(name string) (models.Category, error) {
	var cat models.Category
	err := s.db.Where("name = ?", name).First(&cat).Error
	if err == nil {
		return cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, err
	}

	cat = models.Category{Name: name}
	if err := s.db.Create(&cat).Error; err != nil {
		return models.Category{}, err
	}
	return cat, nil
}

func (s *Store) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.Order("name asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// Profile bundles a user with both skill lists, loaded by explicit queries.
type Profile struct {
	User          models.User           `json:"user"`
	SkillsOffered []models.SkillOffer   `json:"skills_offered"`
	SkillsNeeded  []models.SkillRequest `json:"skills_needed"`
}

func (s *Store) GetUserProfile(email string) (Profile, bool, error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil || !found {
		return Profile{}, found, err
	}

	var offers []models.SkillOffer
	if err := s.db.Where("user_id = ?", u.ID).Find(&offers).Error; err != nil {
		return Profile{}, false, err
	}
	var reqs []models.SkillRequest
	if err := s.db.Where("user_id = ?", u.ID).Find(&reqs).Error; err != nil {
		return Profile{}, false, err
	}

	return Profile{User: u, SkillsOffered: offers, SkillsNeeded: reqs}, true, nil
}
