package store

import (
	"fmt"

	"skillswap-be/internal/models"
)

const (
	MatchYouCanTeach = "you_can_teach"
	MatchYouCanLearn = "you_can_learn"
)

type MatchedUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Match pairs one of the user's offers or requests with a complementary
// row from another user.
type Match struct {
	MatchType    string      `json:"match_type"`
	YourSkill    string      `json:"your_skill,omitempty"`
	SkillYouNeed string      `json:"skill_you_need,omitempty"`
	TheirLevel   string      `json:"their_skill_level"`
	MatchedUser  MatchedUser `json:"matched_user"`
	TheirRequest string      `json:"their_request,omitempty"`
	TheirOffer   string      `json:"their_offer,omitempty"`
}

// FindMatches runs the two matching passes for one user: requests from
// other users for every skill they offer, and offers from other users for
// every skill they need. Skill names compare by exact case-sensitive
// equality. Results are unordered, unscored and undeduplicated.
func (s *Store) FindMatches(email string) ([]Match, bool, error) {
	u, found, err := s.GetUserByEmail(email)
	if err != nil || !found {
		return nil, found, err
	}

	var offers []models.SkillOffer
	if err := s.db.Where("user_id = ?", u.ID).Find(&offers).Error; err != nil {
		return nil, false, err
	}
	var needs []models.SkillRequest
	if err := s.db.Where("user_id = ?", u.ID).Find(&needs).Error; err != nil {
		return nil, false, err
	}

	matches := []Match{}

	for _, offer := range offers {
		var reqs []models.SkillRequest
		if err := s.db.Where("skill_name = ? AND user_id <> ?", offer.SkillName, u.ID).Find(&reqs).Error; err != nil {
			return nil, false, err
		}
		for _, req := range reqs {
			requester, ok, err := s.GetUserByID(req.UserID)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			matches = append(matches, Match{
				MatchType:    MatchYouCanTeach,
				YourSkill:    offer.SkillName,
				TheirLevel:   offer.SkillLevel,
				MatchedUser:  MatchedUser{Email: requester.Email, Name: requester.Name},
				TheirRequest: req.Description,
			})
		}
	}

	for _, need := range needs {
		var foreign []models.SkillOffer
		if err := s.db.Where("skill_name = ? AND user_id <> ?", need.SkillName, u.ID).Find(&foreign).Error; err != nil {
			return nil, false, err
		}
		for _, offer := range foreign {
			offerer, ok, err := s.GetUserByID(offer.UserID)
			if err != nil {
				return nil, false, err
			}
			if !ok {
				continue
			}
			matches = append(matches, Match{
				MatchType:    MatchYouCanLearn,
				SkillYouNeed: need.SkillName,
				TheirLevel:   offer.SkillLevel,
				MatchedUser:  MatchedUser{Email: offerer.Email, Name: offerer.Name},
				TheirOffer:   fmt.Sprintf("Can teach %s at %s level", offer.SkillName, offer.SkillLevel),
			})
		}
	}

	return matches, true, nil
}
