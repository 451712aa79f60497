package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Varun6712/smart-calories/models"
	"github.com/Varun6712/smart-calories/utils"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ProfileInput is the biometric submission. Zero values for the required
// fields count as missing; no range checks are applied.
type ProfileInput struct {
	Name          string  `json:"name" validate:"required"`
	Age           int     `json:"age" validate:"required"`
	Gender        string  `json:"gender"`
	Height        float64 `json:"height" validate:"required"`
	Weight        float64 `json:"weight" validate:"required"`
	ActivityLevel string  `json:"activity_level"`
	GoalType      string  `json:"goal_type"`
}

// ProfileReader is the read side used by the estimator for prompt context.
type ProfileReader interface {
	Current() (*models.UserProfile, error)
}

// ProfileService owns the single stored profile.
type ProfileService struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db, validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Current returns the stored profile, or nil when none has been saved.
func (s *ProfileService) Current() (*models.UserProfile, error) {
	var p models.UserProfile
	err := s.db.Order("id").Limit(1).Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return &p, nil
}

func (s *ProfileService) Validate(in ProfileInput) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return missing(fields...)
}

// Save validates the input, recomputes the caloric goal and upserts the
// single profile row. Concurrent saves are last-write-wins.
func (s *ProfileService) Save(in ProfileInput) (*models.UserProfile, error) {
	if err := s.Validate(in); err != nil {
		return nil, err
	}

	existing, err := s.Current()
	if err != nil {
		return nil, err
	}
	p := models.UserProfile{}
	if existing != nil {
		p = *existing
	}
	p.Name = in.Name
	p.Age = in.Age
	p.Gender = in.Gender
	p.Height = in.Height
	p.Weight = in.Weight
	p.ActivityLevel = in.ActivityLevel
	p.GoalType = in.GoalType
	p.CaloricGoal = utils.ComputeGoal(goalInputs(&p)).CaloricGoal

	if existing == nil {
		err = s.db.Create(&p).Error
	} else {
		err = s.db.Save(&p).Error
	}
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return &p, nil
}

// ProfileSummary is the goal breakdown plus BMI for the stored profile.
type ProfileSummary struct {
	utils.GoalBreakdown
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmi_category"`
}

func (s *ProfileService) Summary() (*ProfileSummary, error) {
	p, err := s.Current()
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	out := &ProfileSummary{GoalBreakdown: utils.ComputeGoal(goalInputs(p))}
	// BMI is left empty for non-positive measurements
	if bmi, err := utils.CalculateBMI(p.Height, p.Weight); err == nil {
		out.BMI = bmi
		out.BMICategory = utils.BMICategory(bmi)
	}
	return out, nil
}

func goalInputs(p *models.UserProfile) utils.GoalInputs {
	return utils.GoalInputs{
		Age:           p.Age,
		Gender:        p.Gender,
		Height:        p.Height,
		Weight:        p.Weight,
		ActivityLevel: p.ActivityLevel,
		GoalType:      p.GoalType,
	}
}
