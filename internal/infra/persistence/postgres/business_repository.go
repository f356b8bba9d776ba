// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"math"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kmPerDegreeLat approximates one degree of latitude as 111 km. The
// longitude delta divides by |lat| rather than cos(lat); the resulting
// window degrades near the equator and poles, which is acceptable for
// localized urban monitoring.
const kmPerDegreeLat = 111.0

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// FindByID retrieves a business by its source-assigned identifier.
func (repo *businessRepository) FindByID(ctx context.Context, id string) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// Save upserts a business keyed by its identifier.
func (repo *businessRepository) Save(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(businessM).Error; err != nil {
		return errors.Wrap(err, "failed to save business")
	}

	return nil
}

// List retrieves stored businesses, most recently updated first.
func (repo *businessRepository) List(ctx context.Context, competitorOnly bool) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	query := repo.db.WithContext(ctx).Order("last_updated DESC")
	if competitorOnly {
		query = query.Where("is_competitor = ?", true)
	}

	if err := query.Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

// ListInBoundingBox retrieves businesses inside a flat lat/lon window around
// the given point.
func (repo *businessRepository) ListInBoundingBox(ctx context.Context, lat, lon, radiusKm float64) ([]*entity.Business, error) {
	latDelta := radiusKm / kmPerDegreeLat

	absLat := math.Abs(lat)
	if absLat < 1e-6 {
		absLat = 1e-6
	}
	lonDelta := radiusKm / (kmPerDegreeLat * absLat)

	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lon-lonDelta, lon+lonDelta).
		Order("last_updated DESC").
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list businesses in bounding box")
	}

	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		businesses = append(businesses, toBusinessDomain(businessM))
	}

	return businesses, nil
}

func fromBusinessDomain(business *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:           business.ID,
		Name:         business.Name,
		Categories:   business.Categories,
		Latitude:     business.Location.Latitude,
		Longitude:    business.Location.Longitude,
		Address:      business.Location.Address,
		City:         business.Location.City,
		State:        business.Location.State,
		PostalCode:   business.Location.PostalCode,
		Country:      business.Location.Country,
		Rating:       business.Rating,
		Popularity:   business.Popularity,
		Verified:     business.Verified,
		Website:      business.Website,
		Phone:        business.Phone,
		IsCompetitor: business.IsCompetitor,
		FirstSeen:    business.FirstSeen,
		LastUpdated:  business.LastUpdated,
		Notes:        business.Notes,
	}
}

func toBusinessDomain(businessM *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:         businessM.ID,
		Name:       businessM.Name,
		Categories: businessM.Categories,
		Location: entity.Location{
			Latitude:   businessM.Latitude,
			Longitude:  businessM.Longitude,
			Address:    businessM.Address,
			City:       businessM.City,
			State:      businessM.State,
			PostalCode: businessM.PostalCode,
			Country:    businessM.Country,
		},
		Rating:       businessM.Rating,
		Popularity:   businessM.Popularity,
		Verified:     businessM.Verified,
		Website:      businessM.Website,
		Phone:        businessM.Phone,
		IsCompetitor: businessM.IsCompetitor,
		FirstSeen:    businessM.FirstSeen,
		LastUpdated:  businessM.LastUpdated,
		Notes:        businessM.Notes,
	}
}
