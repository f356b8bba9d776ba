package postgres

import (
	"context"
	"time"

	"bizradar/internal/domain/entity"
	"bizradar/internal/domain/repository"
	"bizradar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// scanRepository implements the repository.ScanRepository interface.
type scanRepository struct {
	db *gorm.DB
}

// NewScanRepository is the constructor for scanRepository.
func NewScanRepository(db *gorm.DB) repository.ScanRepository {
	return &scanRepository{
		db: db,
	}
}

// Append persists one scan attempt.
func (repo *scanRepository) Append(ctx context.Context, record *entity.ScanRecord) error {
	recordM := fromScanDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		return errors.Wrap(err, "failed to append scan history")
	}

	record.ID = recordM.ID

	return nil
}

// List retrieves scan history entries, newest first.
func (repo *scanRepository) List(ctx context.Context, limit int) ([]*entity.ScanRecord, error) {
	var recordModels []*model.ScanRecordModel

	query := repo.db.WithContext(ctx).Order("timestamp DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list scan history")
	}

	records := make([]*entity.ScanRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toScanDomain(recordM))
	}

	return records, nil
}

func fromScanDomain(record *entity.ScanRecord) *model.ScanRecordModel {
	return &model.ScanRecordModel{
		ID:                record.ID,
		Timestamp:         record.Timestamp,
		BusinessesFound:   record.BusinessesFound,
		NewBusinesses:     record.NewBusinesses,
		UpdatedBusinesses: record.UpdatedBusinesses,
		DurationMillis:    record.Duration.Milliseconds(),
		Success:           record.Success,
		ErrorMessage:      record.ErrorMessage,
	}
}

func toScanDomain(recordM *model.ScanRecordModel) *entity.ScanRecord {
	return &entity.ScanRecord{
		ID:                recordM.ID,
		Timestamp:         recordM.Timestamp,
		BusinessesFound:   recordM.BusinessesFound,
		NewBusinesses:     recordM.NewBusinesses,
		UpdatedBusinesses: recordM.UpdatedBusinesses,
		Duration:          time.Duration(recordM.DurationMillis) * time.Millisecond,
		Success:           recordM.Success,
		ErrorMessage:      recordM.ErrorMessage,
	}
}
