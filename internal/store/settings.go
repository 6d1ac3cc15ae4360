package store

import (
	"context"
	"database/sql"
	"errors"

	"boundless-api/internal/models"
)

// GetSettings retrieves all settings
func (s *Store) GetSettings(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := s.db.SelectContext(ctx, &settings, "SELECT * FROM settings ORDER BY id ASC")
	return settings, err
}

// GetSettingByID retrieves a setting by ID
func (s *Store) GetSettingByID(ctx context.Context, id int64) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.GetContext(ctx, &setting, "SELECT * FROM settings WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// CreateSetting creates a new setting
func (s *Store) CreateSetting(ctx context.Context, setting *models.Setting) error {
	query := `
		INSERT INTO settings (setting_key, setting_value, setting_type, description)
		VALUES ($1, $2, $3, $4)
		RETURNING *`

	return s.db.GetContext(ctx, setting, query,
		setting.SettingKey, setting.SettingValue, setting.SettingType, setting.Description)
}

// UpdateSetting updates a setting
func (s *Store) UpdateSetting(ctx context.Context, setting *models.Setting) error {
	query := `
		UPDATE settings SET
		setting_key = $1, setting_value = $2, setting_type = $3, description = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING *`

	err := s.db.GetContext(ctx, setting, query,
		setting.SettingKey, setting.SettingValue, setting.SettingType,
		setting.Description, setting.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteSetting deletes a setting and returns the deleted row
func (s *Store) DeleteSetting(ctx context.Context, id int64) (*models.Setting, error) {
	var setting models.Setting
	err := s.db.GetContext(ctx, &setting, "DELETE FROM settings WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// GetAnalytics retrieves all analytics records, newest first
func (s *Store) GetAnalytics(ctx context.Context) ([]models.AnalyticsRecord, error) {
	var records []models.AnalyticsRecord
	err := s.db.SelectContext(ctx, &records, "SELECT * FROM analytics ORDER BY date DESC")
	return records, err
}

// GetAnalyticsRecordByID retrieves an analytics record by ID
func (s *Store) GetAnalyticsRecordByID(ctx context.Context, id int64) (*models.AnalyticsRecord, error) {
	var record models.AnalyticsRecord
	err := s.db.GetContext(ctx, &record, "SELECT * FROM analytics WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateAnalyticsRecord creates a new analytics record
func (s *Store) CreateAnalyticsRecord(ctx context.Context, record *models.AnalyticsRecord) error {
	query := `
		INSERT INTO analytics (page_name, visitor_count, date)
		VALUES ($1, $2, $3)
		RETURNING *`

	return s.db.GetContext(ctx, record, query,
		record.PageName, record.VisitorCount, record.Date)
}

// UpdateAnalyticsRecord updates an analytics record
func (s *Store) UpdateAnalyticsRecord(ctx context.Context, record *models.AnalyticsRecord) error {
	query := `
		UPDATE analytics SET page_name = $1, visitor_count = $2, date = $3
		WHERE id = $4
		RETURNING *`

	err := s.db.GetContext(ctx, record, query,
		record.PageName, record.VisitorCount, record.Date, record.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ErrNotFound
	}
	return err
}

// DeleteAnalyticsRecord deletes an analytics record and returns the deleted row
func (s *Store) DeleteAnalyticsRecord(ctx context.Context, id int64) (*models.AnalyticsRecord, error) {
	var record models.AnalyticsRecord
	err := s.db.GetContext(ctx, &record, "DELETE FROM analytics WHERE id = $1 RETURNING *", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// IncrementDailyCount bumps the per-day counter for a page or event name,
// creating the row on first sight. Used by the analytics worker.
func (s *Store) IncrementDailyCount(ctx context.Context, pageName string, date models.Date) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analytics (page_name, visitor_count, date)
		VALUES ($1, 1, $2)
		ON CONFLICT (page_name, date)
		DO UPDATE SET visitor_count = analytics.visitor_count + 1`,
		pageName, date)
	return err
}
