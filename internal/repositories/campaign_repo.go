package repositories

import (
	"context"
	"fmt"

	"github.com/experience-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (advertiser_id, title, recruitment_start_date, recruitment_end_date,
		       recruitment_count, benefits, store_info, mission, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, c.AdvertiserID, c.Title, c.RecruitmentStartDate, c.RecruitmentEndDate,
		c.RecruitmentCount, c.Benefits, c.StoreInfo, c.Mission, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := r.pool.QueryRow(ctx, `
		SELECT id, advertiser_id, title, recruitment_start_date, recruitment_end_date,
		       recruitment_count, benefits, store_info, mission, status, created_at, updated_at
		FROM campaigns WHERE id = $1
	`, id).Scan(&c.ID, &c.AdvertiserID, &c.Title, &c.RecruitmentStartDate, &c.RecruitmentEndDate,
		&c.RecruitmentCount, &c.Benefits, &c.StoreInfo, &c.Mission, &c.Status,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) GetByIDWithAdvertiser(ctx context.Context, id uuid.UUID) (*models.CampaignWithAdvertiser, error) {
	var c models.CampaignWithAdvertiser
	err := r.pool.QueryRow(ctx, `
		SELECT c.id, c.advertiser_id, c.title, c.recruitment_start_date, c.recruitment_end_date,
		       c.recruitment_count, c.benefits, c.store_info, c.mission, c.status, c.created_at, c.updated_at,
		       u.name, a.business_name, a.location
		FROM campaigns c
		JOIN user_profiles u ON u.id = c.advertiser_id
		LEFT JOIN advertiser_profiles a ON a.user_id = c.advertiser_id
		WHERE c.id = $1
	`, id).Scan(&c.ID, &c.AdvertiserID, &c.Title, &c.RecruitmentStartDate, &c.RecruitmentEndDate,
		&c.RecruitmentCount, &c.Benefits, &c.StoreInfo, &c.Mission, &c.Status,
		&c.CreatedAt, &c.UpdatedAt, &c.AdvertiserName, &c.BusinessName, &c.Location)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type CampaignFilter struct {
	AdvertiserID *uuid.UUID
	Status       *string
	Limit        int
	Offset       int
}

func (f CampaignFilter) whereClause() (string, []any) {
	args := []any{}
	argIdx := 1
	clause := ""

	if f.AdvertiserID != nil {
		clause += fmt.Sprintf(" WHERE c.advertiser_id = $%d", argIdx)
		args = append(args, *f.AdvertiserID)
		argIdx++
	}
	if f.Status != nil {
		if clause == "" {
			clause += fmt.Sprintf(" WHERE c.status = $%d", argIdx)
		} else {
			clause += fmt.Sprintf(" AND c.status = $%d", argIdx)
		}
		args = append(args, *f.Status)
	}
	return clause, args
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.CampaignWithAdvertiser, error) {
	query := `
		SELECT c.id, c.advertiser_id, c.title, c.recruitment_start_date, c.recruitment_end_date,
		       c.recruitment_count, c.benefits, c.store_info, c.mission, c.status, c.created_at, c.updated_at,
		       u.name, a.business_name, a.location
		FROM campaigns c
		JOIN user_profiles u ON u.id = c.advertiser_id
		LEFT JOIN advertiser_profiles a ON a.user_id = c.advertiser_id
	`
	clause, args := f.whereClause()
	query += clause

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.CampaignWithAdvertiser
	for rows.Next() {
		var c models.CampaignWithAdvertiser
		if err := rows.Scan(&c.ID, &c.AdvertiserID, &c.Title, &c.RecruitmentStartDate, &c.RecruitmentEndDate,
			&c.RecruitmentCount, &c.Benefits, &c.StoreInfo, &c.Mission, &c.Status,
			&c.CreatedAt, &c.UpdatedAt, &c.AdvertiserName, &c.BusinessName, &c.Location); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, rows.Err()
}

func (r *CampaignRepo) Count(ctx context.Context, f CampaignFilter) (int, error) {
	query := `SELECT COUNT(*) FROM campaigns c`
	clause, args := f.whereClause()
	query += clause

	var count int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

// UpdateStatusOwned writes the status only when the campaign belongs to
// advertiserID; the ownership check is part of the update predicate, so
// a non-owner's call matches zero rows.
func (r *CampaignRepo) UpdateStatusOwned(ctx context.Context, id, advertiserID uuid.UUID, status string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now()
		WHERE id = $2 AND advertiser_id = $3
	`, status, id, advertiserID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
