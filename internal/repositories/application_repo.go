package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/experience-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrDuplicate signals a violation of the one-application-per-
// (campaign, influencer) constraint.
var ErrDuplicate = errors.New("duplicate application")

type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func (r *ApplicationRepo) Create(ctx context.Context, a *models.Application) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO applications (campaign_id, influencer_id, message, visit_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.InfluencerID, a.Message, a.VisitDate, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByCampaignAndInfluencer returns (nil, nil) when no application
// exists for the pair.
func (r *ApplicationRepo) GetByCampaignAndInfluencer(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Application, error) {
	var a models.Application
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, influencer_id, message, visit_date, status, created_at, updated_at
		FROM applications WHERE campaign_id = $1 AND influencer_id = $2
	`, campaignID, influencerID).Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Message,
		&a.VisitDate, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepo) CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE campaign_id = $1`, campaignID).Scan(&count)
	return count, err
}

type ApplicationFilter struct {
	InfluencerID uuid.UUID
	Status       *string
	Limit        int
	Offset       int
}

func (r *ApplicationRepo) ListByInfluencer(ctx context.Context, f ApplicationFilter) ([]models.ApplicationWithCampaign, error) {
	query := `
		SELECT a.id, a.campaign_id, a.influencer_id, a.message, a.visit_date, a.status, a.created_at, a.updated_at,
		       c.id, c.advertiser_id, c.title, c.recruitment_start_date, c.recruitment_end_date,
		       c.recruitment_count, c.benefits, c.store_info, c.mission, c.status, c.created_at, c.updated_at
		FROM applications a
		JOIN campaigns c ON c.id = a.campaign_id
		WHERE a.influencer_id = $1
	`
	args := []any{f.InfluencerID}
	if f.Status != nil {
		query += fmt.Sprintf(" AND a.status = $%d", len(args)+1)
		args = append(args, *f.Status)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY a.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithCampaign
	for rows.Next() {
		var a models.ApplicationWithCampaign
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Message, &a.VisitDate, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
			&a.Campaign.ID, &a.Campaign.AdvertiserID, &a.Campaign.Title,
			&a.Campaign.RecruitmentStartDate, &a.Campaign.RecruitmentEndDate,
			&a.Campaign.RecruitmentCount, &a.Campaign.Benefits, &a.Campaign.StoreInfo,
			&a.Campaign.Mission, &a.Campaign.Status, &a.Campaign.CreatedAt, &a.Campaign.UpdatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *ApplicationRepo) CountByInfluencer(ctx context.Context, f ApplicationFilter) (int, error) {
	query := `SELECT COUNT(*) FROM applications WHERE influencer_id = $1`
	args := []any{f.InfluencerID}
	if f.Status != nil {
		query += " AND status = $2"
		args = append(args, *f.Status)
	}

	var count int
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	return count, err
}

func (r *ApplicationRepo) ListByCampaignWithApplicant(ctx context.Context, campaignID uuid.UUID) ([]models.ApplicationWithApplicant, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.campaign_id, a.influencer_id, a.message, a.visit_date, a.status, a.created_at, a.updated_at,
		       u.name, u.email, u.phone,
		       i.user_id, i.birth_date, i.blog_name, i.blog_url, i.video_name, i.video_url,
		       i.photo_name, i.photo_url, i.micro_name, i.micro_url
		FROM applications a
		JOIN user_profiles u ON u.id = a.influencer_id
		LEFT JOIN influencer_profiles i ON i.user_id = a.influencer_id
		WHERE a.campaign_id = $1
		ORDER BY a.created_at DESC
	`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []models.ApplicationWithApplicant
	for rows.Next() {
		var a models.ApplicationWithApplicant
		var profileID *uuid.UUID
		var birthDate *string
		var p models.InfluencerProfile
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.InfluencerID, &a.Message, &a.VisitDate, &a.Status,
			&a.CreatedAt, &a.UpdatedAt,
			&a.ApplicantName, &a.ApplicantEmail, &a.ApplicantPhone,
			&profileID, &birthDate, &p.BlogName, &p.BlogURL, &p.VideoName, &p.VideoURL,
			&p.PhotoName, &p.PhotoURL, &p.MicroName, &p.MicroURL); err != nil {
			return nil, err
		}
		if profileID != nil {
			p.UserID = *profileID
			p.BirthDate = *birthDate
			a.InfluencerProfile = &p
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// SelectForCampaign marks the given applications of a campaign as
// selected and flips the campaign itself from closed to selected, both
// in one transaction. Only pending applications are touched, so
// re-running with already-selected ids matches zero rows and stays a
// no-op. Returns the number of applications actually updated.
func (r *ApplicationRepo) SelectForCampaign(ctx context.Context, campaignID uuid.UUID, applicationIDs []uuid.UUID) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
		UPDATE applications SET status = $1, updated_at = now()
		WHERE id = ANY($2) AND campaign_id = $3 AND status = $4
	`, models.ApplicationStatusSelected, applicationIDs, campaignID, models.ApplicationStatusPending)
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, models.CampaignStatusSelected, campaignID, models.CampaignStatusClosed); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
