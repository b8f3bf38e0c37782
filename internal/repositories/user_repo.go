package repositories

import (
	"context"

	"github.com/experience-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) CreateProfile(ctx context.Context, p *models.UserProfile) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO user_profiles (id, name, phone, email, role, terms_agreed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Phone, p.Email, p.Role, p.TermsAgreed,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *UserRepo) CreateAdvertiserProfile(ctx context.Context, p *models.AdvertiserProfile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO advertiser_profiles (user_id, business_name, location, category, business_registration_number)
		VALUES ($1, $2, $3, $4, $5)
	`, p.UserID, p.BusinessName, p.Location, p.Category, p.BusinessRegistrationNumber)
	return err
}

func (r *UserRepo) CreateInfluencerProfile(ctx context.Context, p *models.InfluencerProfile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO influencer_profiles (user_id, birth_date, blog_name, blog_url, video_name, video_url,
		       photo_name, photo_url, micro_name, micro_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, p.UserID, p.BirthDate, p.BlogName, p.BlogURL, p.VideoName, p.VideoURL,
		p.PhotoName, p.PhotoURL, p.MicroName, p.MicroURL)
	return err
}

func (r *UserRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	var p models.UserProfile
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, phone, email, role, terms_agreed, created_at, updated_at
		FROM user_profiles WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Role, &p.TermsAgreed, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepo) GetAdvertiserProfile(ctx context.Context, userID uuid.UUID) (*models.AdvertiserProfile, error) {
	var p models.AdvertiserProfile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, business_name, location, category, business_registration_number
		FROM advertiser_profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.BusinessName, &p.Location, &p.Category, &p.BusinessRegistrationNumber)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepo) GetInfluencerProfile(ctx context.Context, userID uuid.UUID) (*models.InfluencerProfile, error) {
	var p models.InfluencerProfile
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, birth_date, blog_name, blog_url, video_name, video_url,
		       photo_name, photo_url, micro_name, micro_url
		FROM influencer_profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.BirthDate, &p.BlogName, &p.BlogURL, &p.VideoName, &p.VideoURL,
		&p.PhotoName, &p.PhotoURL, &p.MicroName, &p.MicroURL)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
