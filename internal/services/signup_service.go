package services

import (
	"context"
	"time"

	"github.com/experience-marketplace/backend/internal/channelcheck"
	"github.com/experience-marketplace/backend/internal/identity"
	"github.com/experience-marketplace/backend/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChannelProber verifies an influencer's declared channel URL.
type ChannelProber interface {
	Probe(ctx context.Context, rawURL string) (*channelcheck.ChannelInfo, error)
}

type SignupService struct {
	provider identity.Provider
	users    UserStore
	audit    AuditStore
	prober   ChannelProber
	log      *zap.Logger
}

func NewSignupService(
	provider identity.Provider,
	users UserStore,
	audit AuditStore,
	prober ChannelProber,
	log *zap.Logger,
) *SignupService {
	return &SignupService{
		provider: provider,
		users:    users,
		audit:    audit,
		prober:   prober,
		log:      log,
	}
}

type SignupInput struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	TermsAgreed bool
}

// SignupAdvertiser creates the identity, the base profile and the
// advertiser profile, in that order. Identity-provider errors are
// logged with detail but surfaced to the client as a generic signup
// failure. A profile insert failing after identity creation leaves the
// identity orphaned; no compensating deletion is attempted.
func (s *SignupService) SignupAdvertiser(ctx context.Context, in SignupInput, profile models.AdvertiserProfile) (uuid.UUID, error) {
	userID, err := s.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		s.log.Error("advertiser signup rejected by identity provider", zap.Error(err), zap.String("email", in.Email))
		return uuid.Nil, models.NewSignupFailedError()
	}

	if err := s.createBaseProfile(ctx, userID, in, models.RoleAdvertiser); err != nil {
		return uuid.Nil, err
	}

	profile.UserID = userID
	if err := s.users.CreateAdvertiserProfile(ctx, &profile); err != nil {
		s.log.Error("failed to create advertiser profile", zap.Error(err), zap.String("user_id", userID.String()))
		return uuid.Nil, models.NewProfileCreateFailedError()
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "signup_advertiser",
		EntityType:  "user",
		EntityID:    &userID,
		Meta:        map[string]any{"business_name": profile.BusinessName},
	})

	return userID, nil
}

// SignupInfluencer mirrors SignupAdvertiser and additionally kicks off
// best-effort probes of any declared channel URLs. Probe results only
// reach the log and the audit trail; they never block or fail signup.
func (s *SignupService) SignupInfluencer(ctx context.Context, in SignupInput, profile models.InfluencerProfile) (uuid.UUID, error) {
	userID, err := s.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		s.log.Error("influencer signup rejected by identity provider", zap.Error(err), zap.String("email", in.Email))
		return uuid.Nil, models.NewSignupFailedError()
	}

	if err := s.createBaseProfile(ctx, userID, in, models.RoleInfluencer); err != nil {
		return uuid.Nil, err
	}

	profile.UserID = userID
	if err := s.users.CreateInfluencerProfile(ctx, &profile); err != nil {
		s.log.Error("failed to create influencer profile", zap.Error(err), zap.String("user_id", userID.String()))
		return uuid.Nil, models.NewProfileCreateFailedError()
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "signup_influencer",
		EntityType:  "user",
		EntityID:    &userID,
	})

	s.probeChannels(userID, profile)

	return userID, nil
}

func (s *SignupService) createBaseProfile(ctx context.Context, userID uuid.UUID, in SignupInput, role string) error {
	p := &models.UserProfile{
		ID:          userID,
		Name:        in.Name,
		Phone:       in.Phone,
		Email:       in.Email,
		Role:        role,
		TermsAgreed: in.TermsAgreed,
	}
	if err := s.users.CreateProfile(ctx, p); err != nil {
		s.log.Error("failed to create user profile", zap.Error(err), zap.String("user_id", userID.String()))
		return models.NewProfileCreateFailedError()
	}
	return nil
}

func (s *SignupService) probeChannels(userID uuid.UUID, profile models.InfluencerProfile) {
	if s.prober == nil {
		return
	}

	urls := map[string]*string{
		"blog":  profile.BlogURL,
		"video": profile.VideoURL,
		"photo": profile.PhotoURL,
		"micro": profile.MicroURL,
	}

	for kind, u := range urls {
		if u == nil || *u == "" {
			continue
		}
		kind, url := kind, *u
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			info, err := s.prober.Probe(ctx, url)
			if err != nil {
				s.log.Warn("channel probe failed",
					zap.String("user_id", userID.String()),
					zap.String("kind", kind),
					zap.String("url", url),
					zap.Error(err))
				return
			}

			s.log.Info("channel probe ok",
				zap.String("user_id", userID.String()),
				zap.String("kind", kind),
				zap.String("url", info.URL),
				zap.String("title", info.Title))

			_ = s.audit.Log(ctx, models.AuditLog{
				ActorType:  "system",
				Action:     "channel_probed",
				EntityType: "user",
				EntityID:   &userID,
				Meta:       map[string]any{"kind": kind, "url": info.URL, "title": info.Title},
			})
		}()
	}
}

// Authenticate verifies credentials and returns the user's profile.
func (s *SignupService) Authenticate(ctx context.Context, email, password string) (*models.UserProfile, error) {
	userID, err := s.provider.Authenticate(ctx, email, password)
	if err != nil {
		s.log.Debug("authentication failed", zap.String("email", email), zap.Error(err))
		return nil, models.NewLoginFailedError()
	}

	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, models.NewUserNotFoundError()
	}
	return profile, nil
}

// GetProfile returns the base profile plus the role-specific extension.
func (s *SignupService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.FullProfile, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, models.NewUserNotFoundError()
	}

	full := &models.FullProfile{UserProfile: *profile}
	switch profile.Role {
	case models.RoleAdvertiser:
		ap, err := s.users.GetAdvertiserProfile(ctx, userID)
		if err != nil {
			s.log.Warn("advertiser profile missing", zap.String("user_id", userID.String()), zap.Error(err))
		} else {
			full.AdvertiserProfile = ap
		}
	case models.RoleInfluencer:
		ip, err := s.users.GetInfluencerProfile(ctx, userID)
		if err != nil {
			s.log.Warn("influencer profile missing", zap.String("user_id", userID.String()), zap.Error(err))
		} else {
			full.InfluencerProfile = ip
		}
	}
	return full, nil
}
