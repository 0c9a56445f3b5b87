package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

const profileColumns = `id, user_id, name, performance_type, description, bio, website, social_media, stage_plan, tech_rider, photos, videos, audios, online_press, created_at, updated_at`

type ProfileRepository struct {
	db *sqlx.DB
}

func NewProfileRepo(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, userID int64, input ports.ProfileCreate) (int64, error) {
	const query = `
        INSERT INTO profile (user_id, name, performance_type, description, bio, website, social_media, stage_plan, tech_rider, photos, videos, audios, online_press)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		userID,
		input.Name,
		input.PerformanceType,
		input.Description,
		input.Bio,
		input.Website,
		pq.StringArray(input.SocialMedia),
		input.StagePlan,
		input.TechRider,
		pq.StringArray(input.Photos),
		pq.StringArray(input.Videos),
		pq.StringArray(input.Audios),
		input.OnlinePress,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profile WHERE id = $1`
	var profile domain.Profile
	if err := r.db.GetContext(ctx, &profile, query, id); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profile WHERE user_id = $1 ORDER BY id`
	var profiles []domain.Profile
	if err := r.db.SelectContext(ctx, &profiles, query, userID); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *ProfileRepository) Update(ctx context.Context, id int64, input ports.ProfileUpdate) (*domain.Profile, error) {
	const query = `
        UPDATE profile
        SET name = COALESCE($2, name),
            performance_type = COALESCE($3, performance_type),
            description = COALESCE($4, description),
            bio = COALESCE($5, bio),
            website = COALESCE($6, website),
            social_media = COALESCE($7, social_media),
            stage_plan = COALESCE($8, stage_plan),
            tech_rider = COALESCE($9, tech_rider),
            photos = COALESCE($10, photos),
            videos = COALESCE($11, videos),
            audios = COALESCE($12, audios),
            online_press = COALESCE($13, online_press),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + profileColumns + `
    `
	row := r.db.QueryRowxContext(ctx, query, id,
		input.Name,
		input.PerformanceType,
		input.Description,
		input.Bio,
		input.Website,
		nullableArray(input.SocialMedia),
		input.StagePlan,
		input.TechRider,
		nullableArray(input.Photos),
		nullableArray(input.Videos),
		nullableArray(input.Audios),
		input.OnlinePress,
	)
	var profile domain.Profile
	if err := row.StructScan(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM profile WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

// nullableArray maps an absent slice to SQL NULL so COALESCE keeps the
// stored value, while an empty slice still clears the column.
func nullableArray(values []string) interface{} {
	if values == nil {
		return nil
	}
	return pq.StringArray(values)
}
