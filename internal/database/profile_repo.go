package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/forecast-bot/internal/domain"
	"github.com/diegoclair/forecast-bot/internal/domain/contract"
	"github.com/diegoclair/forecast-bot/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

const profileColumns = `
	profile_key, owner_key, state, name, location, timezone_id,
	scheduled_minute, last_delivered_at, created_at`

type profileRepo struct {
	db dbConn
}

func newProfileRepo(db dbConn) contract.ProfileRepo {
	return &profileRepo{db: db}
}

func (r *profileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	if profile.Key == "" {
		profile.Key = uuid.NewString()
	}
	if profile.State == "" {
		profile.State = domain.StateActive
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		profile.Key,
		profile.OwnerKey,
		profile.State,
		profile.Name,
		nullString(profile.Location),
		nullString(profile.TimezoneID),
		nullInt(profile.ScheduledMinute),
		nullTime(profile.LastDeliveredAt),
		profile.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create profile %q: %w", profile.Name, domain.ErrProfileExists)
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *profileRepo) Get(ctx context.Context, key string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE profile_key = ?`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

func (r *profileRepo) Update(ctx context.Context, key string, update entity.ProfileUpdate) error {
	if update.IsEmpty() {
		return nil
	}

	var (
		sets []string
		args []interface{}
	)

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.State != nil {
		sets = append(sets, "state = ?")
		args = append(args, *update.State)
	}
	if update.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, nullString(*update.Location))
	}
	if update.TimezoneID != nil {
		sets = append(sets, "timezone_id = ?")
		args = append(args, nullString(*update.TimezoneID))
	}
	if update.ScheduledMinute != nil {
		sets = append(sets, "scheduled_minute = ?")
		args = append(args, *update.ScheduledMinute)
	}
	if update.LastDeliveredAt != nil {
		sets = append(sets, "last_delivered_at = ?")
		args = append(args, update.LastDeliveredAt.UTC())
	}

	query := `UPDATE profiles SET ` + strings.Join(sets, ", ") + ` WHERE profile_key = ?`
	args = append(args, key)

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to update profile: %w", domain.ErrProfileExists)
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (r *profileRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE profile_key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	return nil
}

func (r *profileRepo) Fetch(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, error) {
	var (
		where []string
		args  []interface{}
	)

	if filter.OwnerKey != "" {
		where = append(where, "owner_key = ?")
		args = append(args, filter.OwnerKey)
	}
	if filter.State != "" {
		where = append(where, "state = ?")
		args = append(args, filter.State)
	}
	if filter.Name != "" {
		where = append(where, "name = ?")
		args = append(args, filter.Name)
	}
	if filter.ScheduledMinute != nil {
		where = append(where, "scheduled_minute = ?")
		args = append(args, *filter.ScheduledMinute)
	}

	query := `SELECT ` + profileColumns + ` FROM profiles`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at ASC, rowid ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row scanner) (*entity.Profile, error) {
	var (
		profile         entity.Profile
		location        sql.NullString
		timezoneID      sql.NullString
		scheduledMinute sql.NullInt64
		lastDeliveredAt sql.NullTime
	)

	err := row.Scan(
		&profile.Key,
		&profile.OwnerKey,
		&profile.State,
		&profile.Name,
		&location,
		&timezoneID,
		&scheduledMinute,
		&lastDeliveredAt,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.Location = location.String
	profile.TimezoneID = timezoneID.String
	if scheduledMinute.Valid {
		minute := int(scheduledMinute.Int64)
		profile.ScheduledMinute = &minute
	}
	if lastDeliveredAt.Valid {
		t := lastDeliveredAt.Time.UTC()
		profile.LastDeliveredAt = &t
	}
	profile.CreatedAt = profile.CreatedAt.UTC()

	return &profile, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
