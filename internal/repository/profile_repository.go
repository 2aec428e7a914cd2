package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"devconnect/internal/database"
	"devconnect/internal/domain/profile"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const profileColumns = `
	p.id, p.user_id, p.company, p.location, p.website, p.bio, p.status,
	p.github_username, p.skills, p.social, p.created_at, p.updated_at,
	u.name, u.avatar`

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.user_id = $1`,
		userID,
	)
	p, err := scanProfile(row)
	if err != nil {
		return profile.Profile{}, err
	}

	if err := r.attachSubEntities(ctx, []*profile.Profile{&p}); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+`
		 FROM profiles p
		 JOIN users u ON u.id = p.user_id
		 ORDER BY p.created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]profile.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*profile.Profile, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := r.attachSubEntities(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert relies on the unique user_id constraint: the statement only lists
// the supplied columns, so an existing profile keeps the values of every
// omitted field. This is the atomic form of create-or-update; there is no
// separate find step to race against.
func (r *PostgresProfileRepository) Upsert(ctx context.Context, userID uuid.UUID, in profile.UpsertInput) (profile.Profile, error) {
	cols := []string{"id", "user_id", "status", "skills"}
	args := []any{uuid.New(), userID, in.Status, in.Skills}

	addCol := func(name string, v any) {
		cols = append(cols, name)
		args = append(args, v)
	}
	if in.Company != nil {
		addCol("company", *in.Company)
	}
	if in.Location != nil {
		addCol("location", *in.Location)
	}
	if in.Website != nil {
		addCol("website", *in.Website)
	}
	if in.Bio != nil {
		addCol("bio", *in.Bio)
	}
	if in.GithubUsername != nil {
		addCol("github_username", *in.GithubUsername)
	}
	if in.Social != nil {
		b, err := json.Marshal(in.Social)
		if err != nil {
			return profile.Profile{}, err
		}
		addCol("social", string(b))
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	// id and user_id are never overwritten on conflict.
	sets := make([]string, 0, len(cols))
	for _, c := range cols[2:] {
		sets = append(sets, c+" = EXCLUDED."+c)
	}
	sets = append(sets, "updated_at = now()")

	query := fmt.Sprintf(
		`INSERT INTO profiles (%s) VALUES (%s)
		 ON CONFLICT (user_id) DO UPDATE SET %s`,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(sets, ", "),
	)
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return profile.Profile{}, err
	}

	return r.GetByUserID(ctx, userID)
}

func (r *PostgresProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, userID)
	return err
}

func (r *PostgresProfileRepository) AddExperience(ctx context.Context, profileID uuid.UUID, in profile.ExperienceInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// New entries go to the front of the sequence.
	if _, err := tx.Exec(ctx,
		`UPDATE profile_experience SET position = position + 1 WHERE profile_id = $1`,
		profileID,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO profile_experience
			(id, profile_id, position, title, company, location, from_date, to_date, current, description)
		 VALUES ($1, $2, 0, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.New(), profileID, in.Title, in.Company, in.Location, in.From, in.To, in.Current, in.Description,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) RemoveExperience(ctx context.Context, profileID, experienceID uuid.UUID) error {
	// Zero rows affected means the id was not present; the rest of the
	// sequence is untouched either way.
	_, err := r.db.Exec(ctx,
		`DELETE FROM profile_experience WHERE id = $1 AND profile_id = $2`,
		experienceID, profileID,
	)
	return err
}

func (r *PostgresProfileRepository) AddEducation(ctx context.Context, profileID uuid.UUID, in profile.EducationInput) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx,
		`UPDATE profile_education SET position = position + 1 WHERE profile_id = $1`,
		profileID,
	); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO profile_education
			(id, profile_id, position, school, degree, field_of_study, from_date, to_date, current, description)
		 VALUES ($1, $2, 0, $3, $4, $5, $6, $7, $8, $9)`,
		uuid.New(), profileID, in.School, in.Degree, in.FieldOfStudy, in.From, in.To, in.Current, in.Description,
	); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresProfileRepository) RemoveEducation(ctx context.Context, profileID, educationID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM profile_education WHERE id = $1 AND profile_id = $2`,
		educationID, profileID,
	)
	return err
}

func (r *PostgresProfileRepository) attachSubEntities(ctx context.Context, profiles []*profile.Profile) error {
	if len(profiles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
	}

	exp, err := r.experienceByProfileIDs(ctx, ids)
	if err != nil {
		return err
	}
	edu, err := r.educationByProfileIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, p := range profiles {
		p.Experience = exp[p.ID]
		if p.Experience == nil {
			p.Experience = []profile.Experience{}
		}
		p.Education = edu[p.ID]
		if p.Education == nil {
			p.Education = []profile.Education{}
		}
	}
	return nil
}

func (r *PostgresProfileRepository) experienceByProfileIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]profile.Experience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT profile_id, id, title, company, location, from_date, to_date, current, description
		 FROM profile_experience
		 WHERE profile_id = ANY($1)
		 ORDER BY profile_id, position ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID][]profile.Experience{}
	for rows.Next() {
		var pid uuid.UUID
		var e profile.Experience
		if err := rows.Scan(&pid, &e.ID, &e.Title, &e.Company, &e.Location, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], e)
	}
	return out, rows.Err()
}

func (r *PostgresProfileRepository) educationByProfileIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]profile.Education, error) {
	rows, err := r.db.Query(ctx,
		`SELECT profile_id, id, school, degree, field_of_study, from_date, to_date, current, description
		 FROM profile_education
		 WHERE profile_id = ANY($1)
		 ORDER BY profile_id, position ASC`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID][]profile.Education{}
	for rows.Next() {
		var pid uuid.UUID
		var e profile.Education
		if err := rows.Scan(&pid, &e.ID, &e.School, &e.Degree, &e.FieldOfStudy, &e.From, &e.To, &e.Current, &e.Description); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], e)
	}
	return out, rows.Err()
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var p profile.Profile
	var social []byte
	err := row.Scan(
		&p.ID, &p.UserID, &p.Company, &p.Location, &p.Website, &p.Bio, &p.Status,
		&p.GithubUsername, &p.Skills, &social, &p.CreatedAt, &p.UpdatedAt,
		&p.UserName, &p.UserAvatar,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	if len(social) > 0 {
		if err := json.Unmarshal(social, &p.Social); err != nil {
			return profile.Profile{}, err
		}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}

var _ profile.Repository = (*PostgresProfileRepository)(nil)
