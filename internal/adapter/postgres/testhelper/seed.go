package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laneline/swimreg-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a coach-role user with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "coach-" + suffix + "@example.com",
		Username:     "coach-" + suffix,
		Name:         "Coach " + suffix,
		PasswordHash: "$2a$10$test-hash-" + suffix,
		Role:         domain.UserRoleCoach,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Username, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedAdmin creates an admin-role user.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	user := SeedUser(t, pool)
	_, err := pool.Exec(context.Background(),
		`UPDATE users SET role = 'admin' WHERE id = $1`, user.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin promote user: %v", err)
	}
	user.Role = domain.UserRoleAdmin
	return user
}

// SeedTeam creates a team with a unique name.
func SeedTeam(t *testing.T, pool *pgxpool.Pool) domain.Team {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	team := domain.Team{
		ID:        uuid.New(),
		Name:      "Team " + suffix,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO teams (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		team.ID, team.Name, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTeam insert team: %v", err)
	}

	return team
}

// SeedAthlete creates an active athlete on the given team.
func SeedAthlete(t *testing.T, pool *pgxpool.Pool, teamID uuid.UUID) domain.Athlete {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	classOf := 2027
	athlete := domain.Athlete{
		ID:        uuid.New(),
		TeamID:    teamID,
		FirstName: "First" + suffix,
		LastName:  "Last" + suffix,
		Active:    true,
		ClassOf:   &classOf,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO athletes (id, team_id, first_name, last_name, active, class_of, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		athlete.ID, athlete.TeamID, athlete.FirstName, athlete.LastName,
		athlete.Active, athlete.ClassOf, athlete.CreatedAt, athlete.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAthlete insert athlete: %v", err)
	}

	return athlete
}

// SeedMeet creates a meet with entries open.
func SeedMeet(t *testing.T, pool *pgxpool.Pool) domain.Meet {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	start := now.AddDate(0, 1, 0)
	end := start.AddDate(0, 0, 1)
	meet := domain.Meet{
		ID:          uuid.New(),
		Name:        "Meet " + suffix,
		StartDate:   &start,
		EndDate:     &end,
		EntriesOpen: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO meets (id, name, start_date, end_date, entries_open, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		meet.ID, meet.Name, meet.StartDate, meet.EndDate, meet.EntriesOpen, meet.CreatedAt, meet.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeet insert meet: %v", err)
	}

	return meet
}

// SeedCoach assigns the user as a coach of the team.
func SeedCoach(t *testing.T, pool *pgxpool.Pool, teamID, userID uuid.UUID) domain.Coach {
	t.Helper()

	coach := domain.Coach{
		ID:        uuid.New(),
		TeamID:    teamID,
		UserID:    userID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO coaches (id, team_id, user_id, created_at) VALUES ($1, $2, $3, $4)`,
		coach.ID, coach.TeamID, coach.UserID, coach.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCoach insert coach: %v", err)
	}

	return coach
}

// SeedMeetTeam registers the team for the meet.
func SeedMeetTeam(t *testing.T, pool *pgxpool.Pool, meetID, teamID uuid.UUID) domain.MeetTeam {
	t.Helper()

	mt := domain.MeetTeam{
		ID:        uuid.New(),
		MeetID:    meetID,
		TeamID:    teamID,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO meet_teams (id, meet_id, team_id, created_at) VALUES ($1, $2, $3, $4)`,
		mt.ID, mt.MeetID, mt.TeamID, mt.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeetTeam insert meet_team: %v", err)
	}

	return mt
}
