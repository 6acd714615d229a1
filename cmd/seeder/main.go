// Command seeder populates the database with a small demo league: an admin,
// two coached teams with rosters, and an upcoming meet with open entries.
// It is intended for local development and demo environments, not production.
//
// Flags:
//
//	--admin-password  password for the seeded admin user (default "admin123")
//	--coach-password  password for the seeded coach users (default "coach123")
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/laneline/swimreg-backend/internal/adapter/postgres"
	athleterepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/athlete"
	coachrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/coach"
	meetrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/meet"
	meetteamrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/meetteam"
	teamrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/team"
	userrepo "github.com/laneline/swimreg-backend/internal/adapter/postgres/user"
	"github.com/laneline/swimreg-backend/internal/app"
	"github.com/laneline/swimreg-backend/internal/config"
	"github.com/laneline/swimreg-backend/internal/domain"
)

type demoTeam struct {
	name       string
	coachEmail string
	coachName  string
	athletes   []string
}

var demoTeams = []demoTeam{
	{
		name:       "Riverside Aquatics",
		coachEmail: "coach.riverside@example.com",
		coachName:  "Pat Morgan",
		athletes: []string{
			"Avery Collins", "Jordan Lee", "Sam Whitaker", "Casey Nguyen",
			"Riley Thompson", "Drew Castillo", "Morgan Blake", "Quinn Harper",
		},
	},
	{
		name:       "Lakeview Swim Club",
		coachEmail: "coach.lakeview@example.com",
		coachName:  "Alex Rivera",
		athletes: []string{
			"Taylor Brooks", "Jamie Fox", "Cameron Reed", "Skyler James",
			"Peyton Walsh", "Rowan Ellis", "Harper Quinn", "Emerson Cole",
		},
	},
}

func main() {
	adminPassword := flag.String("admin-password", "admin123", "password for the seeded admin user")
	coachPassword := flag.String("coach-password", "coach123", "password for the seeded coach users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	s := &seeder{
		users:     userrepo.New(pool),
		teams:     teamrepo.New(pool),
		meets:     meetrepo.New(pool),
		meetTeams: meetteamrepo.New(pool),
		coaches:   coachrepo.New(pool),
		athletes:  athleterepo.New(pool),
		tx:        postgres.NewTxManager(pool),
		cost:      cfg.Auth.BcryptCost,
		log:       logger,
	}

	if err := s.run(ctx, *adminPassword, *coachPassword); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed")
}

type seeder struct {
	users     *userrepo.Repo
	teams     *teamrepo.Repo
	meets     *meetrepo.Repo
	meetTeams *meetteamrepo.Repo
	coaches   *coachrepo.Repo
	athletes  *athleterepo.Repo
	tx        *postgres.TxManager
	cost      int
	log       *slog.Logger
}

func (s *seeder) run(ctx context.Context, adminPassword, coachPassword string) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.createUser(ctx, "admin@example.com", "admin", "League Admin", adminPassword, domain.UserRoleAdmin); err != nil {
			return err
		}

		meet, err := s.meets.Create(ctx, &domain.Meet{
			Name:        "Season Opener Invitational",
			StartDate:   datePtr(time.Now().AddDate(0, 1, 0)),
			EndDate:     datePtr(time.Now().AddDate(0, 1, 1)),
			EntriesOpen: true,
		})
		if err != nil {
			return fmt.Errorf("create meet: %w", err)
		}

		for i, dt := range demoTeams {
			team, err := s.teams.Create(ctx, dt.name)
			if err != nil {
				return fmt.Errorf("create team %q: %w", dt.name, err)
			}

			username := fmt.Sprintf("coach%d", i+1)
			coach, err := s.createUser(ctx, dt.coachEmail, username, dt.coachName, coachPassword, domain.UserRoleCoach)
			if err != nil {
				return err
			}
			if _, err := s.coaches.Create(ctx, team.ID, coach.ID); err != nil {
				return fmt.Errorf("assign coach to %q: %w", dt.name, err)
			}

			for _, fullName := range dt.athletes {
				first, last := splitName(fullName)
				classOf := 2027 + len(last)%4
				if _, err := s.athletes.Create(ctx, &domain.Athlete{
					TeamID:    team.ID,
					FirstName: first,
					LastName:  last,
					Active:    true,
					ClassOf:   &classOf,
				}); err != nil {
					return fmt.Errorf("create athlete %q: %w", fullName, err)
				}
			}

			if _, err := s.meetTeams.Create(ctx, meet.ID, team.ID); err != nil {
				return fmt.Errorf("register %q for meet: %w", dt.name, err)
			}

			s.log.Info("seeded team",
				slog.String("team", dt.name),
				slog.Int("athletes", len(dt.athletes)),
			)
		}
		return nil
	})
}

func (s *seeder) createUser(ctx context.Context, email, username, name, password string, role domain.UserRole) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", email, err)
	}
	user, err := s.users.Create(ctx, &domain.User{
		Email:        email,
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user %s: %w", email, err)
	}
	return user, nil
}

func splitName(full string) (string, string) {
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == ' ' {
			return full[:i], full[i+1:]
		}
	}
	return full, ""
}

func datePtr(t time.Time) *time.Time {
	d := t.Truncate(24 * time.Hour)
	return &d
}
