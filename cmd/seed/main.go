// Package main provides a CLI tool for seeding the database with demo data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"milldesk/internal/core/id"
	"milldesk/internal/domain/auth"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/internal/domain/worklog"
	"milldesk/internal/infrastructure/storage/postgres"
	"milldesk/internal/infrastructure/storage/postgres/auth_repo"
	"milldesk/internal/infrastructure/storage/postgres/catalog_repo"
	"milldesk/internal/infrastructure/storage/postgres/worklog_repo"
	"milldesk/pkg/logger"
	"milldesk/pkg/numerator"
)

type qualitySeed struct {
	name           string
	payableRate    string
	receivableRate string
}

type companySeed struct {
	name      string
	qualities []qualitySeed
}

var companiesSeed = []companySeed{
	{
		name: "Apex Textiles Pvt Ltd",
		qualities: []qualitySeed{
			{"Cotton 40s Plain", "110.00", "125.00"},
			{"Cotton 60s Twill", "128.50", "144.00"},
			{"PolyCotton 65/35", "102.75", "118.00"},
		},
	},
	{
		name: "BlueLoom Fabrics",
		qualities: []qualitySeed{
			{"Rayon 30D", "96.00", "112.00"},
			{"Viscose Plain 44", "104.25", "119.50"},
			{"Satin 4H", "135.00", "152.00"},
		},
	},
	{
		name: "Summit Weaves",
		qualities: []qualitySeed{
			{"Denim 10 oz", "148.00", "168.00"},
			{"Denim 12 oz", "162.00", "184.00"},
			{"Chambray 40s", "118.00", "134.00"},
		},
	},
	{
		name: "Emerald Mills",
		qualities: []qualitySeed{
			{"Linen Blend 55/45", "170.00", "192.00"},
			{"Poplin 60x60", "125.00", "142.00"},
			{"Percale 200TC", "155.00", "175.00"},
		},
	},
	{
		name: "Orion Knitworks",
		qualities: []qualitySeed{
			{"Single Jersey 160 GSM", "92.00", "108.00"},
			{"Interlock 220 GSM", "128.00", "146.00"},
			{"Pique 200 GSM", "120.00", "138.00"},
		},
	},
	{
		name: "SilverThread Exports",
		qualities: []qualitySeed{
			{"Twill 2/1 100% Cotton", "130.00", "148.00"},
			{"Sateen 5H", "140.00", "160.00"},
			{"Oxford 40x2", "134.00", "152.00"},
		},
	},
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	txManager := postgres.NewTxManager(pool)
	userRepo := auth_repo.NewUserRepo(txManager)
	companyRepo := catalog_repo.NewCompanyRepo(txManager)
	qualityRepo := catalog_repo.NewQualityRepo(txManager)
	worklogRepo := worklog_repo.NewRepo(txManager)

	qualityService := quality.NewService(qualityRepo)
	companyService := company.NewService(companyRepo, qualityRepo, txManager, numerator.New(pool))
	worklogService := worklog.NewService(worklogRepo, qualityService, txManager)

	userID, err := seedUser(ctx, txManager, userRepo, log)
	if err != nil {
		log.Fatalw("failed to seed user", "error", err)
	}

	companies, err := seedCompanies(ctx, companyService, userID, log)
	if err != nil {
		log.Fatalw("failed to seed companies", "error", err)
	}

	if os.Getenv("SEED_WORK_LOGS") != "false" {
		if err := seedWorkLogs(ctx, worklogService, companies, userID, log); err != nil {
			log.Fatalw("failed to seed work logs", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedUser(ctx context.Context, txManager *postgres.TxManager, userRepo *auth_repo.UserRepo, log *logger.Logger) (id.ID, error) {
	email := os.Getenv("SEED_EMAIL")
	if email == "" {
		email = "operator@milldesk.dev"
	}
	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "Operator123!"
	}

	if existing, err := userRepo.GetByEmail(ctx, email); err == nil {
		log.Infow("user already exists, skipping", "email", email)
		return existing.ID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return id.Nil(), fmt.Errorf("hash password: %w", err)
	}

	user := auth.NewUser(email, string(hash))
	user.Name = "Mill Operator"

	err = txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return userRepo.Create(ctx, user)
	})
	if err != nil {
		return id.Nil(), err
	}

	log.Infow("seeded user", "email", email)
	return user.ID, nil
}

func seedCompanies(ctx context.Context, svc *company.Service, userID id.ID, log *logger.Logger) ([]*company.Company, error) {
	created := make([]*company.Company, 0, len(companiesSeed))

	for _, seed := range companiesSeed {
		c := company.NewCompany("", seed.name, userID)
		c.Qualities = make([]*quality.Quality, len(seed.qualities))
		for i, q := range seed.qualities {
			c.Qualities[i] = quality.New(c.ID, q.name, q.payableRate, q.receivableRate)
		}

		if err := svc.Create(ctx, c); err != nil {
			return nil, fmt.Errorf("create %s: %w", seed.name, err)
		}
		created = append(created, c)
		log.Infow("seeded company", "name", c.Name, "code", c.Code, "qualities", len(c.Qualities))
	}

	return created, nil
}

// seedWorkLogs spreads a handful of entries over the current month so
// the dashboard and the PDF export have something to show.
func seedWorkLogs(ctx context.Context, svc *worklog.Service, companies []*company.Company, userID id.ID, log *logger.Logger) error {
	karigars := []string{"Ramesh", "Suresh", "Abdul", "Vikram", "Sanjay"}
	taars := []string{"10.500", "8.250", "12.000", "9.750", "11.300"}

	first, _ := worklog.MonthBounds(time.Now())
	total := 0

	for ci, c := range companies {
		if len(c.Qualities) == 0 {
			continue
		}
		for day := 1; day <= 10; day++ {
			q := c.Qualities[(ci+day)%len(c.Qualities)]
			entry := worklog.NewEntry(
				first.AddDate(0, 0, day-1),
				fmt.Sprintf("M-%02d", (ci+day)%8+1),
				karigars[(ci+day)%len(karigars)],
				c.ID,
				q.ID,
			)
			entry.Taar = taars[(ci+day)%len(taars)]
			entry.UserID = userID

			if err := svc.Create(ctx, entry); err != nil {
				return fmt.Errorf("create work log for %s: %w", c.Name, err)
			}
			total++
		}
	}

	log.Infow("seeded work logs", "entries", total)
	return nil
}
