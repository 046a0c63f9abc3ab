package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newID() string { return uuid.New().String() }

func hashPassword(pw string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), 12)
	if err != nil {
		log.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func daysAgo(d int) time.Time {
	return time.Now().UTC().AddDate(0, 0, -d)
}

func daysFromNow(d int) time.Time {
	return time.Now().UTC().AddDate(0, 0, d)
}

func randBetween(min, max int) int {
	return min + rand.Intn(max-min+1)
}

func pick[T any](items []T) T {
	return items[rand.Intn(len(items))]
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func must(err error, what string) {
	if err != nil {
		log.Fatalf("%s: %v", what, err)
	}
}

// ── main ─────────────────────────────────────────────────────────────────────

func main() {
	_ = godotenv.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_PORT", "5432"),
		envOr("DB_USER", "pickboard"),
		envOr("DB_PASSWORD", "pickboard"),
		envOr("DB_NAME", "pickboard"),
		envOr("DB_SSL_MODE", "disable"),
	)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("ping: %v", err)
	}
	fmt.Println("connected to database")

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatalf("begin tx: %v", err)
	}
	defer tx.Rollback(ctx)

	// ── clean up previous seed data ──────────────────────────────────────
	const seedTerminalCode = "SEED-TERM"
	_, _ = tx.Exec(ctx, `DELETE FROM terminals WHERE code = $1`, seedTerminalCode)
	fmt.Println("cleaned previous seed data")

	now := time.Now().UTC()

	// ── 1. terminal ──────────────────────────────────────────────────────
	terminalID := newID()
	_, err = tx.Exec(ctx,
		`INSERT INTO terminals (id, code, name, active, created_at, updated_at)
		 VALUES ($1, $2, $3, true, $4, $4)`,
		terminalID, seedTerminalCode, "Riverside Freight Terminal", now,
	)
	must(err, "create terminal")
	fmt.Println("created terminal: Riverside Freight Terminal")

	// ── 2. admin and manager accounts ───────────────────────────────────
	adminAccountID := newID()
	managerAccountID := newID()
	_, err = tx.Exec(ctx,
		`INSERT INTO accounts (id, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, 'ADMIN', $4, $4)`,
		adminAccountID, "admin@pickboard.dev", hashPassword("password123"), now,
	)
	must(err, "create admin account")
	_, err = tx.Exec(ctx,
		`INSERT INTO accounts (id, email, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, 'MANAGER', $4, $4)`,
		managerAccountID, "manager@pickboard.dev", hashPassword("password123"), now,
	)
	must(err, "create manager account")
	fmt.Println("created admin@pickboard.dev and manager@pickboard.dev / password123")

	// ── 3. driver accounts + employees, ordered by seniority ────────────
	type driverSeed struct {
		employeeID         string
		first, last        string
		hireDaysAgo        int
		doublesEndorsement bool
		chainExperience    bool
		eligible           bool
	}
	drivers := []driverSeed{
		{"E-1001", "Marguerite", "Oduya", 4100, true, true, true},
		{"E-1002", "Sal", "Denholm", 3650, true, false, true},
		{"E-1003", "Priya", "Naik", 3100, false, true, true},
		{"E-1004", "Walt", "Kowalczyk", 2800, true, true, true},
		{"E-1005", "Renata", "Silva", 2400, false, false, true},
		{"E-1006", "Dmitri", "Pavlenko", 2000, true, false, true},
		{"E-1007", "Ashok", "Reddy", 1500, false, false, true},
		{"E-1008", "Colleen", "Fitzgerald", 1100, true, true, false}, // not yet eligible
		{"E-1009", "Benedikt", "Hauer", 700, false, false, true},
		{"E-1010", "Tamsin", "Okafor", 200, false, false, true},
	}

	employeeIDs := make(map[string]string, len(drivers))
	for _, d := range drivers {
		acctID := newID()
		_, err = tx.Exec(ctx,
			`INSERT INTO accounts (id, email, password_hash, role, created_at, updated_at)
			 VALUES ($1, $2, $3, 'DRIVER', $4, $4)`,
			acctID, fmt.Sprintf("%s@pickboard.dev", d.employeeID), hashPassword("password123"), now,
		)
		must(err, "create driver account "+d.employeeID)

		empID := newID()
		employeeIDs[d.employeeID] = empID
		_, err = tx.Exec(ctx,
			`INSERT INTO employees (id, employee_id, first_name, last_name, hire_date, doubles_endorsement, chain_experience, eligible, terminal_id, account_id, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`,
			empID, d.employeeID, d.first, d.last, daysAgo(d.hireDaysAgo),
			d.doublesEndorsement, d.chainExperience, d.eligible, terminalID, acctID, now,
		)
		must(err, "create employee "+d.employeeID)
	}
	fmt.Printf("created %d driver employees (seniority-ordered by hire date)\n", len(drivers))

	// ── 4. routes ────────────────────────────────────────────────────────
	type routeSeed struct {
		runNumber                         string
		origin, destination               string
		routeType                         string
		days, startTime, endTime          string
		distance, workTime                float64
		rateType                          string
		requiresDoubles, requiresChainExp bool
	}
	routes := []routeSeed{
		{"101", "Riverside", "Harborview", "SINGLES", "MON-FRI", "05:00", "13:00", 180, 7.5, "HOURLY", false, false},
		{"102", "Riverside", "Millbrook", "SINGLES", "MON-FRI", "06:00", "14:30", 210, 8.0, "HOURLY", false, false},
		{"103", "Riverside", "Eastgate", "DOUBLES", "MON-SAT", "04:00", "12:00", 310, 8.0, "MILEAGE", true, true},
		{"104", "Riverside", "Fallsview", "SINGLES", "TUE-SAT", "07:00", "15:00", 150, 7.0, "FLAT_RATE", false, false},
		{"105", "Riverside", "Brookhaven", "DOUBLES", "MON-FRI", "03:00", "11:30", 340, 8.5, "MILEAGE", true, false},
		{"106", "Riverside", "Northfield", "SINGLES", "MON-FRI", "08:00", "16:00", 120, 7.0, "HOURLY", false, true},
		{"107", "Riverside", "Cedar Springs", "DOUBLES", "WED-SUN", "02:00", "10:00", 360, 8.0, "MILEAGE", true, true},
		{"108", "Riverside", "Lakeside", "SINGLES", "MON-FRI", "09:00", "17:00", 95, 6.5, "HOURLY", false, false},
	}

	routeIDs := make(map[string]string, len(routes))
	for _, r := range routes {
		rID := newID()
		routeIDs[r.runNumber] = rID
		_, err = tx.Exec(ctx,
			`INSERT INTO routes (id, run_number, terminal_id, origin, destination, type, days, start_time, end_time, distance, work_time, rate_type, requires_doubles_endorsement, requires_chain_experience, active, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, true, $15, $15)`,
			rID, r.runNumber, terminalID, r.origin, r.destination, r.routeType, r.days, r.startTime, r.endTime,
			r.distance, r.workTime, r.rateType, r.requiresDoubles, r.requiresChainExp, now,
		)
		must(err, "create route "+r.runNumber)
	}
	fmt.Printf("created %d routes\n", len(routes))

	// ── 5. selection periods: one UPCOMING, one OPEN ─────────────────────
	upcomingPeriodID := newID()
	_, err = tx.Exec(ctx,
		`INSERT INTO selection_periods (id, name, description, terminal_id, start_date, end_date, status, required_selections, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'UPCOMING', $7, $8, $8)`,
		upcomingPeriodID, "Spring 2027 Pick", "Bi-annual route selection for the spring service change.",
		terminalID, daysFromNow(14), daysFromNow(28), 3, now,
	)
	must(err, "create upcoming period")

	openPeriodID := newID()
	_, err = tx.Exec(ctx,
		`INSERT INTO selection_periods (id, name, description, terminal_id, start_date, end_date, status, required_selections, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'OPEN', $7, $8, $8)`,
		openPeriodID, "Fall 2026 Pick", "Bi-annual route selection for the fall service change.",
		terminalID, daysAgo(2), daysFromNow(5), 3, now,
	)
	must(err, "create open period")
	fmt.Println("created selection periods: Spring 2027 Pick (UPCOMING), Fall 2026 Pick (OPEN)")

	for _, period := range []string{upcomingPeriodID, openPeriodID} {
		for _, runNumber := range []string{"101", "102", "103", "104", "105", "106", "107", "108"} {
			_, err = tx.Exec(ctx,
				`INSERT INTO period_routes (period_id, route_id) VALUES ($1, $2)`,
				period, routeIDs[runNumber],
			)
			must(err, "attach route "+runNumber+" to period")
		}
	}
	fmt.Println("attached all routes to both periods")

	// ── 6. preferences for the OPEN period (submitted by the most senior drivers) ──
	type prefSeed struct {
		employeeID            string
		first, second, third  string
		confirmationNumber    string
	}
	prefs := []prefSeed{
		{"E-1001", "103", "105", "107", "CONF-100001"},
		{"E-1002", "105", "103", "107", "CONF-100002"},
		{"E-1003", "101", "102", "106", "CONF-100003"},
		{"E-1004", "107", "103", "105", "CONF-100004"},
	}
	for _, p := range prefs {
		first, second, third := routeIDs[p.first], routeIDs[p.second], routeIDs[p.third]
		_, err = tx.Exec(ctx,
			`INSERT INTO preferences (id, employee_id, period_id, first_choice_id, second_choice_id, third_choice_id, confirmation_number, submitted_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			newID(), employeeIDs[p.employeeID], openPeriodID, first, second, third, p.confirmationNumber, daysAgo(randBetween(1, 2)),
		)
		must(err, "create preference for "+p.employeeID)
	}
	fmt.Printf("created %d preferences for the open period\n", len(prefs))

	// ── 7. an audit trail entry recording the seed run itself ───────────
	_, err = tx.Exec(ctx,
		`INSERT INTO audit_events (id, timestamp, user_id, action, resource, resource_id, details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		newID(), now, adminAccountID, "SEED", "TERMINAL", terminalID, "development fixtures loaded",
	)
	must(err, "create audit entry")

	if err := tx.Commit(ctx); err != nil {
		log.Fatalf("commit: %v", err)
	}

	fmt.Println()
	fmt.Println("seed complete")
	fmt.Println("  admin:   admin@pickboard.dev / password123")
	fmt.Println("  manager: manager@pickboard.dev / password123")
	fmt.Println("  drivers: E-1001@pickboard.dev .. E-1010@pickboard.dev / password123")
}
