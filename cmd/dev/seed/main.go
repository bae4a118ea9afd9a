package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"sportlebanon/internal/admins"
	"sportlebanon/internal/booking"
	"sportlebanon/internal/field"
	"sportlebanon/internal/owner"
	"sportlebanon/pkg/config"
	"sportlebanon/pkg/db"
)

// Seeds a super admin plus a small pending owner/field/booking chain so the
// moderation flow can be exercised end to end against a fresh local DB.
func main() {
	var (
		email    = flag.String("email", "root@sportlebanon.local", "super admin email")
		password = flag.String("password", "changeme", "super admin password")
		demo     = flag.Bool("demo", true, "also create demo owner/field/booking rows")
	)
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Open(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "db open: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.MigrationsPath != "" {
		if err := db.Migrate(cfg.MigrationsPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
			os.Exit(1)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
		os.Exit(1)
	}

	adminsRepo := admins.NewRepository(pool)
	adm, err := adminsRepo.Upsert(ctx, *email, "Root", string(hash), admins.RoleSuperAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("super admin ready: %s (%s)\n", adm.Email, adm.ID)

	if !*demo {
		return
	}

	ownersRepo := owner.NewRepository(pool)
	o, err := ownersRepo.Insert(ctx, "Cedar Courts", "cedar@sportlebanon.local", "+961 1 000000", "Cedar Courts SARL")
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed owner: %v\n", err)
		os.Exit(1)
	}

	fieldsRepo := field.NewRepository(pool)
	f, err := fieldsRepo.Insert(ctx, o.ID, "Cedar Padel 1", "padel", "Beirut", decimal.RequireFromString("35.00"), "USD")
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed field: %v\n", err)
		os.Exit(1)
	}

	bookingsRepo := booking.NewRepository(pool)
	starts := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	b, err := bookingsRepo.Insert(ctx, f.ID, "user-demo", starts, starts.Add(time.Hour), decimal.RequireFromString("35.00"), "USD")
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed booking: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("demo data ready: owner=%s field=%s booking=%s\n", o.ID, f.ID, b.ID)
}
