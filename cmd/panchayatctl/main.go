package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"panchayat.backend/internal/config"
	"panchayat.backend/internal/domain/entities"
	"panchayat.backend/internal/infrastructure/datasources/postgres"
	"panchayat.backend/internal/infrastructure/repositories"
	"panchayat.backend/internal/usecases"
	"panchayat.backend/pkg/crypto"
	plog "panchayat.backend/pkg/logger"
)

// ctlDeps holds the pieces each command reaches for, so tests can swap the
// database for sqlite.
type ctlDeps struct {
	loadEnv func() error
	loadCfg func() *config.Config
	openDB  func(cfg config.DatabaseConfig) (*gorm.DB, error)
	in      io.Reader
	out     io.Writer
}

func defaultCtlDeps() ctlDeps {
	return ctlDeps{
		loadEnv: func() error { return godotenv.Load() },
		loadCfg: config.Load,
		openDB:  postgres.NewConnection,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

func main() {
	if err := newRootCmd(defaultCtlDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(deps ctlDeps) *cobra.Command {
	root := &cobra.Command{
		Use:           "panchayatctl",
		Short:         "Operator tooling for the panchayat backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(deps))
	root.AddCommand(newSeedAdminCmd(deps))
	root.AddCommand(newHashPasswordCmd(deps))
	return root
}

// withDB loads configuration and opens the database for a command, closing
// the pool once fn returns.
func (d ctlDeps) withDB(fn func(cfg *config.Config, db *gorm.DB) error) error {
	if d.loadEnv != nil {
		// A missing .env file is normal outside development.
		_ = d.loadEnv()
	}
	cfg := d.loadCfg()
	plog.Init(cfg.Server.Env)
	defer plog.Sync()

	db, err := d.openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return fn(cfg, db)
}

func newMigrateCmd(deps ctlDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return deps.withDB(func(_ *config.Config, db *gorm.DB) error {
				if err := postgres.Migrate(cmd.Context(), db); err != nil {
					return err
				}
				fmt.Fprintln(deps.out, "schema is up to date")
				return nil
			})
		},
	}
}

type seedAdminFlags struct {
	username    string
	password    string
	name        string
	contact     string
	gender      string
	address     string
	dateOfBirth string
}

func newSeedAdminCmd(deps ctlDeps) *cobra.Command {
	var f seedAdminFlags
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create an admin account that is verified from the start",
		Long: `Verification is performed by admins, so the first admin of a fresh
installation has to be created here.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.password == "" {
				pw, err := readPassword(deps.in)
				if err != nil {
					return err
				}
				f.password = pw
			}
			dob, err := entities.ParseDate(f.dateOfBirth)
			if err != nil {
				return fmt.Errorf("invalid --dob %q: expected YYYY-MM-DD", f.dateOfBirth)
			}
			reg := &entities.Registration{
				RegistrationBase: entities.RegistrationBase{
					Username:      f.username,
					Password:      f.password,
					Name:          f.name,
					ContactNumber: f.contact,
					UserType:      entities.RoleAdmin,
				},
				Profile: entities.AdminRegistration{
					Gender:      f.gender,
					DateOfBirth: dob,
					Address:     f.address,
				},
			}
			return deps.withDB(func(cfg *config.Config, db *gorm.DB) error {
				return seedAdmin(cmd.Context(), cfg, db, reg, deps.out)
			})
		},
	}
	cmd.Flags().StringVar(&f.username, "username", "", "Admin username")
	cmd.Flags().StringVar(&f.password, "password", "", "Admin password (read from stdin when omitted)")
	cmd.Flags().StringVar(&f.name, "name", "", "Display name")
	cmd.Flags().StringVar(&f.contact, "contact", "", "Contact number")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Gender")
	cmd.Flags().StringVar(&f.address, "address", "", "Postal address")
	cmd.Flags().StringVar(&f.dateOfBirth, "dob", "", "Date of birth, YYYY-MM-DD")
	for _, name := range []string{"username", "name", "contact", "gender", "address", "dob"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func seedAdmin(ctx context.Context, cfg *config.Config, db *gorm.DB, reg *entities.Registration, out io.Writer) error {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	auth := usecases.NewAuthUsecase(
		repositories.NewUnitOfWork(db),
		userRepo,
		profileRepo,
		nil,
		crypto.NewPasswordHasher(cfg.Security.BcryptCost),
		nil,
		nil,
		nil,
	)

	identity, err := auth.Register(ctx, reg)
	if err != nil {
		return err
	}
	if err := userRepo.SetVerified(ctx, identity.User.Username, true); err != nil {
		return fmt.Errorf("admin %s was created but could not be verified: %w", identity.User.Username, err)
	}
	fmt.Fprintf(out, "admin %s created and verified\n", identity.User.Username)
	return nil
}

func newHashPasswordCmd(deps ctlDeps) *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				pw, err := readPassword(deps.in)
				if err != nil {
					return err
				}
				password = pw
			}
			hash, err := crypto.NewPasswordHasher(cost).Hash(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.out, hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", crypto.DefaultCost, "bcrypt cost")
	return cmd
}

func readPassword(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is required")
	}
	return password, nil
}
