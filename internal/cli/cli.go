package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"pet-shelter/internal/adapters/notify"
	pg "pet-shelter/internal/adapters/storage/postgres"
	"pet-shelter/internal/platform/config"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/router"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

var ErrNoDatabase = errors.New("DB_DSN is required")

// Backend es lo que necesitan los comandos de dominio. Close libera conexiones.
type Backend struct {
	Services router.Services
	Close    func() error
}

// Deps permite reemplazar la conexión real en tests.
type Deps struct {
	Config config.Config
	Log    logger.Logger

	// OpenDB abre la base; default postgres.Open(Config.DBDSN).
	OpenDB func(dsn string) (*sql.DB, error)
	// OpenBackend arma services; default Postgres + gateway según config.
	OpenBackend func(ctx context.Context) (*Backend, error)
}

func NewRootCmd(deps Deps) *cobra.Command {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.OpenDB == nil {
		deps.OpenDB = pg.Open
	}
	if deps.OpenBackend == nil {
		deps.OpenBackend = defaultBackend(deps)
	}

	root := &cobra.Command{
		Use:           "shelterctl",
		Short:         "Tareas de operación del refugio",
		Long:          `Migraciones de base, recordatorios de reporte y cierre de períodos de prueba.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(deps),
		newRemindCmd(deps),
		newProbationCmd(deps),
	)
	return root
}

func newMigrateCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplicar o revertir migraciones",
	}

	run := func(fn func(m *migrate.Migrate, out io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deps.Config.DBDSN) == "" {
				return ErrNoDatabase
			}
			db, err := deps.OpenDB(deps.Config.DBDSN)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer db.Close()

			m, err := pg.NewMigrator(db)
			if err != nil {
				return err
			}
			return fn(m, cmd.OutOrStdout())
		}
	}

	var steps int
	up := &cobra.Command{
		Use:   "up",
		Short: "Aplicar migraciones pendientes",
		RunE: run(func(m *migrate.Migrate, out io.Writer) error {
			var err error
			if steps > 0 {
				err = m.Steps(steps)
			} else {
				err = m.Up()
			}
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Fprintln(out, "no migrations to apply")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			fmt.Fprintln(out, "migrations applied")
			return nil
		}),
	}
	up.Flags().IntVar(&steps, "steps", 0, "cantidad de pasos (0 = todas)")

	var downSteps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revertir migraciones (default 1 paso)",
		RunE: run(func(m *migrate.Migrate, out io.Writer) error {
			n := downSteps
			if n <= 0 {
				n = 1
			}
			err := m.Steps(-n)
			if errors.Is(err, migrate.ErrNoChange) {
				fmt.Fprintln(out, "no migrations to rollback")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate down: %w", err)
			}
			fmt.Fprintln(out, "migrations rolled back")
			return nil
		}),
	}
	down.Flags().IntVar(&downSteps, "steps", 1, "cantidad de pasos")

	version := &cobra.Command{
		Use:   "version",
		Short: "Mostrar la versión aplicada",
		RunE: run(func(m *migrate.Migrate, out io.Writer) error {
			v, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Fprintln(out, "no migrations applied")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "version %d (dirty=%t)\n", v, dirty)
			return nil
		}),
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func newRemindCmd(deps Deps) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Mandar el recordatorio a los adoptantes con reporte en la fecha",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			day := time.Now()
			if strings.TrimSpace(date) != "" {
				d, err := time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
				day = d
			}

			b, err := deps.OpenBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			sent, err := b.Services.Parents.RemindDueReports(cmd.Context(), day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d reminders sent for %s\n", sent, day.Format(time.DateOnly))
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "fecha YYYY-MM-DD (default hoy)")
	return cmd
}

func newProbationCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probation",
		Short: "Cerrar el período de prueba de un adoptante",
	}

	complete := &cobra.Command{
		Use:   "complete <chat-id>",
		Short: "Aprobar: registra el resultado y manda la felicitación",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := deps.OpenBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			p, err := b.Services.Parents.CompleteProbation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.ChatID, p.Probation)
			return nil
		},
	}

	fail := &cobra.Command{
		Use:   "fail <chat-id>",
		Short: "No aprobar: libera el animal y avisa al adoptante",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := deps.OpenBackend(cmd.Context())
			if err != nil {
				return err
			}
			defer b.Close()

			p, err := b.Services.Parents.FailProbation(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", p.ChatID, p.Probation)
			return nil
		},
	}

	cmd.AddCommand(complete, fail)
	return cmd
}

// defaultBackend: Postgres + envío sincrónico (el proceso termina al salir del comando).
func defaultBackend(deps Deps) func(ctx context.Context) (*Backend, error) {
	return func(ctx context.Context) (*Backend, error) {
		if strings.TrimSpace(deps.Config.DBDSN) == "" {
			return nil, ErrNoDatabase
		}
		db, err := deps.OpenDB(deps.Config.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}

		repos := router.NewRepos(db)
		gw, err := router.NewGateway(deps.Config, deps.Log, repos.Parents)
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		return &Backend{
			Services: router.NewServices(repos, notify.NewInline(gw, deps.Log, deps.Config.NotifyTimeout)),
			Close:    db.Close,
		}, nil
	}
}
