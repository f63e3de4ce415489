package router

import (
	"database/sql"
	"fmt"
	"strings"

	"pet-shelter/internal/adapters/notify"
	"pet-shelter/internal/adapters/notify/telegram"
	mem "pet-shelter/internal/adapters/storage/memory"
	pg "pet-shelter/internal/adapters/storage/postgres"
	"pet-shelter/internal/domain/animals"
	"pet-shelter/internal/domain/parents"
	"pet-shelter/internal/domain/shelters"
	"pet-shelter/internal/domain/volunteers"
	"pet-shelter/internal/platform/config"
	"pet-shelter/internal/platform/logger"
	portnotify "pet-shelter/internal/ports/notify"
)

// ParentStore es el repo de adoptantes más la resolución user name => chat
// que necesita el gateway de Telegram.
type ParentStore interface {
	parents.Repository
	telegram.ChatResolver
}

type Repos struct {
	Animals    animals.Repository
	Shelters   shelters.Repository
	Parents    ParentStore
	Volunteers volunteers.Repository
}

// NewRepos arma los repos Postgres si db != nil; si no, in-memory.
func NewRepos(db *sql.DB) Repos {
	if db != nil {
		return Repos{
			Animals:    pg.NewAnimalsRepo(db),
			Shelters:   pg.NewSheltersRepo(db),
			Parents:    pg.NewParentsRepo(db),
			Volunteers: pg.NewVolunteersRepo(db),
		}
	}
	store := mem.NewStore()
	return Repos{
		Animals:    store.Animals(),
		Shelters:   store.Shelters(),
		Parents:    store.Parents(),
		Volunteers: store.Volunteers(),
	}
}

type Services struct {
	Animals    *animals.Service
	Shelters   *shelters.Service
	Parents    *parents.Service
	Volunteers *volunteers.Service
}

func NewServices(repos Repos, notifier parents.Notifier) Services {
	return Services{
		Animals:    animals.NewService(repos.Animals),
		Shelters:   shelters.NewService(repos.Shelters),
		Parents:    parents.NewService(repos.Parents, notifier),
		Volunteers: volunteers.NewService(repos.Volunteers),
	}
}

// NewGateway elige Telegram si hay token; si no, solo loguea.
func NewGateway(cfg config.Config, log logger.Logger, resolver telegram.ChatResolver) (portnotify.Gateway, error) {
	if strings.TrimSpace(cfg.TelegramBotToken) == "" {
		log.Warn("TELEGRAM_BOT_TOKEN not set, notifications will only be logged", nil)
		return notify.NewLogGateway(log), nil
	}
	client, err := telegram.NewClient(telegram.Config{
		BaseURL: cfg.TelegramAPIURL,
		Token:   cfg.TelegramBotToken,
		Timeout: cfg.TelegramTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("telegram client: %w", err)
	}
	return telegram.NewGateway(client, resolver), nil
}
