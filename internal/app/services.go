package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tagger-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/audit"
	datasetrepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/dataset"
	labelrepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/label"
	operatorrepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/operator"
	permissionrepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/permission"
	sentencerepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/sentence"
	tagrepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/tag"
	userrepo "github.com/heartmarshall/tagger-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tagger-backend/internal/auth"
	"github.com/heartmarshall/tagger-backend/internal/config"
	"github.com/heartmarshall/tagger-backend/internal/metrics"
	"github.com/heartmarshall/tagger-backend/internal/service/access"
	authsvc "github.com/heartmarshall/tagger-backend/internal/service/auth"
	"github.com/heartmarshall/tagger-backend/internal/service/dataset"
	"github.com/heartmarshall/tagger-backend/internal/service/labeling"
	"github.com/heartmarshall/tagger-backend/internal/service/permission"
	"github.com/heartmarshall/tagger-backend/internal/service/report"
	"github.com/heartmarshall/tagger-backend/internal/service/search"
	"github.com/heartmarshall/tagger-backend/internal/service/sentence"
	"github.com/heartmarshall/tagger-backend/internal/service/tag"
	"github.com/heartmarshall/tagger-backend/internal/service/user"
)

// Repos holds the PostgreSQL repositories.
type Repos struct {
	Users       *userrepo.Repo
	Operators   *operatorrepo.Repo
	Permissions *permissionrepo.Repo
	Datasets    *datasetrepo.Repo
	Tags        *tagrepo.Repo
	Sentences   *sentencerepo.Repo
	Labels      *labelrepo.Repo
	Audit       *auditrepo.Repo
	Tx          *postgres.TxManager
}

// NewRepos builds every repository on top of one pool.
func NewRepos(pool *pgxpool.Pool) *Repos {
	return &Repos{
		Users:       userrepo.New(pool),
		Operators:   operatorrepo.New(pool),
		Permissions: permissionrepo.New(pool),
		Datasets:    datasetrepo.New(pool),
		Tags:        tagrepo.New(pool),
		Sentences:   sentencerepo.New(pool),
		Labels:      labelrepo.New(pool),
		Audit:       auditrepo.New(pool),
		Tx:          postgres.NewTxManager(pool),
	}
}

// Services holds the domain services used by the HTTP server and taggerctl.
type Services struct {
	JWT        *auth.JWTManager
	Access     *access.Service
	Auth       *authsvc.Service
	Users      *user.Service
	Datasets   *dataset.Service
	Tags       *tag.Service
	Sentences  *sentence.Service
	Permission *permission.Service
	Labeling   *labeling.Service
	Search     *search.Service
	Report     *report.Service
}

// NewServices wires services to repositories, configuration and metrics.
func NewServices(logger *slog.Logger, cfg *config.Config, repos *Repos, m *metrics.Metrics) *Services {
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	guard := access.NewService(logger, repos.Operators, repos.Permissions)

	return &Services{
		JWT:      jwt,
		Access:   guard,
		Auth:     authsvc.NewService(logger, repos.Users, jwt, auth.CheckPassword),
		Users:    user.NewService(logger, repos.Users, repos.Operators, repos.Audit, repos.Tx, auth.HashPassword),
		Datasets: dataset.NewService(logger, repos.Datasets, repos.Audit, repos.Tx),
		Tags:     tag.NewService(logger, repos.Tags, repos.Datasets, guard, repos.Audit, repos.Tx),
		Sentences: sentence.NewService(logger, repos.Sentences, repos.Datasets, repos.Audit, repos.Tx, m,
			sentence.Config{MaxSentences: cfg.Import.MaxSentences}),
		Permission: permission.NewService(logger, repos.Permissions, repos.Datasets, repos.Operators, repos.Audit, repos.Tx),
		Labeling:   labeling.NewService(logger, repos.Tags, repos.Sentences, repos.Labels, guard, repos.Tx, m),
		Search:     search.NewService(logger, repos.Labels, guard, search.Config{TextConfig: cfg.Search.TextConfig}),
		Report: report.NewService(logger, repos.Labels, m, report.Config{
			Dir:      cfg.Report.Dir,
			Location: cfg.Report.Location,
		}),
	}
}
