package app

import (
	"context"
	"log"
	"os"

	accountAPI "fortuna_backend/internal/api/account"
	adminAPI "fortuna_backend/internal/api/admin"
	authAPI "fortuna_backend/internal/api/auth"
	casesAPI "fortuna_backend/internal/api/cases"
	vipAPI "fortuna_backend/internal/api/vip"
	"fortuna_backend/internal/config"
	"fortuna_backend/internal/config/env"
	"fortuna_backend/internal/middleware"
	"fortuna_backend/internal/repository"
	"fortuna_backend/internal/repository/account_repo"
	"fortuna_backend/internal/repository/audit_repo"
	"fortuna_backend/internal/repository/auth_repo"
	"fortuna_backend/internal/repository/catalog_repo"
	"fortuna_backend/internal/repository/memory_repo"
	"fortuna_backend/internal/service"
	"fortuna_backend/internal/service/account"
	"fortuna_backend/internal/service/auth"
	"fortuna_backend/internal/service/cases"
	"fortuna_backend/internal/service/moderation"
	"fortuna_backend/internal/service/sweeper"
	"fortuna_backend/internal/service/vip"
	"fortuna_backend/pkg/keylock"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceProvider struct {
	// Без PG_DSN всё состояние живет в памяти процесса
	memoryMode bool

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Catalog bits
	catalogCfg  config.CatalogConfig
	catalogRepo repository.CatalogRepository

	// Repositories
	accountRepo repository.AccountRepository
	auditRepo   repository.AuditRepository
	authRepo    repository.AuthRepository

	// Per-account locks
	locks *keylock.KeyLock

	// Auth bits
	jwtCfg   config.JWTConfig
	authServ service.AuthService
	authHand *authAPI.Handler

	// Case bits
	caseServ service.CaseService
	caseHand *casesAPI.Handler

	// VIP bits
	vipServ service.VipService
	vipHand *vipAPI.Handler

	// Account bits
	accountServ service.AccountService
	accountHand *accountAPI.Handler

	// Moderation bits
	moderationServ service.ModerationService
	adminHand      *adminAPI.Handler

	// Sweeper bits
	sweepCfg    config.SweeperConfig
	sweeperServ service.SweeperService

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{
		memoryMode: os.Getenv("PG_DSN") == "",
	}
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		if sp.memoryMode {
			sp.txManager = memory_repo.NewTxManager()
			return sp.txManager
		}

		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) CatalogCfg() config.CatalogConfig {
	if sp.catalogCfg == nil {
		cfg, err := env.NewCatalogConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get catalog config: " + err.Error())
		}
		sp.catalogCfg = cfg
	}
	return sp.catalogCfg
}

func (sp *ServiceProvider) CatalogRepository() repository.CatalogRepository {
	if sp.catalogRepo == nil {
		repo, err := catalog_repo.NewCatalogRepository(sp.CatalogCfg())
		if err != nil {
			panic("invalid catalog: " + err.Error())
		}
		sp.catalogRepo = repo
	}
	return sp.catalogRepo
}

func (sp *ServiceProvider) AccountRepository(ctx context.Context) repository.AccountRepository {
	if sp.accountRepo == nil {
		if sp.memoryMode {
			log.Println("PG_DSN is not set, accounts are stored in memory")
			sp.accountRepo = memory_repo.NewAccountRepository()
		} else {
			sp.accountRepo = account_repo.NewAccountRepository(sp.DBClient(ctx))
		}
	}
	return sp.accountRepo
}

func (sp *ServiceProvider) AuditRepository(ctx context.Context) repository.AuditRepository {
	if sp.auditRepo == nil {
		if sp.memoryMode {
			sp.auditRepo = memory_repo.NewAuditRepository()
		} else {
			sp.auditRepo = audit_repo.NewAuditRepository(sp.DBClient(ctx))
		}
	}
	return sp.auditRepo
}

func (sp *ServiceProvider) AuthRepository(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		if sp.memoryMode {
			sp.authRepo = memory_repo.NewAuthRepository(sp.AccountRepository(ctx))
		} else {
			sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
		}
	}
	return sp.authRepo
}

func (sp *ServiceProvider) Locks() *keylock.KeyLock {
	if sp.locks == nil {
		sp.locks = keylock.New()
	}
	return sp.locks
}

func (sp *ServiceProvider) JWTCfg() config.JWTConfig {
	if sp.jwtCfg == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtCfg = cfg
	}
	return sp.jwtCfg
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewAuthService(
			sp.TXManager(ctx),
			sp.AccountRepository(ctx),
			sp.AuthRepository(ctx),
			sp.AuditRepository(ctx),
			sp.JWTCfg(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService(ctx)})
	}
	return sp.authHand
}

func (sp *ServiceProvider) CaseService(ctx context.Context) service.CaseService {
	if sp.caseServ == nil {
		sp.caseServ = cases.NewCaseService(
			sp.CatalogRepository(),
			sp.AccountRepository(ctx),
			sp.AuditRepository(ctx),
			sp.Locks(),
			sp.TXManager(ctx),
		)
	}
	return sp.caseServ
}

func (sp *ServiceProvider) CaseHandler(ctx context.Context) *casesAPI.Handler {
	if sp.caseHand == nil {
		sp.caseHand = casesAPI.NewHandler(casesAPI.HandlerDeps{Serv: sp.CaseService(ctx)})
	}
	return sp.caseHand
}

func (sp *ServiceProvider) VipService(ctx context.Context) service.VipService {
	if sp.vipServ == nil {
		sp.vipServ = vip.NewVipService(
			sp.CatalogRepository(),
			sp.AccountRepository(ctx),
			sp.AuditRepository(ctx),
			sp.Locks(),
			sp.TXManager(ctx),
		)
	}
	return sp.vipServ
}

func (sp *ServiceProvider) VipHandler(ctx context.Context) *vipAPI.Handler {
	if sp.vipHand == nil {
		sp.vipHand = vipAPI.NewHandler(vipAPI.HandlerDeps{Serv: sp.VipService(ctx)})
	}
	return sp.vipHand
}

func (sp *ServiceProvider) AccountService(ctx context.Context) service.AccountService {
	if sp.accountServ == nil {
		sp.accountServ = account.NewAccountService(
			sp.AccountRepository(ctx),
			sp.AuditRepository(ctx),
			sp.Locks(),
			sp.TXManager(ctx),
		)
	}
	return sp.accountServ
}

func (sp *ServiceProvider) AccountHandler(ctx context.Context) *accountAPI.Handler {
	if sp.accountHand == nil {
		sp.accountHand = accountAPI.NewHandler(accountAPI.HandlerDeps{Serv: sp.AccountService(ctx)})
	}
	return sp.accountHand
}

func (sp *ServiceProvider) ModerationService(ctx context.Context) service.ModerationService {
	if sp.moderationServ == nil {
		sp.moderationServ = moderation.NewModerationService(
			sp.AccountRepository(ctx),
			sp.AuditRepository(ctx),
			sp.Locks(),
			sp.TXManager(ctx),
		)
	}
	return sp.moderationServ
}

func (sp *ServiceProvider) AdminHandler(ctx context.Context) *adminAPI.Handler {
	if sp.adminHand == nil {
		sp.adminHand = adminAPI.NewHandler(adminAPI.HandlerDeps{
			ModerationServ: sp.ModerationService(ctx),
			VipServ:        sp.VipService(ctx),
		})
	}
	return sp.adminHand
}

func (sp *ServiceProvider) SweepCfg() config.SweeperConfig {
	if sp.sweepCfg == nil {
		cfg, err := env.NewSweeperConfig()
		if err != nil {
			panic("failed to get sweeper config: " + err.Error())
		}
		sp.sweepCfg = cfg
	}
	return sp.sweepCfg
}

func (sp *ServiceProvider) SweeperService(ctx context.Context) service.SweeperService {
	if sp.sweeperServ == nil {
		sp.sweeperServ = sweeper.NewSweeperService(
			sp.AccountRepository(ctx),
			sp.AuditRepository(ctx),
			sp.Locks(),
			sp.TXManager(ctx),
			sp.SweepCfg().Interval(),
		)
	}
	return sp.sweeperServ
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Остальные маршруты требуют access токен
		r.Group(func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))

			caseHandler := sp.CaseHandler(ctx)
			rr.Route("/cases", func(rrr chi.Router) {
				rrr.Get("/", caseHandler.List)
				rrr.Post("/open", caseHandler.Open)
			})

			vipHandler := sp.VipHandler(ctx)
			rr.Route("/vip", func(rrr chi.Router) {
				rrr.Get("/options", vipHandler.Options)
				rrr.Post("/purchase", vipHandler.Purchase)
				rrr.Post("/activate", vipHandler.Activate)
			})

			accountHandler := sp.AccountHandler(ctx)
			rr.Get("/profile", accountHandler.Profile)
			rr.Post("/deposit", accountHandler.Deposit)
			rr.Get("/logs", accountHandler.Logs)

			adminHandler := sp.AdminHandler(ctx)
			rr.Route("/admin", func(rrr chi.Router) {
				rrr.Post("/ban", adminHandler.Ban)
				rrr.Post("/unban", adminHandler.Unban)
				rrr.Post("/mute", adminHandler.Mute)
				rrr.Post("/unmute", adminHandler.Unmute)
				rrr.Post("/grant", adminHandler.Grant)
			})
		})

		sp.router = r
	}

	return sp.router
}
