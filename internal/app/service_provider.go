package app

import (
	"context"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	authAPI "yambo_backend/internal/api/auth"
	yamboAPI "yambo_backend/internal/api/yambo"
	"yambo_backend/internal/config"
	"yambo_backend/internal/config/env"
	"yambo_backend/internal/game/sheet"
	"yambo_backend/internal/middleware"
	"yambo_backend/internal/repository"
	"yambo_backend/internal/repository/auth_repo"
	"yambo_backend/internal/repository/user_repo"
	"yambo_backend/internal/repository/yambo_repo"
	"yambo_backend/internal/repository/yambo_stats_repo"
	"yambo_backend/internal/service"
	authServ "yambo_backend/internal/service/auth"
	yamboServ "yambo_backend/internal/service/yambo"
)

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Auth bits
	jwtCfg   config.JWTConfig
	authRepo repository.AuthRepository
	authSrv  service.AuthService
	authHand *authAPI.Handler

	// User bits
	userRepo repository.UserRepository

	// Table bits
	rulesCfg  config.RulesConfig
	yamboRepo repository.YamboRepository
	statsRepo repository.YamboStatsRepository
	yamboSrv  service.YamboService
	yamboHand *yamboAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
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
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
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

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authSrv == nil {
		sp.authSrv = authServ.NewAuthService(sp.UserRepo(ctx), sp.AuthRepo(ctx), sp.TXManager(ctx), sp.JWTCfg())
	}
	return sp.authSrv
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv: sp.AuthService(ctx),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) RulesCfg() config.RulesConfig {
	if sp.rulesCfg == nil {
		cfg, err := env.NewRulesConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get rules config: " + err.Error())
		}
		sp.rulesCfg = cfg
	}
	return sp.rulesCfg
}

func (sp *ServiceProvider) YamboRepository(ctx context.Context) repository.YamboRepository {
	if sp.yamboRepo == nil {
		sp.yamboRepo = yambo_repo.NewYamboRepository(sp.DBClient(ctx))
	}
	return sp.yamboRepo
}

func (sp *ServiceProvider) YamboStatsRepository() repository.YamboStatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = yambo_stats_repo.NewYamboStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) YamboService(ctx context.Context) service.YamboService {
	if sp.yamboSrv == nil {
		rules := sp.RulesCfg()
		cfg := sheet.Config{
			Columns:        rules.Columns(),
			BonusThreshold: rules.BonusThreshold(),
			BonusPoints:    rules.BonusPoints(),
		}
		sp.yamboSrv = yamboServ.NewYamboService(cfg, sp.YamboRepository(ctx), sp.UserRepo(ctx), sp.YamboStatsRepository(), sp.TXManager(ctx))
	}
	return sp.yamboSrv
}

func (sp *ServiceProvider) YamboHandler(ctx context.Context) *yamboAPI.Handler {
	if sp.yamboHand == nil {
		sp.yamboHand = yamboAPI.NewHandler(yamboAPI.HandlerDeps{
			Serv: sp.YamboService(ctx),
		})
	}
	return sp.yamboHand
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
			AllowCredentials: true,
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

		// Table endpoints
		yamboHandler := sp.YamboHandler(ctx)
		r.Route("/table", func(rr chi.Router) {
			rr.Use(middleware.Auth(sp.JWTCfg()))
			rr.Post("/roll", yamboHandler.Roll)
			rr.Post("/hold", yamboHandler.ToggleHold)
			rr.Post("/hold-matching", yamboHandler.ToggleHoldMatching)
			rr.Post("/scratch", yamboHandler.ToggleColumnScratch)
			rr.Post("/save", yamboHandler.Save)
			rr.Post("/new-game", yamboHandler.NewGame)
			rr.Get("/check-data", yamboHandler.CheckTable)
		})

		sp.router = r
	}

	return sp.router
}
