//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"expresso/internal/gateway/notifier"
	contact_post "expresso/internal/handlers/rest/contact_post"
	dashboard_get "expresso/internal/handlers/rest/dashboard_get"
	login_post "expresso/internal/handlers/rest/login_post"
	logout_get "expresso/internal/handlers/rest/logout_get"
	report_get "expresso/internal/handlers/rest/report_get"
	shipment_create_post "expresso/internal/handlers/rest/shipment_create_post"
	shipment_status_post "expresso/internal/handlers/rest/shipment_status_post"
	shipments_get "expresso/internal/handlers/rest/shipments_get"
	track_get "expresso/internal/handlers/rest/track_get"
	"expresso/internal/handlers/tasks/session_cleanup"
	"expresso/internal/handlers/tasks/stats_snapshot"
	"expresso/internal/pkg/config"
	"expresso/internal/pkg/factory/tracking_code"
	"expresso/internal/pkg/middlewares/session_auth"
	"expresso/internal/pkg/web"

	accountRepo "expresso/internal/repository/account"
	sessionRepo "expresso/internal/repository/session"
	shipmentRepo "expresso/internal/repository/shipment"
	authService "expresso/internal/service/auth"
	contactService "expresso/internal/service/contact"
	shipmentService "expresso/internal/service/shipment"

	"expresso/pkg/background"
	"expresso/pkg/logger"
	"expresso/pkg/querier"
	"expresso/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SessionTTL              time.Duration
	SessionCleanupInterval  time.Duration
	StatsSnapshotInterval   time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceShipment   ServiceShipment
	ServiceContact    ServiceContact
	WebStore          *web.Store
	WebRenderer       *web.Renderer
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	login_post.Service
	logout_get.Service
	session_auth.AuthService

	EnsureAdminAccount(ctx context.Context, username, password string) error
}

type ServiceShipment interface {
	shipments_get.Service
	shipment_create_post.Service
	shipment_status_post.Service
	track_get.Service
	dashboard_get.Service
	report_get.Service
}

type ServiceContact interface {
	contact_post.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSessionTTL,
		provideSessionCleanupInterval,
		provideStatsSnapshotInterval,

		provideAccountRepository,
		provideSessionRepository,
		provideShipmentRepository,

		tracking_code.New,
		provideNotifierGateway,

		provideServiceAuth,
		provideServiceShipment,
		provideServiceContact,

		provideWebStore,
		web.NewRenderer,

		provideSessionCleanupTask,
		provideStatsSnapshotTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceContact), new(*contactService.Contact)),

		wire.Bind(new(authService.AccountRepository), new(*accountRepo.Repository)),
		wire.Bind(new(authService.SessionRepository), new(*sessionRepo.Repository)),
		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(shipmentService.CodeFactory), new(*tracking_code.CodeFactory)),
		wire.Bind(new(contactService.Notifier), new(*notifier.Gateway)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(session_cleanup.Service), new(*authService.Auth)),
		wire.Bind(new(stats_snapshot.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideSessionRepository(querier *querier.Querier) *sessionRepo.Repository {
	return sessionRepo.New(querier)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideNotifierGateway(log logger.Logger, cfg *config.Config) *notifier.Gateway {
	return notifier.New(log, cfg.Contact.Recipient)
}

func provideServiceAuth(
	accounts authService.AccountRepository,
	sessions authService.SessionRepository,
	sessionTTL SessionTTL,
) *authService.Auth {
	return authService.New(accounts, sessions, time.Duration(sessionTTL))
}

func provideServiceShipment(
	repository shipmentService.Repository,
	codes shipmentService.CodeFactory,
	txManager shipmentService.TxManager,
) *shipmentService.Shipment {
	return shipmentService.New(repository, codes, txManager)
}

func provideServiceContact(notifier contactService.Notifier) *contactService.Contact {
	return contactService.New(notifier)
}

func provideWebStore(cfg *config.Config) *web.Store {
	return web.NewStore(cfg.Session.CookieSecret)
}

func provideSessionTTL(cfg *config.Config) SessionTTL {
	return SessionTTL(cfg.Session.TTL)
}

func provideSessionCleanupInterval(cfg *config.Config) SessionCleanupInterval {
	return SessionCleanupInterval(cfg.Tasks.SessionCleanupInterval)
}

func provideStatsSnapshotInterval(cfg *config.Config) StatsSnapshotInterval {
	return StatsSnapshotInterval(cfg.Tasks.StatsSnapshotInterval)
}

func provideSessionCleanupTask(
	log logger.Logger,
	authService session_cleanup.Service,
	interval SessionCleanupInterval,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, authService, time.Duration(interval))
}

func provideStatsSnapshotTask(
	log logger.Logger,
	shipmentService stats_snapshot.Service,
	interval StatsSnapshotInterval,
) *stats_snapshot.StatsSnapshot {
	return stats_snapshot.NewStatsSnapshot(log, shipmentService, time.Duration(interval))
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
	statsSnapshotTask *stats_snapshot.StatsSnapshot,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
		statsSnapshotTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
