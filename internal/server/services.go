package server

import (
	"log/slog"

	"group-ledger/internal/config"
	"group-ledger/internal/events"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"

	"gorm.io/gorm"
)

// Services holds the wired service layer shared by the HTTP server, the
// recurring processor and the admin CLI.
type Services struct {
	Auth        services.AuthServiceInterface
	Token       services.TokenServiceInterface
	Access      services.GroupAccessServiceInterface
	Group       services.GroupServiceInterface
	Transaction services.TransactionServiceInterface
	Recurring   services.RecurringServiceInterface
	Client      services.ClientServiceInterface
	Audit       services.AuditServiceInterface
	DemoData    services.DemoDataGeneratorInterface

	Sessions          repositories.RefreshTokenRepositoryInterface
	BlacklistedTokens repositories.BlacklistedTokenRepositoryInterface
	Groups            repositories.GroupRepositoryInterface
	AuditLogs         repositories.AuditLogRepositoryInterface
}

// NewServices builds repositories and services on db. publisher receives
// transaction events and metrics records domain counters.
func NewServices(
	cfg *config.Config,
	db *gorm.DB,
	publisher events.Publisher,
	metrics services.MetricsRecorderInterface,
	logger *slog.Logger,
) *Services {
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistedTokenRepo := repositories.NewBlacklistedTokenRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	recurringRepo := repositories.NewRecurringObligationRepository(db)
	clientRepo := repositories.NewClientRepository(db)

	auditLogger := services.NewAuditLogger(logger)
	auditService := services.NewAuditService(auditRepo, logger)
	passwordService := services.NewPasswordService(cfg.Security)
	tokenService := services.NewTokenService(&cfg.JWT)
	categorizer := services.NewCategorizer()
	access := services.NewGroupAccessService(groupRepo, auditLogger, metrics)
	keys := services.NewInviteKeyGenerator(cfg.Invite.MaxAttempts, auditLogger, metrics)

	return &Services{
		Auth: services.NewAuthService(
			userRepo, refreshTokenRepo, blacklistedTokenRepo,
			passwordService, tokenService, auditService, metrics, logger,
		),
		Token:  tokenService,
		Access: access,
		Group: services.NewGroupService(
			groupRepo, userRepo, access, keys, auditService, auditLogger, metrics, logger,
		),
		Transaction: services.NewTransactionService(
			transactionRepo, access, categorizer, publisher, auditService, auditLogger, metrics, logger,
		),
		Recurring: services.NewRecurringService(
			recurringRepo, clientRepo, access, categorizer, publisher, auditService, auditLogger, metrics,
			cfg.Recurring.BatchSize, logger,
		),
		Client:   services.NewClientService(clientRepo, access, auditService),
		Audit:    auditService,
		DemoData: services.NewDemoDataGenerator(0),

		Sessions:          refreshTokenRepo,
		BlacklistedTokens: blacklistedTokenRepo,
		Groups:            groupRepo,
		AuditLogs:         auditRepo,
	}
}
