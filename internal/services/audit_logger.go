package services

import (
	"context"
	"log/slog"
	"time"

	"group-ledger/internal/models"

	"github.com/google/uuid"
)

type contextKey string

// TraceIDKey carries the request trace id into service calls.
const TraceIDKey contextKey = "trace_id"

// WithTraceID returns ctx annotated with the request trace id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		return ctx
	}
	return context.WithValue(ctx, TraceIDKey, traceID)
}

func traceIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(TraceIDKey).(string)
	return id
}

// AuditLogger writes operational events to the structured log. Unlike
// AuditService nothing here is persisted.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{logger: logger}
}

func (al *AuditLogger) emit(ctx context.Context, level slog.Level, msg, event string, attrs ...slog.Attr) {
	attrs = append(attrs,
		slog.String("event_type", event),
		slog.String("correlation_id", traceIDFrom(ctx)),
	)
	al.logger.LogAttrs(ctx, level, msg, attrs...)
}

func (al *AuditLogger) LogGroupCreated(ctx context.Context, groupID, ownerID uuid.UUID, keyAttempts int) {
	al.emit(ctx, slog.LevelInfo, "group created", "group_created",
		slog.String("group_id", groupID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.Int("invite_key_attempts", keyAttempts))
}

func (al *AuditLogger) LogMembershipChanged(ctx context.Context, groupID, userID uuid.UUID, change string, role models.GroupRole) {
	al.emit(ctx, slog.LevelInfo, "membership changed", "membership_changed",
		slog.String("group_id", groupID.String()),
		slog.String("user_id", userID.String()),
		slog.String("change", change),
		slog.String("role", role.String()))
}

func (al *AuditLogger) LogAuthorizationDenied(ctx context.Context, groupID, userID uuid.UUID, reason string) {
	al.emit(ctx, slog.LevelWarn, "group authorization denied", "authorization_denied",
		slog.String("group_id", groupID.String()),
		slog.String("user_id", userID.String()),
		slog.String("reason", reason))
}

func (al *AuditLogger) LogInviteKeyCollision(ctx context.Context, attempt, maxAttempts int) {
	al.emit(ctx, slog.LevelWarn, "invite key collision", "invite_key_collision",
		slog.Int("attempt", attempt),
		slog.Int("max_attempts", maxAttempts))
}

func (al *AuditLogger) LogSharesRejected(ctx context.Context, groupID uuid.UUID, amount string, participants int) {
	al.emit(ctx, slog.LevelInfo, "participant shares rejected", "shares_rejected",
		slog.String("group_id", groupID.String()),
		slog.String("amount", amount),
		slog.Int("participants", participants))
}

func (al *AuditLogger) LogRecurringExecuted(ctx context.Context, obligationID, transactionID uuid.UUID, occurrence time.Time, durationMs int64) {
	al.emit(ctx, slog.LevelInfo, "recurring obligation executed", "recurring_executed",
		slog.String("obligation_id", obligationID.String()),
		slog.String("transaction_id", transactionID.String()),
		slog.Time("occurrence", occurrence),
		slog.Int64("duration_ms", durationMs))
}

func (al *AuditLogger) LogRecurringClaimLost(ctx context.Context, obligationID uuid.UUID, expectedVersion int) {
	al.emit(ctx, slog.LevelInfo, "recurring execution claim lost", "recurring_claim_lost",
		slog.String("obligation_id", obligationID.String()),
		slog.Int("expected_version", expectedVersion))
}

func (al *AuditLogger) LogOptimisticLockConflict(ctx context.Context, entityType string, entityID uuid.UUID, expectedVersion int) {
	al.emit(ctx, slog.LevelWarn, "optimistic lock conflict", "optimistic_lock_conflict",
		slog.String("entity_type", entityType),
		slog.String("entity_id", entityID.String()),
		slog.Int("expected_version", expectedVersion))
}

func (al *AuditLogger) LogEventPublishFailed(ctx context.Context, eventType string, entityID uuid.UUID, errorMsg string) {
	al.emit(ctx, slog.LevelWarn, "event publish failed", "event_publish_failed",
		slog.String("published_type", eventType),
		slog.String("entity_id", entityID.String()),
		slog.String("error", errorMsg))
}
