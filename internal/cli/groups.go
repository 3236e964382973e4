package cli

import (
	"fmt"
	"time"

	"group-ledger/internal/models"
	"group-ledger/internal/server"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRegenerateInviteKeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regenerate-invite-key <group-id>",
		Short: "Replace a group's invite key on behalf of its owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid group id %q", args[0])
			}

			return a.withServices(true, func(svc *server.Services) error {
				group, err := svc.Groups.GetByID(groupID)
				if err != nil {
					return fmt.Errorf("loading group: %w", err)
				}

				key, err := svc.Group.RegenerateInviteKey(cmd.Context(), cliActor(group.OwnerID), groupID)
				if err != nil {
					return fmt.Errorf("regenerating invite key: %w", err)
				}
				return a.print(map[string]string{"groupId": groupID.String(), "inviteKey": key}, key)
			})
		},
	}
}

func newCleanupTokensCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Purge expired sessions and blacklist entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServices(false, func(svc *server.Services) error {
				cutoff := a.now()
				sessions, err := svc.Sessions.DeleteExpired(cutoff)
				if err != nil {
					return err
				}
				revoked, err := svc.BlacklistedTokens.DeleteExpired(cutoff)
				if err != nil {
					return err
				}
				return a.print(
					map[string]int64{"sessions": sessions, "blacklisted": revoked},
					fmt.Sprintf("sessions removed: %d", sessions),
					fmt.Sprintf("blacklist entries removed: %d", revoked),
				)
			})
		},
	}
}

func newPruneAuditCommand(a *app) *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "prune-audit",
		Short: "Delete audit entries older than the retention window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if olderThan <= 0 {
				return fmt.Errorf("--older-than must be positive, got %s", olderThan)
			}

			return a.withServices(false, func(svc *server.Services) error {
				cutoff := a.now().Add(-olderThan)
				deleted, err := svc.AuditLogs.DeleteBefore(cutoff)
				if err != nil {
					return err
				}
				stamp := cutoff.Format(time.RFC3339)
				return a.print(
					map[string]any{"deleted": deleted, "cutoff": stamp},
					fmt.Sprintf("audit entries removed: %d (before %s)", deleted, stamp),
				)
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 90*24*time.Hour, "Retention window")
	return cmd
}

// cliActor attributes maintenance actions to userID so they land in that
// user's audit trail.
func cliActor(userID uuid.UUID) models.Actor {
	return models.Actor{UserID: userID, IPAddress: "127.0.0.1", UserAgent: "ledgerctl"}
}
