package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/teamboard/backend/internal/models"
)

type UserFinder interface {
	FindByID(ctx context.Context, userID int) (*models.User, error)
}

// JoinNotifier texts a project's owner when someone joins with the code.
// Delivery is best effort: failures are logged and never fail the join.
type JoinNotifier struct {
	users       UserFinder
	sender      Sender
	countryCode string
	logger      *zap.SugaredLogger
}

// NewJoinNotifier returns a notifier that sends through sender. A nil sender
// turns notifications off.
func NewJoinNotifier(users UserFinder, sender Sender, countryCode string, logger *zap.SugaredLogger) *JoinNotifier {
	return &JoinNotifier{users: users, sender: sender, countryCode: countryCode, logger: logger}
}

func (n *JoinNotifier) ProjectJoined(ctx context.Context, project models.Project, memberID int) {
	if n.sender == nil {
		return
	}

	owner, err := n.users.FindByID(ctx, project.OwnerID)
	if err != nil {
		n.logger.Warnw("Join SMS skipped", "project_id", project.ID, "reason", "owner lookup failed", "error", err)
		return
	}
	if owner.Phone == "" {
		return
	}
	member, err := n.users.FindByID(ctx, memberID)
	if err != nil {
		n.logger.Warnw("Join SMS skipped", "project_id", project.ID, "reason", "member lookup failed", "error", err)
		return
	}

	to, err := E164(owner.Phone, n.countryCode)
	if err != nil {
		n.logger.Warnw("Join SMS skipped", "project_id", project.ID, "owner_id", owner.ID, "error", err)
		return
	}

	body := fmt.Sprintf("[teamboard] %s joined %s", member.Name, project.Name)
	if err := n.sender.Send(to, body); err != nil {
		n.logger.Warnw("Join SMS failed", "project_id", project.ID, "owner_id", owner.ID, "error", err)
		return
	}
	n.logger.Infow("Join SMS sent", "project_id", project.ID, "owner_id", owner.ID, "member_id", memberID)
}
