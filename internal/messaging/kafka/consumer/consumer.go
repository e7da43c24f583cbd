package consumer

import (
	"context"
	"encoding/json"

	"github.com/Harendra62/leave-management/internal/events"
	"github.com/Harendra62/leave-management/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeNotifications drains the leave notification topics and renders the
// outgoing email for each event. Delivery here means handing the rendered
// message to the mail transport; until one is configured the body is logged.
func ConsumeNotifications(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notifications")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		if err := handleMessage(msg, log); err != nil {
			log.Error("handle notification message failed",
				zap.String("topic", msg.Topic),
				zap.Error(err),
			)
			// Malformed payloads are committed anyway; redelivery cannot fix them.
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
		}
	}
}

func handleMessage(msg kafkago.Message, log *zap.Logger) error {
	switch msg.Topic {
	case events.LeaveRequestedTopic:
		var event events.LeaveRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return err
		}
		log.Info("sending leave request email",
			zap.String("to", event.ManagerEmail),
			zap.String("subject", notification.RequestSubject(event.EmployeeName)),
			zap.String("body", notification.RenderRequestEmail(event)),
		)
	case events.LeaveDecidedTopic:
		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return err
		}
		log.Info("sending leave decision email",
			zap.String("to", event.EmployeeEmail),
			zap.String("subject", notification.DecisionSubject(event.Status)),
			zap.String("body", notification.RenderDecisionEmail(event)),
		)
	case events.DelegationAssignedTopic:
		var event events.DelegationAssignedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return err
		}
		log.Info("sending delegation email",
			zap.String("to", event.DelegateEmail),
			zap.String("subject", notification.DelegationSubject(event.StartDate, event.EndDate)),
			zap.String("body", notification.RenderDelegationEmail(event)),
		)
	default:
		log.Warn("unknown notification topic", zap.String("topic", msg.Topic))
	}
	return nil
}
