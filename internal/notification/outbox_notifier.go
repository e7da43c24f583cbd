package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Harendra62/leave-management/internal/events"
	"github.com/Harendra62/leave-management/internal/messaging/kafka"
	"github.com/Harendra62/leave-management/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OutboxNotifier queues notification events for the Kafka outbox worker.
// Rows are written on the notifier's own connection after the caller's
// transaction has committed, so a broken outbox can delay a notification
// but never undo an approval.
type OutboxNotifier struct {
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewOutboxNotifier(outbox kafka.OutboxRepository, logger ...*zap.Logger) *OutboxNotifier {
	l := zap.L().Named("notification.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.outbox")
	}
	return &OutboxNotifier{outbox: outbox, logger: l}
}

func (n *OutboxNotifier) enqueue(ctx context.Context, topic, eventType, aggregateID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return n.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave",
		AggregateID:   aggregateID,
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func (n *OutboxNotifier) NotifyManagerOfRequest(ctx context.Context, m RequestNotification) error {
	event := events.LeaveRequestedEvent{
		EventType:    "leave_requested",
		RequestID:    m.RequestID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		ManagerEmail: m.ManagerEmail,
		ManagerName:  m.ManagerName,
		LeaveType:    m.LeaveType,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		TotalDays:    m.TotalDays,
		Reason:       m.Reason,
		OccurredAt:   time.Now().UTC(),
	}
	if err := n.enqueue(ctx, events.LeaveRequestedTopic, event.EventType, m.RequestID, event); err != nil {
		n.logger.Error("queue leave request notification failed",
			zap.String("request_id", m.RequestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (n *OutboxNotifier) NotifyEmployeeOfDecision(ctx context.Context, m DecisionNotification) error {
	event := events.LeaveDecidedEvent{
		EventType:       "leave_decided",
		RequestID:       m.RequestID,
		EmployeeID:      m.EmployeeID,
		EmployeeEmail:   m.EmployeeEmail,
		EmployeeName:    m.EmployeeName,
		ApproverName:    m.ApproverName,
		LeaveType:       m.LeaveType,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		TotalDays:       m.TotalDays,
		Status:          m.Status,
		RejectionReason: m.RejectionReason,
		OccurredAt:      time.Now().UTC(),
	}
	if err := n.enqueue(ctx, events.LeaveDecidedTopic, event.EventType, m.RequestID, event); err != nil {
		n.logger.Error("queue leave decision notification failed",
			zap.String("request_id", m.RequestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (n *OutboxNotifier) NotifyDelegateOfAssignment(ctx context.Context, m DelegationNotification) error {
	event := events.DelegationAssignedEvent{
		EventType:     "delegation_assigned",
		DelegationID:  m.DelegationID,
		ManagerName:   m.ManagerName,
		DelegateEmail: m.DelegateEmail,
		DelegateName:  m.DelegateName,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Reason:        m.Reason,
		OccurredAt:    time.Now().UTC(),
	}
	if err := n.enqueue(ctx, events.DelegationAssignedTopic, event.EventType, m.DelegationID, event); err != nil {
		n.logger.Error("queue delegation notification failed",
			zap.String("delegation_id", m.DelegationID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
