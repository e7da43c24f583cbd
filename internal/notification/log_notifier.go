package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const DefaultLogCapacity = 256

type LogEntry struct {
	Type      string
	Recipient string
	Subject   string
	SentAt    time.Time
}

// LogNotifier records notifications to the logger and keeps a bounded
// in-memory history. It serves as the default collaborator in tests and
// local runs; when the ring is full the oldest entry is dropped.
type LogNotifier struct {
	mu       sync.Mutex
	entries  []LogEntry
	capacity int
	logger   *zap.Logger
}

func NewLogNotifier(capacity int, logger ...*zap.Logger) *LogNotifier {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &LogNotifier{
		entries:  make([]LogEntry, 0, capacity),
		capacity: capacity,
		logger:   l,
	}
}

func (n *LogNotifier) record(entry LogEntry) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.entries) == n.capacity {
		n.entries = n.entries[1:]
	}
	entry.SentAt = time.Now().UTC()
	n.entries = append(n.entries, entry)
}

// Entries returns a copy of the recorded history, oldest first.
func (n *LogNotifier) Entries() []LogEntry {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]LogEntry, len(n.entries))
	copy(out, n.entries)
	return out
}

func (n *LogNotifier) NotifyManagerOfRequest(ctx context.Context, m RequestNotification) error {
	n.record(LogEntry{
		Type:      "leave_request",
		Recipient: m.ManagerEmail,
		Subject:   RequestSubject(m.EmployeeName),
	})
	n.logger.Info("manager notified of leave request",
		zap.String("request_id", m.RequestID),
		zap.String("employee_id", m.EmployeeID),
		zap.String("recipient", m.ManagerEmail),
	)
	return nil
}

func (n *LogNotifier) NotifyEmployeeOfDecision(ctx context.Context, m DecisionNotification) error {
	n.record(LogEntry{
		Type:      "leave_decision",
		Recipient: m.EmployeeEmail,
		Subject:   DecisionSubject(m.Status),
	})
	n.logger.Info("employee notified of leave decision",
		zap.String("request_id", m.RequestID),
		zap.String("status", m.Status),
		zap.String("recipient", m.EmployeeEmail),
	)
	return nil
}

func (n *LogNotifier) NotifyDelegateOfAssignment(ctx context.Context, m DelegationNotification) error {
	n.record(LogEntry{
		Type:      "delegation_assignment",
		Recipient: m.DelegateEmail,
		Subject:   DelegationSubject(m.StartDate, m.EndDate),
	})
	n.logger.Info("delegate notified of assignment",
		zap.String("delegation_id", m.DelegationID),
		zap.String("recipient", m.DelegateEmail),
	)
	return nil
}
