package app

import (
	"github.com/Harendra62/leave-management/internal/balance"
	"github.com/Harendra62/leave-management/internal/delegation"
	"github.com/Harendra62/leave-management/internal/employee"
	"github.com/Harendra62/leave-management/internal/holiday"
	"github.com/Harendra62/leave-management/internal/leave"
	"github.com/Harendra62/leave-management/internal/leavetype"
	"github.com/Harendra62/leave-management/internal/messaging/kafka"
	"github.com/Harendra62/leave-management/internal/notification"
	"github.com/Harendra62/leave-management/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) {
	logger := zap.L()

	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	delegationRepo := delegation.NewRepository(gormDB)
	balanceRepo := balance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// Notifications go through the outbox so they survive process restarts.
	notifier := notification.NewOutboxNotifier(outboxRepo)

	// --- Services ---
	employeeService := employee.NewService(gormDB, employeeRepo, counterRepo)
	leaveTypeService := leavetype.NewService(gormDB, leaveTypeRepo)
	holidayService := holiday.NewService(gormDB, holidayRepo, rdb)
	delegationService := delegation.NewService(gormDB, delegationRepo, employeeRepo, notifier)
	balanceService := balance.NewService(gormDB, balanceRepo, employeeRepo, leaveTypeRepo)
	leaveValidator := leave.NewValidator(leaveRepo, balanceService, holidayService, leaveTypeRepo, employeeRepo)
	leaveService := leave.NewService(
		gormDB,
		leaveRepo,
		leaveValidator,
		balanceService,
		employeeRepo,
		leaveTypeRepo,
		delegationRepo,
		notifier,
	)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	holidayHandler := holiday.NewHandler(holidayService)
	delegationHandler := delegation.NewHandler(delegationService)
	balanceHandler := balance.NewHandler(balanceService)
	leaveHandler := leave.NewHandler(leaveService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		leavetype.RegisterRoutes(api, leaveTypeHandler, logger)
		holiday.RegisterRoutes(api, holidayHandler, logger)
		delegation.RegisterRoutes(api, delegationHandler, logger)
		balance.RegisterRoutes(api, balanceHandler, logger)
		leave.RegisterRoutes(api, leaveHandler, rdb, logger)
	}
}
