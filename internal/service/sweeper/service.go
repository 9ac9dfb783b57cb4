package sweeper

import (
	"context"
	"fmt"
	"log"
	"time"

	"fortuna_backend/internal/repository"
	"fortuna_backend/internal/service"
	"fortuna_backend/pkg/keylock"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/robfig/cron/v3"
)

type serv struct {
	accountRepo repository.AccountRepository
	auditRepo   repository.AuditRepository
	locks       *keylock.KeyLock
	txManager   trm.Manager
	interval    time.Duration
	cron        *cron.Cron
	now         func() time.Time // подменяется в тестах
}

// NewSweeperService Создать свипер истекших состояний
func NewSweeperService(
	accountRepo repository.AccountRepository,
	auditRepo repository.AuditRepository,
	locks *keylock.KeyLock,
	txManager trm.Manager,
	interval time.Duration,
) service.SweeperService {
	return &serv{
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		locks:       locks,
		txManager:   txManager,
		interval:    interval,
		cron:        cron.New(),
		now:         time.Now,
	}
}

// Start регистрирует периодический обход и запускает планировщик.
// Тик не дожидается предыдущего: медленный проход просто сдвигает следующий
func (s *serv) Start() error {
	schedule := fmt.Sprintf("@every %s", s.interval)
	_, err := s.cron.AddFunc(schedule, func() {
		if err := s.SweepAll(context.Background()); err != nil {
			log.Printf("sweeper pass failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register sweep task: %w", err)
	}

	s.cron.Start()
	log.Printf("sweeper started, interval %s", s.interval)
	return nil
}

func (s *serv) Stop() {
	s.cron.Stop()
	log.Println("sweeper stopped")
}
