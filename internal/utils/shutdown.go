package utils

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const defaultShutdownTimeout = 15 * time.Second

// ShutdownManager собирает задачи завершения (Mongo, Redis, HTTP-сервер,
// long-poll бота) и выполняет их по SIGINT/SIGTERM. Задачи выполняются
// в порядке регистрации; ошибка одной не останавливает остальные.
type ShutdownManager struct {
	cancelFunc context.CancelFunc
	timeout    time.Duration
	tasks      []func(context.Context) error
	mu         sync.Mutex
}

func NewShutdownManager(ctx context.Context, timeout time.Duration) (context.Context, *ShutdownManager) {
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &ShutdownManager{cancelFunc: cancel, timeout: timeout}
}

func (sm *ShutdownManager) Register(task func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.tasks = append(sm.tasks, task)
}

func (sm *ShutdownManager) StartListening() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("[SHUTDOWN] Received signal: %v", sig)
		sm.cancelFunc()
		sm.runTasks()
		log.Println("[SHUTDOWN] Graceful shutdown complete")
		os.Exit(0)
	}()
}

// runTasks выполняет все зарегистрированные задачи под общим таймаутом
// и возвращает число задач, завершившихся с ошибкой.
func (sm *ShutdownManager) runTasks() int {
	ctx, cancel := context.WithTimeout(context.Background(), sm.timeout)
	defer cancel()

	sm.mu.Lock()
	defer sm.mu.Unlock()

	failed := 0
	for _, task := range sm.tasks {
		if err := task(ctx); err != nil {
			log.Printf("[SHUTDOWN] Error during shutdown: %v", err)
			failed++
		}
	}
	return failed
}
