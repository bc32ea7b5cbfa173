// Package jobs runs background estimation work so request handlers never
// block on the AI service.
package jobs

import (
	"sync"

	"go.uber.org/zap"

	"github.com/arsh077/Khurak-new-application/database"
	"github.com/arsh077/Khurak-new-application/llm"
	"github.com/arsh077/Khurak-new-application/logger"
	"github.com/arsh077/Khurak-new-application/models"
)

// MacroJob asks the worker to fill in macros for one gram-logged entry.
type MacroJob struct {
	FoodEntryID uint
	UserID      uint
	Name        string
	Grams       float64
}

// MacroUpdate is broadcast to SSE subscribers when an estimate lands.
type MacroUpdate struct {
	UserID      uint              `json:"user_id"`
	FoodEntryID uint              `json:"food_entry_id"`
	Entry       *models.FoodEntry `json:"entry,omitempty"`
	Failed      bool              `json:"failed,omitempty"`
}

// MacroWorker serialises macro estimation on a single goroutine and
// fans results out to subscribers.
type MacroWorker struct {
	jobs        chan MacroJob
	client      *llm.Client
	subscribers map[chan MacroUpdate]bool
	mu          sync.RWMutex
}

var (
	worker     *MacroWorker
	workerOnce sync.Once
)

// GetWorker returns the process-wide worker, starting it on first use.
func GetWorker() *MacroWorker {
	workerOnce.Do(func() {
		worker = &MacroWorker{
			jobs:        make(chan MacroJob, 100),
			client:      llm.NewClient(),
			subscribers: make(map[chan MacroUpdate]bool),
		}
		go worker.run()
	})
	return worker
}

// Enqueue schedules a job. The queue is bounded; when full the job is
// dropped and the entry stays pending until re-logged.
func (w *MacroWorker) Enqueue(job MacroJob) {
	select {
	case w.jobs <- job:
		logger.Debug("macro job enqueued", zap.Uint("entry", job.FoodEntryID))
	default:
		logger.Warn("macro job queue full, dropping job", zap.Uint("entry", job.FoodEntryID))
	}
}

// Subscribe registers a channel to receive macro updates.
func (w *MacroWorker) Subscribe() chan MacroUpdate {
	ch := make(chan MacroUpdate, 10)
	w.mu.Lock()
	w.subscribers[ch] = true
	w.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (w *MacroWorker) Unsubscribe(ch chan MacroUpdate) {
	w.mu.Lock()
	if w.subscribers[ch] {
		delete(w.subscribers, ch)
		close(ch)
	}
	w.mu.Unlock()
}

func (w *MacroWorker) broadcast(update MacroUpdate) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for ch := range w.subscribers {
		select {
		case ch <- update:
		default:
			// Slow subscriber; skip rather than block the worker.
		}
	}
}

func (w *MacroWorker) run() {
	logger.Info("macro worker started")
	for job := range w.jobs {
		w.processJob(job)
	}
}

func (w *MacroWorker) processJob(job MacroJob) {
	// Re-load before calling out: the entry may have been deleted or
	// resolved while the job sat in the queue.
	var entry models.FoodEntry
	if err := database.DB.First(&entry, job.FoodEntryID).Error; err != nil {
		logger.Warn("macro job entry gone, skipping", zap.Uint("entry", job.FoodEntryID))
		return
	}
	if !entry.MacrosPending {
		return
	}

	food, err := w.client.MacrosFromGrams(job.Name, job.Grams)
	if err != nil {
		logger.Error("macro estimation failed",
			zap.Uint("entry", job.FoodEntryID), zap.Error(err))
		w.broadcast(MacroUpdate{UserID: job.UserID, FoodEntryID: job.FoodEntryID, Failed: true})
		return
	}

	entry.Calories = food.Calories
	entry.Protein = food.Protein
	entry.Carbs = food.Carbs
	entry.Fats = food.Fats
	entry.Fiber = food.Fiber
	entry.Micronutrients = food.Micronutrients
	if food.Quantity != "" {
		entry.Quantity = food.Quantity
	}
	entry.MacrosPending = false

	if err := database.DB.Save(&entry).Error; err != nil {
		logger.Error("failed to persist macro estimate",
			zap.Uint("entry", job.FoodEntryID), zap.Error(err))
		return
	}

	logger.Info("macros estimated",
		zap.Uint("entry", entry.ID), zap.String("food", entry.Name))
	w.broadcast(MacroUpdate{UserID: job.UserID, FoodEntryID: entry.ID, Entry: &entry})
}
