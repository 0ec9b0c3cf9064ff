package history_repo

import (
	"sync"

	"roulette_backend/internal/model"
)

type HistoryRepo struct {
	mtx     sync.RWMutex
	records []model.SpinRecord
}

func NewHistoryRepository() *HistoryRepo {
	return &HistoryRepo{
		records: make([]model.SpinRecord, 0),
	}
}

// Append Добавляет спин в конец истории
func (r *HistoryRepo) Append(rec model.SpinRecord) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.records = append(r.records, rec)
}

// Last Последний спин, false если история пуста
func (r *HistoryRepo) Last() (model.SpinRecord, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	if len(r.records) == 0 {
		return model.SpinRecord{}, false
	}
	return r.records[len(r.records)-1], true
}

// Pop Снимает последний спин
func (r *HistoryRepo) Pop() (model.SpinRecord, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if len(r.records) == 0 {
		return model.SpinRecord{}, false
	}
	last := r.records[len(r.records)-1]
	r.records = r.records[:len(r.records)-1]
	return last, true
}

// List Копия результатов спинов от первого к последнему
func (r *HistoryRepo) List() []model.SpinResult {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	out := make([]model.SpinResult, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Result
	}
	return out
}

func (r *HistoryRepo) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.records)
}

func (r *HistoryRepo) Clear() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.records = make([]model.SpinRecord, 0)
}
