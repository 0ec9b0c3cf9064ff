package progression_repo

import (
	"sync"

	"roulette_backend/internal/model"
)

// StateRepo Хранилище прогрессии Фибоначчи по каждой трансверсали
type StateRepo struct {
	mtx    sync.RWMutex
	states [6]model.ProgressionState
}

// NewProgressionRepository Конструктор с нулевыми индексами и заданными флагами активности
func NewProgressionRepository(active [6]bool) *StateRepo {
	r := &StateRepo{}
	r.reset(active)
	return r
}

// States Геттер. Массив копируется при возврате
func (r *StateRepo) States() [6]model.ProgressionState {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.states
}

// Apply Применяет итоги спина: выигрыш сбрасывает прогрессию, проигрыш сдвигает индекс (не выше maxStep)
func (r *StateRepo) Apply(outcomes []model.SectorOutcome, maxStep int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, o := range outcomes {
		i := o.Sector.Index()
		if i < 0 {
			continue
		}
		st := &r.states[i]
		if o.Won {
			st.FibonacciIndex = 0
			st.ConsecutiveLosses = 0
			st.TotalWins++
			continue
		}
		st.ConsecutiveLosses++
		st.TotalLosses++
		if st.FibonacciIndex < maxStep {
			st.FibonacciIndex++
		}
		if st.FibonacciIndex > maxStep {
			st.FibonacciIndex = maxStep
		}
	}
}

// Reset Обнуляет все счетчики и индексы
func (r *StateRepo) Reset(active [6]bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.reset(active)
}

func (r *StateRepo) reset(active [6]bool) {
	for i, sector := range model.Sectors {
		r.states[i] = model.ProgressionState{
			Sector: sector,
			Active: active[i],
		}
	}
}

// SetActive Меняет флаги активности без сброса прогрессии
func (r *StateRepo) SetActive(active [6]bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for i := range r.states {
		r.states[i].Active = active[i]
	}
}

// ClampIndex Приводит индексы к новому максимальному шагу
func (r *StateRepo) ClampIndex(maxStep int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for i := range r.states {
		if r.states[i].FibonacciIndex > maxStep {
			r.states[i].FibonacciIndex = maxStep
		}
	}
}

// Restore Возвращает сохраненный снимок (используется при отмене спина)
func (r *StateRepo) Restore(states [6]model.ProgressionState) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.states = states
}
