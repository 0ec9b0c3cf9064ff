package history_repo

import (
	"testing"

	"roulette_backend/internal/model"
)

func TestHistoryAppendPop(t *testing.T) {
	r := NewHistoryRepository()

	if _, ok := r.Last(); ok {
		t.Fatal("Last on empty history must report false")
	}
	if _, ok := r.Pop(); ok {
		t.Fatal("Pop on empty history must report false")
	}

	for _, n := range []model.Number{3, 17, 0} {
		r.Append(model.SpinRecord{Result: model.SpinResult{Number: n}})
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d", r.Len())
	}

	last, ok := r.Last()
	if !ok || last.Result.Number != 0 {
		t.Fatalf("Last = %+v, %v", last, ok)
	}

	popped, ok := r.Pop()
	if !ok || popped.Result.Number != 0 {
		t.Fatalf("Pop = %+v, %v", popped, ok)
	}

	list := r.List()
	if len(list) != 2 || list[0].Number != 3 || list[1].Number != 17 {
		t.Fatalf("List = %+v", list)
	}

	r.Clear()
	if r.Len() != 0 || len(r.List()) != 0 {
		t.Fatal("Clear left records behind")
	}
}
