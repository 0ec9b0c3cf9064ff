package converter

import (
	"errors"
	"testing"

	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"
)

func TestToNumber(t *testing.T) {
	if _, err := ToNumber(dto.SpinRequest{}); !errors.Is(err, model.ErrInvalidNumber) {
		t.Fatalf("err = %v", err)
	}

	n := 17
	got, err := ToNumber(dto.SpinRequest{Number: &n})
	if err != nil || got != 17 {
		t.Fatalf("got %d, %v", got, err)
	}
}

func TestToSettingsPatch(t *testing.T) {
	sectors := []string{"LINE_7_12", "LINE_25_30"}
	patch, err := ToSettingsPatch(dto.SettingsRequest{ActiveSectors: &sectors})
	if err != nil {
		t.Fatal(err)
	}
	if patch.ActiveSectors == nil || len(*patch.ActiveSectors) != 2 || (*patch.ActiveSectors)[1] != model.Line25to30 {
		t.Fatalf("patch = %+v", patch.ActiveSectors)
	}
	if patch.BaseUnitSector != nil || patch.MaxFibonacciStep != nil {
		t.Fatal("absent fields must stay nil")
	}

	bad := []string{"LINE_1_6", "ROW_1"}
	if _, err := ToSettingsPatch(dto.SettingsRequest{ActiveSectors: &bad}); !errors.Is(err, model.ErrInvalidSettings) {
		t.Fatalf("err = %v", err)
	}
}

func TestToProgressionResponse(t *testing.T) {
	settings := servModel.DefaultSettings()
	var states [6]model.ProgressionState
	for i, s := range model.Sectors {
		states[i] = model.ProgressionState{Sector: s, Active: true, FibonacciIndex: i}
	}
	states[5].FibonacciIndex = 15

	got := ToProgressionResponse(states, settings)
	want := []string{"1.00", "1.00", "2.00", "3.00", "5.00"}
	for i, stake := range want {
		if got[i].CurrentStake != stake {
			t.Errorf("%s stake = %s, want %s", got[i].Sector, got[i].CurrentStake, stake)
		}
	}
	// шаг выше максимального ограничен MaxFibonacciStep
	if got[5].CurrentStake != "89.00" || got[5].Label != "31-36" {
		t.Fatalf("last = %+v", got[5])
	}
}
