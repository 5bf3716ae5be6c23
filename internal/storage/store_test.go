package storage

import (
	"testing"
)

func testMeta() RunMetadata {
	return RunMetadata{
		Scenario:    "orbit2d",
		Dim:         2,
		Dt:          0.01,
		Steps:       3,
		G:           50,
		CentralMass: 1000,
		Threshold:   1.0,
		Metrics:     map[string]float64{"energy": -330.2},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	times := []float64{0, 0.01, 0.02}
	coords := [][]float64{{150, 0}, {149.999778, 0.025}, {149.999333, 0.05}}

	runID, err := st.Save(testMeta(), times, coords)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Scenario != "orbit2d" || meta.Dim != 2 || meta.Metrics["energy"] != -330.2 {
		t.Errorf("metadata round trip lost data: %+v", meta)
	}

	gotTimes, gotCoords, err := st.LoadTrail(runID)
	if err != nil {
		t.Fatalf("load trail failed: %v", err)
	}
	if len(gotTimes) != 3 || len(gotCoords) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d", len(gotTimes), len(gotCoords))
	}
	if gotCoords[1][0] != 149.999778 || gotCoords[1][1] != 0.025 {
		t.Errorf("trail round trip lost precision: %v", gotCoords[1])
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	if _, err := st.Save(testMeta(), []float64{0}, [][]float64{{150, 0}}); err != nil {
		t.Fatal(err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Scenario != "orbit2d" {
		t.Errorf("unexpected run: %+v", runs[0])
	}
}

func TestListMissingDir(t *testing.T) {
	st := New("/nonexistent/path/for/test")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("expected empty list for missing dir, got error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestSaveMismatchedLengths(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if _, err := st.Save(testMeta(), []float64{0, 1}, [][]float64{{1, 2}}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestLoadUnknownRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("missing_123"); err == nil {
		t.Error("expected error for unknown run")
	}
	if _, _, err := st.LoadTrail("missing_123"); err == nil {
		t.Error("expected error for unknown run trail")
	}
}
