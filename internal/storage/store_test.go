package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/teamfit/teamfit/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewJSONBackend(filepath.Join(t.TempDir(), "data")))
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestSQLiteStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewSQLiteBackend(filepath.Join(t.TempDir(), "teamfit.db")))
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testMember(id, name string) models.Member {
	return models.Member{
		ID:   id,
		Name: name,
		Physical: models.PhysicalInfo{
			HeightCm: 175,
			WeightKg: 70,
			Age:      30,
			Gender:   models.GenderOther,
		},
		FitnessGoals: []models.FitnessGoal{models.FitnessGeneralFitness},
		CreatedAt:    time.Now(),
	}
}

func TestInitSeedsCatalogs(t *testing.T) {
	for name, newStore := range map[string]func(*testing.T) *Store{
		"json":   newTestStore,
		"sqlite": newTestSQLiteStore,
	} {
		t.Run(name, func(t *testing.T) {
			s := newStore(t)

			templates, err := s.ExerciseTemplates()
			if err != nil {
				t.Fatalf("failed to read templates: %v", err)
			}
			if len(templates) != 4 {
				t.Errorf("expected 4 seeded templates, got %d", len(templates))
			}

			challenges, err := s.Challenges()
			if err != nil {
				t.Fatalf("failed to read challenges: %v", err)
			}
			if len(challenges) != 3 {
				t.Errorf("expected 3 seeded challenges, got %d", len(challenges))
			}
		})
	}
}

func TestSeedingIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := New(NewJSONBackend(dir))
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}

	challenges, err := s.Challenges()
	if err != nil {
		t.Fatalf("failed to read challenges: %v", err)
	}
	// Mutate the catalog so a re-seed would be visible.
	challenges[0].Title = "edited"
	challenges = challenges[:2]
	if err := saveSlice(s.backend, "challenges", challenges); err != nil {
		t.Fatalf("failed to save challenges: %v", err)
	}
	s.Close()

	reopened := New(NewJSONBackend(dir))
	if err := reopened.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Challenges()
	if err != nil {
		t.Fatalf("failed to read challenges: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("reload re-seeded a non-empty catalog: got %d challenges", len(got))
	}
	if got[0].Title != "edited" {
		t.Errorf("reload overwrote edited catalog entry: got %q", got[0].Title)
	}
}

func TestInitTwiceFails(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := New(NewJSONBackend(dir))
	if err := s.Init(); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	s.Close()

	again := New(NewJSONBackend(dir))
	if err := again.Init(); err == nil {
		t.Fatal("expected second init to fail")
	}
}

func TestLoadUninitializedFails(t *testing.T) {
	s := New(NewJSONBackend(filepath.Join(t.TempDir(), "missing")))
	if err := s.Load(); err == nil {
		t.Fatal("expected load of uninitialized storage to fail")
	}
}

func TestMemberRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.AddMember(testMember("m1", "Alice")); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}

	got, found, err := s.Member("m1")
	if err != nil {
		t.Fatalf("failed to read member: %v", err)
	}
	if !found {
		t.Fatal("expected member to be found")
	}
	if got.Name != "Alice" {
		t.Errorf("expected name Alice, got %q", got.Name)
	}

	_, found, err = s.Member("nope")
	if err != nil {
		t.Fatalf("unexpected error for missing member: %v", err)
	}
	if found {
		t.Error("expected missing member to report not found")
	}
}

func TestUpdateMemberPatch(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddMember(testMember("m1", "Alice")); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}

	name := "Alicia"
	if err := s.UpdateMember("m1", models.MemberPatch{Name: &name}); err != nil {
		t.Fatalf("failed to update member: %v", err)
	}

	got, _, err := s.Member("m1")
	if err != nil {
		t.Fatalf("failed to read member: %v", err)
	}
	if got.Name != "Alicia" {
		t.Errorf("expected patched name, got %q", got.Name)
	}
	if got.Physical.HeightCm != 175 {
		t.Errorf("patch clobbered untouched field: height %v", got.Physical.HeightCm)
	}

	// Unknown IDs are a silent no-op.
	if err := s.UpdateMember("ghost", models.MemberPatch{Name: &name}); err != nil {
		t.Errorf("update of unknown member should be a no-op, got %v", err)
	}
}

func TestDeleteMemberDoesNotCascade(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddMember(testMember("m1", "Alice")); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}
	if err := s.AddWorkoutLog(models.WorkoutLog{ID: "w1", MemberID: "m1", Date: "2026-08-20", TotalDurationMin: 45}); err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	if err := s.AddGoal("m1", models.Goal{ID: "g1", Title: "Run 5k", Type: models.GoalPerformance}); err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}

	if err := s.DeleteMember("m1"); err != nil {
		t.Fatalf("failed to delete member: %v", err)
	}

	if _, found, _ := s.Member("m1"); found {
		t.Error("expected member to be deleted")
	}
	logs, err := s.WorkoutLogs()
	if err != nil {
		t.Fatalf("failed to read logs: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("delete cascaded into workout logs: got %d", len(logs))
	}
	goals, err := s.Goals()
	if err != nil {
		t.Fatalf("failed to read goals: %v", err)
	}
	if len(goals) != 1 {
		t.Errorf("delete cascaded into goals: got %d", len(goals))
	}
}

func TestGoalProjection(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddGoal("m1", models.Goal{ID: "g1", Title: "Lose 5kg", Type: models.GoalWeight}); err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}
	if err := s.AddGoal("m2", models.Goal{ID: "g2", Title: "Train 3x", Type: models.GoalFrequency}); err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}

	mine, err := s.MemberGoals("m1")
	if err != nil {
		t.Fatalf("failed to read member goals: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "g1" {
		t.Fatalf("projection returned wrong goals: %+v", mine)
	}

	all, err := s.Goals()
	if err != nil {
		t.Fatalf("failed to read goals: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 goals in global collection, got %d", len(all))
	}
}

func TestGoalStatusDerivedFromProgress(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddGoal("m1", models.Goal{ID: "g1", Title: "Lose 5kg", Type: models.GoalWeight}); err != nil {
		t.Fatalf("failed to add goal: %v", err)
	}

	progress := 100
	if err := s.UpdateGoal("m1", "g1", models.GoalPatch{Progress: &progress}); err != nil {
		t.Fatalf("failed to update goal: %v", err)
	}
	goals, _ := s.MemberGoals("m1")
	if goals[0].Status != models.GoalCompleted {
		t.Errorf("expected completed at 100%%, got %s", goals[0].Status)
	}

	progress = 40
	if err := s.UpdateGoal("m1", "g1", models.GoalPatch{Progress: &progress}); err != nil {
		t.Fatalf("failed to update goal: %v", err)
	}
	goals, _ = s.MemberGoals("m1")
	if goals[0].Status != models.GoalOngoing {
		t.Errorf("expected ongoing at 40%%, got %s", goals[0].Status)
	}

	failed := models.GoalFailed
	if err := s.UpdateGoal("m1", "g1", models.GoalPatch{Status: &failed}); err != nil {
		t.Fatalf("failed to update goal: %v", err)
	}
	goals, _ = s.MemberGoals("m1")
	if goals[0].Status != models.GoalFailed {
		t.Errorf("expected explicit failed override to stick, got %s", goals[0].Status)
	}
}

func TestJoinChallengeRejectsActiveDuplicate(t *testing.T) {
	s := newTestStore(t)
	if err := s.AddMember(testMember("m1", "Alice")); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}

	p := models.ChallengeParticipation{ChallengeID: "challenge-run-5k", StartedAt: time.Now()}
	if err := s.JoinChallenge("m1", p); err != nil {
		t.Fatalf("first join failed: %v", err)
	}
	if err := s.JoinChallenge("m1", p); !errors.Is(err, ErrActiveParticipation) {
		t.Fatalf("expected ErrActiveParticipation, got %v", err)
	}

	// Completing the participation frees the slot.
	member, _, _ := s.Member("m1")
	member.Challenges[0].Completed = true
	if err := s.SetMemberChallenges("m1", member.Challenges); err != nil {
		t.Fatalf("failed to set participations: %v", err)
	}
	if err := s.JoinChallenge("m1", p); err != nil {
		t.Fatalf("rejoin after completion failed: %v", err)
	}

	member, _, _ = s.Member("m1")
	if len(member.Challenges) != 2 {
		t.Errorf("expected 2 participations, got %d", len(member.Challenges))
	}
}

func TestSaveProgramReplacesByID(t *testing.T) {
	s := newTestStore(t)
	prog := models.WorkoutProgram{ID: "p1", Name: "Starting Strength"}
	if err := s.SaveProgram(prog); err != nil {
		t.Fatalf("failed to save program: %v", err)
	}
	prog.Name = "Starting Strength v2"
	if err := s.SaveProgram(prog); err != nil {
		t.Fatalf("failed to re-save program: %v", err)
	}

	programs, err := s.Programs()
	if err != nil {
		t.Fatalf("failed to read programs: %v", err)
	}
	if len(programs) != 1 {
		t.Fatalf("expected 1 program, got %d", len(programs))
	}
	if programs[0].Name != "Starting Strength v2" {
		t.Errorf("expected replaced program, got %q", programs[0].Name)
	}
}

func TestJSONBackendWritesCollectionFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	s := New(NewJSONBackend(dir))
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := s.AddMember(testMember("m1", "Alice")); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "members.json")); err != nil {
		t.Errorf("expected members.json on disk: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "challenges.json")); err != nil {
		t.Errorf("expected challenges.json on disk: %v", err)
	}
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	if err := s.AddMember(testMember("m1", "Alice")); err != nil {
		t.Fatalf("failed to add member: %v", err)
	}
	if err := s.AddEncouragement(models.Encouragement{ID: "e1", FromMemberID: "m2", ToMemberID: "m1", Message: "nice run"}); err != nil {
		t.Fatalf("failed to add encouragement: %v", err)
	}

	got, err := s.EncouragementsFor("m1")
	if err != nil {
		t.Fatalf("failed to read encouragements: %v", err)
	}
	if len(got) != 1 || got[0].Message != "nice run" {
		t.Fatalf("unexpected encouragements: %+v", got)
	}
}
