package models

import "testing"

func TestDeriveGoalStatus(t *testing.T) {
	if DeriveGoalStatus(99) != GoalOngoing {
		t.Error("99%% should be ongoing")
	}
	if DeriveGoalStatus(100) != GoalCompleted {
		t.Error("100%% should be completed")
	}
}

func TestSetProgressClamps(t *testing.T) {
	var g Goal
	g.SetProgress(150)
	if g.Progress != 100 || g.Status != GoalCompleted {
		t.Errorf("got progress %d status %s", g.Progress, g.Status)
	}
	g.SetProgress(-10)
	if g.Progress != 0 || g.Status != GoalOngoing {
		t.Errorf("got progress %d status %s", g.Progress, g.Status)
	}
}

func TestGoalApplyStatusOverride(t *testing.T) {
	g := Goal{Progress: 30, Status: GoalOngoing}

	// Only the failed override is honored.
	completed := GoalCompleted
	g.Apply(GoalPatch{Status: &completed})
	if g.Status != GoalOngoing {
		t.Errorf("completed override should be ignored, got %s", g.Status)
	}

	failed := GoalFailed
	g.Apply(GoalPatch{Status: &failed})
	if g.Status != GoalFailed {
		t.Errorf("failed override should stick, got %s", g.Status)
	}

	// New progress recomputes status, clearing the failed state.
	progress := 100
	g.Apply(GoalPatch{Progress: &progress})
	if g.Status != GoalCompleted {
		t.Errorf("progress should recompute status, got %s", g.Status)
	}
}

func TestProgressPercent(t *testing.T) {
	p := ChallengeParticipation{ProgressDays: 7}
	if got := p.ProgressPercent(28); got != 25 {
		t.Errorf("7/28 days = %d%%, want 25", got)
	}
	p.ProgressDays = 40
	if got := p.ProgressPercent(28); got != 100 {
		t.Errorf("overshoot should cap at 100, got %d", got)
	}
	if got := p.ProgressPercent(0); got != 0 {
		t.Errorf("zero-duration challenge should report 0, got %d", got)
	}
}

func TestNewSetFromTemplate(t *testing.T) {
	reps := 5
	sets := 5
	tmpl := ExerciseTemplate{ID: "sq", DefaultSets: &sets, DefaultReps: &reps}
	set := NewSetFromTemplate("set1", tmpl, 2)
	if set.TemplateID != "sq" || set.Order != 2 {
		t.Errorf("unexpected set: %+v", set)
	}
	if set.Sets != 5 || set.Reps == nil || *set.Reps != 5 {
		t.Errorf("template defaults not applied: %+v", set)
	}

	// Missing default sets falls back to 3.
	set = NewSetFromTemplate("set2", ExerciseTemplate{ID: "run"}, 1)
	if set.Sets != 3 {
		t.Errorf("default sets = %d, want 3", set.Sets)
	}
}

func TestScheduleFromProgram(t *testing.T) {
	program := &WorkoutProgram{
		Sessions: []ProgramSession{
			{
				DayOfWeek: Monday,
				Sets: []ExerciseSet{
					{TemplateID: "sq"},
					{TemplateID: "bp"},
					{TemplateID: "sq"}, // duplicate, second work set
				},
			},
			{DayOfWeek: Friday, Sets: []ExerciseSet{{TemplateID: "dl"}}},
		},
	}

	ws := ScheduleFromProgram(program)
	monday := ws.Day(Monday)
	if len(monday) != 2 || monday[0] != "sq" || monday[1] != "bp" {
		t.Errorf("monday = %v, want [sq bp]", monday)
	}
	if got := ws.Day(Friday); len(got) != 1 || got[0] != "dl" {
		t.Errorf("friday = %v, want [dl]", got)
	}
	if ws.Day(Tuesday) != nil {
		t.Errorf("tuesday should be empty, got %v", ws.Day(Tuesday))
	}

	if got := ScheduleFromProgram(nil); got.Day(Monday) != nil {
		t.Error("nil program should yield an empty schedule")
	}
}

func TestPrefillFromPlan(t *testing.T) {
	sets := 5
	plan := &WorkoutPlan{
		Exercises: []ExerciseTemplate{
			{ID: "sq", Name: "Squat", DefaultSets: &sets},
			{ID: "run", Name: "Running"},
		},
	}

	exercises := PrefillFromPlan(plan)
	if len(exercises) != 2 {
		t.Fatalf("expected 2 exercises, got %d", len(exercises))
	}
	if exercises[0].Name != "Squat" || exercises[0].Completed {
		t.Errorf("unexpected first exercise: %+v", exercises[0])
	}
	if exercises[0].Sets == nil || *exercises[0].Sets != 5 {
		t.Errorf("defaults not carried: %+v", exercises[0])
	}

	if got := PrefillFromPlan(nil); got != nil {
		t.Errorf("nil plan should prefill nothing, got %v", got)
	}
}

func TestParseWeekday(t *testing.T) {
	if d, ok := ParseWeekday("wed"); !ok || d != Wednesday {
		t.Errorf("wed parsed as %v", d)
	}
	if d, ok := ParseWeekday("sunday"); !ok || d != Sunday {
		t.Errorf("sunday parsed as %v", d)
	}
	if _, ok := ParseWeekday("noday"); ok {
		t.Error("noday should not parse")
	}
}

func TestParseMood(t *testing.T) {
	if m, ok := ParseMood(""); !ok || m != "" {
		t.Error("empty mood should be allowed")
	}
	if _, ok := ParseMood("ecstatic"); ok {
		t.Error("ecstatic should not parse")
	}
}
