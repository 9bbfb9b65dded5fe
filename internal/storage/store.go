package storage

import (
	"encoding/json"
	"fmt"

	"github.com/teamfit/teamfit/internal/constants"
	"github.com/teamfit/teamfit/internal/models"
)

// ErrActiveParticipation is returned when a member tries to join a
// challenge they are already actively participating in.
var ErrActiveParticipation = fmt.Errorf("already participating in this challenge")

// Store is the record store over all collections. Every mutating call reads
// the whole collection from the backend, applies the change, and writes the
// whole collection back; there is no transaction spanning collections.
//
// Goals live only in the global goals collection: the per-member view is a
// projection over it, so the two can never diverge. Challenge
// participations are the opposite, embedded on the member record with no
// global collection.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Init creates the storage location and seeds the starter catalogs.
func (s *Store) Init() error {
	if err := s.backend.Init(); err != nil {
		return err
	}
	return s.seedCatalogs()
}

// Load opens the storage location and seeds the starter catalogs if they
// are missing or empty. Seeding is deterministic and idempotent: once a
// catalog is persisted, later loads leave it untouched.
func (s *Store) Load() error {
	if err := s.backend.Load(); err != nil {
		return err
	}
	return s.seedCatalogs()
}

func (s *Store) Close() error {
	return s.backend.Close()
}

// Path returns the backing storage path.
//
// Concurrency note: the store is single-process by design. A second process
// sharing the path can silently clobber writes (last whole-collection write
// wins); 'teamfit doctor' checks for this.
func (s *Store) Path() string {
	return s.backend.Path()
}

// Backend exposes the persistence primitive for diagnostics and backups.
func (s *Store) Backend() Backend {
	return s.backend
}

func (s *Store) seedCatalogs() error {
	templates, err := loadSlice[models.ExerciseTemplate](s.backend, constants.KeyExerciseTemplates)
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		if err := saveSlice(s.backend, constants.KeyExerciseTemplates, DefaultExerciseTemplates()); err != nil {
			return err
		}
	}

	challenges, err := loadSlice[models.Challenge](s.backend, constants.KeyChallenges)
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		if err := saveSlice(s.backend, constants.KeyChallenges, DefaultChallenges()); err != nil {
			return err
		}
	}
	return nil
}

func loadSlice[T any](b Backend, key string) ([]T, error) {
	data, found, err := b.read(key)
	if err != nil {
		return nil, err
	}
	if !found || len(data) == 0 {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s collection: %w", key, err)
	}
	return records, nil
}

func saveSlice[T any](b Backend, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s collection: %w", key, err)
	}
	return b.write(key, data)
}

// Members

func (s *Store) Members() ([]models.Member, error) {
	return loadSlice[models.Member](s.backend, constants.KeyMembers)
}

// Member returns the member with the given ID; found is false when absent.
func (s *Store) Member(id string) (models.Member, bool, error) {
	members, err := s.Members()
	if err != nil {
		return models.Member{}, false, err
	}
	for _, m := range members {
		if m.ID == id {
			return m, true, nil
		}
	}
	return models.Member{}, false, nil
}

func (s *Store) AddMember(member models.Member) error {
	members, err := s.Members()
	if err != nil {
		return err
	}
	members = append(members, member)
	return saveSlice(s.backend, constants.KeyMembers, members)
}

// UpdateMember merges the patch into the stored record. Unknown IDs are a
// silent no-op.
func (s *Store) UpdateMember(id string, patch models.MemberPatch) error {
	members, err := s.Members()
	if err != nil {
		return err
	}
	for i := range members {
		if members[i].ID == id {
			members[i].Apply(patch)
			return saveSlice(s.backend, constants.KeyMembers, members)
		}
	}
	return nil
}

// DeleteMember removes the member record only. Workout logs and goals that
// reference the ID are deliberately left in place.
func (s *Store) DeleteMember(id string) error {
	members, err := s.Members()
	if err != nil {
		return err
	}
	filtered := members[:0]
	for _, m := range members {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	return saveSlice(s.backend, constants.KeyMembers, filtered)
}

// Workout logs

func (s *Store) WorkoutLogs() ([]models.WorkoutLog, error) {
	return loadSlice[models.WorkoutLog](s.backend, constants.KeyWorkoutLogs)
}

// MemberWorkoutLogs returns the logs recorded for one member, in stored
// order.
func (s *Store) MemberWorkoutLogs(memberID string) ([]models.WorkoutLog, error) {
	logs, err := s.WorkoutLogs()
	if err != nil {
		return nil, err
	}
	var filtered []models.WorkoutLog
	for _, l := range logs {
		if l.MemberID == memberID {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}

func (s *Store) AddWorkoutLog(log models.WorkoutLog) error {
	logs, err := s.WorkoutLogs()
	if err != nil {
		return err
	}
	logs = append(logs, log)
	return saveSlice(s.backend, constants.KeyWorkoutLogs, logs)
}

func (s *Store) UpdateWorkoutLog(id string, patch models.WorkoutLogPatch) error {
	logs, err := s.WorkoutLogs()
	if err != nil {
		return err
	}
	for i := range logs {
		if logs[i].ID == id {
			logs[i].Apply(patch)
			return saveSlice(s.backend, constants.KeyWorkoutLogs, logs)
		}
	}
	return nil
}

// Encouragements

func (s *Store) Encouragements() ([]models.Encouragement, error) {
	return loadSlice[models.Encouragement](s.backend, constants.KeyEncouragements)
}

// EncouragementsFor returns the messages sent to one member.
func (s *Store) EncouragementsFor(memberID string) ([]models.Encouragement, error) {
	all, err := s.Encouragements()
	if err != nil {
		return nil, err
	}
	var filtered []models.Encouragement
	for _, e := range all {
		if e.ToMemberID == memberID {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *Store) AddEncouragement(e models.Encouragement) error {
	all, err := s.Encouragements()
	if err != nil {
		return err
	}
	all = append(all, e)
	return saveSlice(s.backend, constants.KeyEncouragements, all)
}

// Goals

func (s *Store) Goals() ([]models.Goal, error) {
	return loadSlice[models.Goal](s.backend, constants.KeyGoals)
}

// MemberGoals is the per-member projection over the global goals
// collection.
func (s *Store) MemberGoals(memberID string) ([]models.Goal, error) {
	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}
	var filtered []models.Goal
	for _, g := range goals {
		if g.MemberID == memberID {
			filtered = append(filtered, g)
		}
	}
	return filtered, nil
}

// AddGoal appends a goal for the member to the global collection. The
// member does not have to exist: orphaned goals are tolerated the same way
// non-cascading member deletion leaves them behind.
func (s *Store) AddGoal(memberID string, goal models.Goal) error {
	goal.MemberID = memberID
	goal.Status = models.DeriveGoalStatus(goal.Progress)
	goals, err := s.Goals()
	if err != nil {
		return err
	}
	goals = append(goals, goal)
	return saveSlice(s.backend, constants.KeyGoals, goals)
}

// UpdateGoal merges the patch into the member's goal. Status is recomputed
// from progress; only the explicit failed override sticks. Unknown IDs are
// a silent no-op.
func (s *Store) UpdateGoal(memberID, goalID string, patch models.GoalPatch) error {
	goals, err := s.Goals()
	if err != nil {
		return err
	}
	for i := range goals {
		if goals[i].ID == goalID && goals[i].MemberID == memberID {
			goals[i].Apply(patch)
			return saveSlice(s.backend, constants.KeyGoals, goals)
		}
	}
	return nil
}

// Challenges

// Challenges returns the challenge catalog. The catalog is seeded at
// Init/Load, so an empty result means the store is not loaded.
func (s *Store) Challenges() ([]models.Challenge, error) {
	return loadSlice[models.Challenge](s.backend, constants.KeyChallenges)
}

func (s *Store) Challenge(id string) (models.Challenge, bool, error) {
	challenges, err := s.Challenges()
	if err != nil {
		return models.Challenge{}, false, err
	}
	for _, c := range challenges {
		if c.ID == id {
			return c, true, nil
		}
	}
	return models.Challenge{}, false, nil
}

// JoinChallenge starts a participation for the member. It is rejected with
// ErrActiveParticipation while an active (non-completed) participation for
// the same challenge exists; the participation list is left unchanged.
func (s *Store) JoinChallenge(memberID string, participation models.ChallengeParticipation) error {
	member, found, err := s.Member(memberID)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("member not found: %s", memberID)
	}
	for _, p := range member.Challenges {
		if p.ChallengeID == participation.ChallengeID && !p.Completed {
			return ErrActiveParticipation
		}
	}
	return s.SetMemberChallenges(memberID, append(member.Challenges, participation))
}

// SetMemberChallenges replaces the member's participation list wholesale.
func (s *Store) SetMemberChallenges(memberID string, participations []models.ChallengeParticipation) error {
	if participations == nil {
		participations = []models.ChallengeParticipation{}
	}
	return s.UpdateMember(memberID, models.MemberPatch{Challenges: participations})
}

// Exercise templates

// ExerciseTemplates returns the exercise catalog, seeded at Init/Load.
func (s *Store) ExerciseTemplates() ([]models.ExerciseTemplate, error) {
	return loadSlice[models.ExerciseTemplate](s.backend, constants.KeyExerciseTemplates)
}

func (s *Store) ExerciseTemplate(id string) (models.ExerciseTemplate, bool, error) {
	templates, err := s.ExerciseTemplates()
	if err != nil {
		return models.ExerciseTemplate{}, false, err
	}
	for _, t := range templates {
		if t.ID == id {
			return t, true, nil
		}
	}
	return models.ExerciseTemplate{}, false, nil
}

// Programs

func (s *Store) Programs() ([]models.WorkoutProgram, error) {
	return loadSlice[models.WorkoutProgram](s.backend, constants.KeyPrograms)
}

// SaveProgram inserts or replaces a program by ID.
func (s *Store) SaveProgram(program models.WorkoutProgram) error {
	programs, err := s.Programs()
	if err != nil {
		return err
	}
	for i := range programs {
		if programs[i].ID == program.ID {
			programs[i] = program
			return saveSlice(s.backend, constants.KeyPrograms, programs)
		}
	}
	programs = append(programs, program)
	return saveSlice(s.backend, constants.KeyPrograms, programs)
}
