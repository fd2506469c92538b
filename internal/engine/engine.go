// Package engine composes the course registry, quiz attempt log, progress
// tracker, and badge evaluator behind a single facade.
//
// Every mutating call runs to completion in order: in-memory update, badge
// re-evaluation against the fresh progress snapshot, then a synchronous
// save of every entity whose value changed. There is no concurrency; the
// facade is intended for single-threaded, event-driven use.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/learnai/internal/badges"
	"github.com/abhisek/learnai/internal/course"
	"github.com/abhisek/learnai/internal/progress"
	"github.com/abhisek/learnai/internal/quizlog"
	"github.com/abhisek/learnai/internal/store"
)

// Storage keys, one independent blob per entity. Kept stable so existing
// data keeps loading.
const (
	keyCurrentCourse = "learnai-current-course"
	keyAllCourses    = "learnai-all-courses"
	keyQuizAttempts  = "learnai-quiz-attempts"
	keyUserProgress  = "learnai-user-progress"
	keyBadges        = "learnai-badges"
)

// Options configures an Engine.
type Options struct {
	// Logger receives fallback and no-op diagnostics. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Now supplies the current time for streak recomputation and badge
	// stamps. Defaults to time.Now.
	Now func() time.Time
}

// Engine is the facade the presentation layer talks to.
type Engine struct {
	store store.Store
	log   *slog.Logger
	now   func() time.Time

	registry *course.Registry
	attempts *quizlog.Log
	progress progress.UserProgress
	badges   []badges.Badge

	pending []badges.Badge // unlocked since the last ConsumeUnlocked
}

// New loads all persisted state, falling back to per-entity defaults on
// absence or corruption, then runs the once-per-activation streak
// recomputation and an initial badge evaluation.
func New(ctx context.Context, st store.Store, opts Options) (*Engine, error) {
	e := &Engine{
		store: st,
		log:   opts.Logger,
		now:   opts.Now,
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if e.now == nil {
		e.now = time.Now
	}

	if err := e.load(ctx); err != nil {
		return nil, err
	}

	dirty := []string{}
	if e.progress.RecomputeStreak(e.now()) {
		dirty = append(dirty, keyUserProgress)
	}
	if err := e.finalize(ctx, dirty...); err != nil {
		return nil, err
	}
	return e, nil
}

// load pulls the five blobs out of the store. A missing or corrupt blob
// resets that entity alone; the others are unaffected.
func (e *Engine) load(ctx context.Context) error {
	var active *course.Course
	var current course.Course
	found, err := e.loadEntity(ctx, keyCurrentCourse, &current)
	if err != nil {
		return err
	}
	if found {
		active = &current
	}

	var courses []course.Course
	if _, err := e.loadEntity(ctx, keyAllCourses, &courses); err != nil {
		return err
	}
	e.registry = course.NewRegistry(courses, active)

	var attempts []quizlog.Attempt
	if _, err := e.loadEntity(ctx, keyQuizAttempts, &attempts); err != nil {
		return err
	}
	e.attempts = quizlog.NewLog(attempts)

	e.progress = progress.Default()
	if _, err := e.loadEntity(ctx, keyUserProgress, &e.progress); err != nil {
		return err
	}

	var set []badges.Badge
	found, err = e.loadEntity(ctx, keyBadges, &set)
	if err != nil {
		return err
	}
	if !found || len(set) == 0 {
		set = badges.Catalog()
	}
	e.badges = set

	return nil
}

// loadEntity reads one blob. Corrupt blobs are logged and reported as
// absent so the caller falls back to the entity default; only I/O errors
// propagate.
func (e *Engine) loadEntity(ctx context.Context, key string, dest any) (bool, error) {
	found, err := e.store.Load(ctx, key, dest)
	if err != nil {
		var de *store.ErrDeserialization
		if errors.As(err, &de) {
			e.log.Warn("corrupt blob, resetting entity to default", "key", key, "error", err)
			return false, nil
		}
		return false, err
	}
	return found, nil
}

// ActiveCourse returns a copy of the active course, or nil when none.
func (e *Engine) ActiveCourse() *course.Course {
	a := e.registry.Active()
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// Courses returns every registered course in insertion order.
func (e *Engine) Courses() []course.Course {
	return e.registry.Courses()
}

// Attempts returns the full quiz attempt sequence, oldest first.
func (e *Engine) Attempts() []quizlog.Attempt {
	return e.attempts.All()
}

// RecentAttempts returns the n most recent attempts, newest first.
func (e *Engine) RecentAttempts(n int) []quizlog.Attempt {
	return e.attempts.Recent(n)
}

// Stats aggregates the attempt log.
func (e *Engine) Stats() quizlog.Stats {
	return e.attempts.Stats()
}

// StatsByCourse aggregates one course's attempts.
func (e *Engine) StatsByCourse(courseID string) quizlog.Stats {
	return e.attempts.StatsByCourse(courseID)
}

// AttemptsByCourse returns one course's attempts, oldest first.
func (e *Engine) AttemptsByCourse(courseID string) []quizlog.Attempt {
	return e.attempts.ByCourse(courseID)
}

// Progress returns the current progress snapshot.
func (e *Engine) Progress() progress.UserProgress {
	return e.progress
}

// Badges returns the badge set.
func (e *Engine) Badges() []badges.Badge {
	out := make([]badges.Badge, len(e.badges))
	copy(out, e.badges)
	return out
}

// ConsumeUnlocked returns the badges unlocked since the last call and
// clears the accumulator. Lets a presentation layer poll for unlock
// notifications.
func (e *Engine) ConsumeUnlocked() []badges.Badge {
	out := e.pending
	e.pending = nil
	return out
}

// SetActiveCourse makes the supplied course active, upserting it into the
// registry. A nil course clears the active reference.
func (e *Engine) SetActiveCourse(ctx context.Context, c *course.Course) error {
	if err := e.registry.SetActive(c); err != nil {
		return err
	}
	dirty := []string{keyCurrentCourse}
	if c != nil {
		dirty = append(dirty, keyAllCourses)
	}
	return e.finalize(ctx, dirty...)
}

// UpdateCourse replaces the registered course with the supplied complete
// value and makes it active. Callers pass whole Course values; the
// registry performs no partial merges.
func (e *Engine) UpdateCourse(ctx context.Context, c course.Course) error {
	if err := e.registry.Update(c); err != nil {
		return err
	}
	return e.finalize(ctx, keyCurrentCourse, keyAllCourses)
}

// SwitchActiveCourse points the active reference at a registered course.
// Unknown ids are a silent no-op.
func (e *Engine) SwitchActiveCourse(ctx context.Context, courseID string) error {
	if !e.registry.SwitchActive(courseID) {
		e.log.Debug("switch to unknown course id ignored", "courseId", courseID)
		return nil
	}
	return e.finalize(ctx, keyCurrentCourse)
}

// ClearActiveCourse drops the active reference. The registry collection
// and all other state are untouched.
func (e *Engine) ClearActiveCourse(ctx context.Context) error {
	e.registry.ClearActive()
	return e.finalize(ctx, keyCurrentCourse)
}

// RecordQuizAttempt appends an attempt to the log.
func (e *Engine) RecordQuizAttempt(ctx context.Context, a quizlog.Attempt) error {
	e.attempts.Record(a)
	return e.finalize(ctx, keyQuizAttempts)
}

// ApplyProgressAction routes a learning event into the progress tracker.
func (e *Engine) ApplyProgressAction(ctx context.Context, action progress.Action, data progress.ActionData) (progress.Result, error) {
	res, err := e.progress.Apply(action, data)
	if err != nil {
		return progress.Result{}, err
	}
	if err := e.finalize(ctx, keyUserProgress); err != nil {
		return progress.Result{}, err
	}
	return res, nil
}

// finalize re-evaluates badges against the latest progress snapshot, then
// persists every dirty entity. Badge evaluation runs on every mutation,
// not only progress actions: several criteria read counters fed by
// different action kinds, and streak badges can unlock at startup.
func (e *Engine) finalize(ctx context.Context, dirty ...string) error {
	updated, unlocked := badges.Evaluate(e.progress, e.badges, e.now())
	if len(unlocked) > 0 {
		e.badges = updated
		e.pending = append(e.pending, unlocked...)
		dirty = append(dirty, keyBadges)
	}

	for _, key := range dirty {
		if err := e.save(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) save(ctx context.Context, key string) error {
	var err error
	switch key {
	case keyCurrentCourse:
		if a := e.registry.Active(); a != nil {
			err = e.store.Save(ctx, keyCurrentCourse, a)
		} else {
			err = e.store.Remove(ctx, keyCurrentCourse)
		}
	case keyAllCourses:
		err = e.store.Save(ctx, keyAllCourses, e.registry.Courses())
	case keyQuizAttempts:
		err = e.store.Save(ctx, keyQuizAttempts, e.attempts.All())
	case keyUserProgress:
		err = e.store.Save(ctx, keyUserProgress, e.progress)
	case keyBadges:
		err = e.store.Save(ctx, keyBadges, e.badges)
	}
	if err != nil {
		return fmt.Errorf("sync %s: %w", key, err)
	}
	return nil
}

// Reset removes every persisted blob and restores in-memory defaults.
func (e *Engine) Reset(ctx context.Context) error {
	for _, key := range []string{keyCurrentCourse, keyAllCourses, keyQuizAttempts, keyUserProgress, keyBadges} {
		if err := e.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("reset %s: %w", key, err)
		}
	}
	e.registry = course.NewRegistry(nil, nil)
	e.attempts = quizlog.NewLog(nil)
	e.progress = progress.Default()
	e.badges = badges.Catalog()
	e.pending = nil
	return nil
}
