package course

import (
	"errors"
	"testing"
)

func testCourse(id, topic string) Course {
	return Course{
		ID:    id,
		Topic: topic,
		Subtopics: []Subtopic{
			{
				ID:   1,
				Name: "Basics",
				Quiz: []Question{
					{ID: 1, Kind: KindMultipleChoice, Prompt: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"},
				},
			},
		},
		FinalQuiz: []Question{
			{ID: 1, Kind: KindFreeText, Prompt: "q", CorrectAnswer: "a"},
		},
	}
}

func TestSetActiveUpserts(t *testing.T) {
	r := NewRegistry(nil, nil)
	c := testCourse("c1", "Go")

	if err := r.SetActive(&c); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	if a := r.Active(); a == nil || a.ID != "c1" {
		t.Fatalf("Active = %v, want c1", a)
	}
	if got := len(r.Courses()); got != 1 {
		t.Fatalf("len(Courses) = %d, want 1", got)
	}

	// Setting the same course again must not duplicate it.
	if err := r.SetActive(&c); err != nil {
		t.Fatalf("second SetActive failed: %v", err)
	}
	if got := len(r.Courses()); got != 1 {
		t.Errorf("len(Courses) after repeat = %d, want 1", got)
	}
}

func TestSetActiveNilClears(t *testing.T) {
	c := testCourse("c1", "Go")
	r := NewRegistry([]Course{c}, &c)

	if err := r.SetActive(nil); err != nil {
		t.Fatalf("SetActive(nil) failed: %v", err)
	}
	if r.Active() != nil {
		t.Error("Active not cleared")
	}
	if got := len(r.Courses()); got != 1 {
		t.Errorf("len(Courses) = %d, want 1 (collection untouched)", got)
	}
}

func TestUpdatePreservesInsertionOrder(t *testing.T) {
	c1 := testCourse("c1", "Go")
	c2 := testCourse("c2", "Rust")
	r := NewRegistry([]Course{c1, c2}, nil)

	updated := testCourse("c1", "Go, revised")
	if err := r.Update(updated); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	courses := r.Courses()
	if len(courses) != 2 {
		t.Fatalf("len(Courses) = %d, want 2", len(courses))
	}
	if courses[0].ID != "c1" || courses[1].ID != "c2" {
		t.Errorf("order = [%s %s], want [c1 c2]", courses[0].ID, courses[1].ID)
	}
	if courses[0].Topic != "Go, revised" {
		t.Errorf("c1 topic = %q, want replacement applied", courses[0].Topic)
	}
	if a := r.Active(); a == nil || a.ID != "c1" {
		t.Errorf("Active = %v, want updated course", a)
	}
}

func TestSwitchActive(t *testing.T) {
	c1 := testCourse("c1", "Go")
	c2 := testCourse("c2", "Rust")
	r := NewRegistry([]Course{c1, c2}, &c1)

	if !r.SwitchActive("c2") {
		t.Fatal("SwitchActive(c2) = false, want true")
	}
	if a := r.Active(); a == nil || a.ID != "c2" {
		t.Fatalf("Active = %v, want c2", a)
	}

	// Unknown id: no-op, active unchanged.
	if r.SwitchActive("c9") {
		t.Error("SwitchActive(c9) = true, want false")
	}
	if a := r.Active(); a == nil || a.ID != "c2" {
		t.Errorf("Active after unknown switch = %v, want c2", a)
	}
}

func TestClearActiveKeepsCollection(t *testing.T) {
	c := testCourse("c1", "Go")
	r := NewRegistry([]Course{c}, &c)

	r.ClearActive()
	if r.Active() != nil {
		t.Error("Active not cleared")
	}
	if _, ok := r.Find("c1"); !ok {
		t.Error("course lost from collection after ClearActive")
	}
}

func TestSetActiveRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Course)
	}{
		{"empty id", func(c *Course) { c.ID = "" }},
		{"no subtopics", func(c *Course) { c.Subtopics = nil }},
		{"empty final quiz", func(c *Course) { c.FinalQuiz = nil }},
		{"current subtopic out of range", func(c *Course) { c.CurrentSubtopic = 5 }},
		{"mcq without options", func(c *Course) { c.Subtopics[0].Quiz[0].Options = nil }},
		{"free-text with options", func(c *Course) { c.FinalQuiz[0].Options = []string{"a"} }},
		{"unknown kind", func(c *Course) { c.FinalQuiz[0].Kind = "essay" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(nil, nil)
			c := testCourse("c1", "Go")
			tt.mutate(&c)

			err := r.SetActive(&c)
			var iv *ErrInvariantViolation
			if !errors.As(err, &iv) {
				t.Fatalf("SetActive error = %v, want *ErrInvariantViolation", err)
			}
			if r.Active() != nil || len(r.Courses()) != 0 {
				t.Error("registry mutated despite rejection")
			}
		})
	}
}
