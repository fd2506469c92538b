package course

// Registry owns the collection of known courses and the active-course
// reference. Courses are never deleted; only the active reference can be
// cleared. Upserts match by id and preserve insertion order.
type Registry struct {
	courses []Course
	active  *Course
}

// NewRegistry builds a registry from previously persisted state. active may
// be nil when no course is active.
func NewRegistry(courses []Course, active *Course) *Registry {
	return &Registry{courses: courses, active: active}
}

// Active returns the active course, or nil when none is set.
func (r *Registry) Active() *Course {
	return r.active
}

// Courses returns the registered courses in insertion order.
func (r *Registry) Courses() []Course {
	out := make([]Course, len(r.courses))
	copy(out, r.courses)
	return out
}

// Find returns the registered course with the given id.
func (r *Registry) Find(id string) (*Course, bool) {
	for i := range r.courses {
		if r.courses[i].ID == id {
			return &r.courses[i], true
		}
	}
	return nil, false
}

// SetActive replaces the active course reference. A non-nil course is
// validated and upserted into the collection; nil clears the reference.
func (r *Registry) SetActive(c *Course) error {
	if c == nil {
		r.active = nil
		return nil
	}
	if err := Validate(c); err != nil {
		return err
	}
	r.upsert(*c)
	cc := *c
	r.active = &cc
	return nil
}

// Update replaces the registered course matching c.ID with the supplied
// complete value (appending when absent) and makes it active.
func (r *Registry) Update(c Course) error {
	if err := Validate(&c); err != nil {
		return err
	}
	r.upsert(c)
	r.active = &c
	return nil
}

// SwitchActive points the active reference at the registered course with
// the given id. Unknown ids leave the active reference unchanged and
// report false; this is not an error.
func (r *Registry) SwitchActive(id string) bool {
	c, ok := r.Find(id)
	if !ok {
		return false
	}
	cc := *c
	r.active = &cc
	return true
}

// ClearActive drops the active reference. The collection is untouched.
func (r *Registry) ClearActive() {
	r.active = nil
}

func (r *Registry) upsert(c Course) {
	for i := range r.courses {
		if r.courses[i].ID == c.ID {
			r.courses[i] = c
			return
		}
	}
	r.courses = append(r.courses, c)
}
