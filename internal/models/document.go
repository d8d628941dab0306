// ABOUTME: Root document holding the entire persisted state.
// ABOUTME: Provides deep copy and lookup helpers; mutation lives in the store package.
package models

// CurrentVersion is the document layout version written by this build.
const CurrentVersion = 1

// Document is the aggregate root persisted as a single blob.
type Document struct {
	Version         int        `json:"version" yaml:"version"`
	Settings        Settings   `json:"settings" yaml:"settings"`
	Profiles        []Profile  `json:"profiles" yaml:"profiles"`
	ActiveProfileID *string    `json:"activeProfileId" yaml:"active_profile_id"`
	Exercises       []Exercise `json:"exercises" yaml:"exercises"`
	Sessions        []Session  `json:"sessions" yaml:"sessions"`
}

// ActiveID returns the active profile id, or "" when none is active.
func (d *Document) ActiveID() string {
	if d.ActiveProfileID == nil {
		return ""
	}
	return *d.ActiveProfileID
}

// SetActiveID points activeProfileId at id; an empty id clears it.
func (d *Document) SetActiveID(id string) {
	if id == "" {
		d.ActiveProfileID = nil
		return
	}
	d.ActiveProfileID = &id
}

// FindProfile returns the index of the profile with the given id, or -1.
func (d *Document) FindProfile(id string) int {
	for i := range d.Profiles {
		if d.Profiles[i].ID == id {
			return i
		}
	}
	return -1
}

// FindExercise returns the index of the exercise with the given id, or -1.
func (d *Document) FindExercise(id string) int {
	for i := range d.Exercises {
		if d.Exercises[i].ID == id {
			return i
		}
	}
	return -1
}

// FindSession returns the index of the session with the given id, or -1.
func (d *Document) FindSession(id string) int {
	for i := range d.Sessions {
		if d.Sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can mutate it without aliasing.
func (d *Document) Clone() *Document {
	out := &Document{
		Version:  d.Version,
		Settings: d.Settings,
	}
	if d.ActiveProfileID != nil {
		out.SetActiveID(*d.ActiveProfileID)
	}
	if d.Profiles != nil {
		out.Profiles = append(make([]Profile, 0, len(d.Profiles)), d.Profiles...)
	}
	if d.Exercises != nil {
		out.Exercises = append(make([]Exercise, 0, len(d.Exercises)), d.Exercises...)
	}
	if d.Sessions != nil {
		out.Sessions = make([]Session, len(d.Sessions))
		for i, s := range d.Sessions {
			out.Sessions[i] = s.Clone()
		}
	}
	return out
}
