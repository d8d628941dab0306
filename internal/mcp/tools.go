// ABOUTME: MCP tool implementations for lift.
// ABOUTME: Profiles, exercises, session logging, records, trends, volume, and exports.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lift/internal/metrics"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/store"
)

const defaultListDays = 14

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_profiles",
		Description: "List profiles and show which one is active",
	}, s.handleListProfiles)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_active_profile",
		Description: "Switch the active profile by ID, ID prefix, or name",
	}, s.handleSetActiveProfile)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise library",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the library",
	}, s.handleAddExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_exercise",
		Description: "Remove an exercise from the library; logged sessions keep their history",
	}, s.handleDeleteExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Log a workout session with sets per exercise",
	}, s.handleLogSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List recent sessions for a profile, newest first",
	}, s.handleListSessions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a session by ID or ID prefix",
	}, s.handleDeleteSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "personal_records",
		Description: "Best estimated one-rep max per exercise",
	}, s.handlePersonalRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "trend",
		Description: "Estimated one-rep max per session for one exercise, oldest first",
	}, s.handleTrend)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "window_volume",
		Description: "Total volume (weight x reps) between two dates inclusive",
	}, s.handleWindowVolume)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_range",
		Description: "Export sessions in a date range as JSON, YAML, CSV, or Markdown",
	}, s.handleExportRange)
}

// Tool input/output types

type simpleOutput struct {
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

type listProfilesInput struct{}

type profileView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type listProfilesOutput struct {
	Profiles []profileView `json:"profiles"`
}

type setActiveProfileInput struct {
	Profile string `json:"profile" jsonschema:"Profile ID, ID prefix, or name"`
}

type listExercisesInput struct {
	Filter string `json:"filter,omitempty" jsonschema:"all, active (default), or inactive"`
}

type listExercisesOutput struct {
	Exercises []models.Exercise `json:"exercises"`
}

type addExerciseInput struct {
	Name      string `json:"name" jsonschema:"Exercise name"`
	Category  string `json:"category,omitempty" jsonschema:"Category such as Push, Pull, Legs (default Other)"`
	Equipment string `json:"equipment,omitempty" jsonschema:"Equipment such as Barbell, Dumbbell, Machine (default Other)"`
}

type exerciseOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Warning string `json:"warning,omitempty"`
}

type deleteExerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise ID, ID prefix, or name"`
}

type setInput struct {
	Weight float64  `json:"weight" jsonschema:"Weight lifted"`
	Reps   float64  `json:"reps" jsonschema:"Repetitions"`
	RPE    *float64 `json:"rpe,omitempty" jsonschema:"Rate of perceived exertion"`
}

type entryInput struct {
	Exercise  string     `json:"exercise" jsonschema:"Exercise ID, ID prefix, or name"`
	Sets      []setInput `json:"sets,omitempty" jsonschema:"Sets performed"`
	Shorthand string     `json:"shorthand,omitempty" jsonschema:"Sets as WEIGHTxREPS[@RPE] separated by commas, e.g. 135x5,135x5@8"`
}

type logSessionInput struct {
	Profile  string       `json:"profile,omitempty" jsonschema:"Profile ID or name (default active profile)"`
	Date     string       `json:"date,omitempty" jsonschema:"Session date YYYY-MM-DD (default today)"`
	Template string       `json:"template,omitempty" jsonschema:"Day template key such as day1_push; orders entries and sets the day type"`
	Notes    string       `json:"notes,omitempty" jsonschema:"Session notes"`
	Entries  []entryInput `json:"entries" jsonschema:"Exercises with their sets"`
}

type sessionOutput struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Entries     int     `json:"entries"`
	Sets        int     `json:"sets"`
	TotalVolume float64 `json:"total_volume"`
	Message     string  `json:"message"`
	Warning     string  `json:"warning,omitempty"`
}

type listSessionsInput struct {
	Profile string `json:"profile,omitempty" jsonschema:"Profile ID or name (default active profile)"`
	Days    int    `json:"days,omitempty" jsonschema:"Only sessions from the last N days (default 14, 0 for all with limit)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max results"`
}

type listSessionsOutput struct {
	Sessions []models.Session `json:"sessions"`
}

type deleteSessionInput struct {
	ID string `json:"id" jsonschema:"Session ID or prefix"`
}

type recordsInput struct {
	Profile string `json:"profile,omitempty" jsonschema:"Profile ID or name (default active profile)"`
	Limit   int    `json:"limit,omitempty" jsonschema:"Max records (default all)"`
}

type recordsOutput struct {
	Formula string                   `json:"formula"`
	Units   string                   `json:"units"`
	Records []metrics.PersonalRecord `json:"records"`
}

type trendInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise ID, ID prefix, or name"`
	Profile  string `json:"profile,omitempty" jsonschema:"Profile ID or name (default active profile)"`
}

type trendOutput struct {
	ExerciseID   string               `json:"exercise_id"`
	ExerciseName string               `json:"exercise_name"`
	Formula      string               `json:"formula"`
	Points       []metrics.TrendPoint `json:"points"`
}

type windowVolumeInput struct {
	Start   string `json:"start,omitempty" jsonschema:"First day YYYY-MM-DD (default 6 days before end)"`
	End     string `json:"end,omitempty" jsonschema:"Last day YYYY-MM-DD inclusive (default today)"`
	Profile string `json:"profile,omitempty" jsonschema:"Profile ID or name (default active profile)"`
}

type windowVolumeOutput struct {
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Sessions int     `json:"sessions"`
	Volume   float64 `json:"volume"`
	Units    string  `json:"units"`
}

type exportRangeInput struct {
	Format  string `json:"format,omitempty" jsonschema:"json (default), yaml, csv, or markdown"`
	Start   string `json:"start,omitempty" jsonschema:"First day YYYY-MM-DD (default 30 days before end)"`
	End     string `json:"end,omitempty" jsonschema:"Last day YYYY-MM-DD inclusive (default today)"`
	Profile string `json:"profile,omitempty" jsonschema:"Profile ID or name (default active profile)"`
}

type exportRangeOutput struct {
	Format   string `json:"format"`
	Sessions int    `json:"sessions"`
	Content  string `json:"content"`
}

// Tool handlers

func (s *Server) handleListProfiles(ctx context.Context, req *mcp.CallToolRequest, input listProfilesInput) (*mcp.CallToolResult, listProfilesOutput, error) {
	active, _ := s.store.ActiveProfile()
	out := listProfilesOutput{Profiles: []profileView{}}
	for _, p := range s.store.Profiles() {
		out.Profiles = append(out.Profiles, profileView{ID: p.ID, Name: p.Name, Active: p.ID == active.ID})
	}
	return nil, out, nil
}

func (s *Server) handleSetActiveProfile(ctx context.Context, req *mcp.CallToolRequest, input setActiveProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	p, err := s.store.Profile(input.Profile)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	warning, err := persistWarning(s.store.SetActiveProfile(p.ID))
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to set active profile: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Active profile: %s (%s)", p.Name, p.ShortID()), Warning: warning}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, listExercisesOutput, error) {
	filter := store.ExerciseFilter(strings.ToLower(input.Filter))
	switch filter {
	case "":
		filter = store.FilterActive
	case store.FilterAll, store.FilterActive, store.FilterInactive:
	default:
		return nil, listExercisesOutput{}, fmt.Errorf("unknown filter: %s", input.Filter)
	}

	exercises := s.store.Exercises(filter)
	if exercises == nil {
		exercises = []models.Exercise{}
	}
	return nil, listExercisesOutput{Exercises: exercises}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	ex, err := s.store.NewExercise(input.Name, input.Category, input.Equipment)
	if err != nil {
		return nil, exerciseOutput{}, err
	}
	if existing, ok := s.store.ExerciseNamed(ex.Name); ok {
		return nil, exerciseOutput{}, fmt.Errorf("exercise already exists: %s (%s)", existing.Name, existing.ShortID())
	}

	stored, err := s.store.UpsertExercise(ex)
	warning, err := persistWarning(err)
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	return nil, exerciseOutput{
		ID:      stored.ShortID(),
		Name:    stored.Name,
		Message: fmt.Sprintf("Added exercise: %s (ID: %s)", stored.Name, stored.ShortID()),
		Warning: warning,
	}, nil
}

func (s *Server) handleDeleteExercise(ctx context.Context, req *mcp.CallToolRequest, input deleteExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	ex, err := s.store.ResolveExercise(input.Exercise)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	warning, err := persistWarning(s.store.DeleteExercise(ex.ID))
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete exercise: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted exercise: %s", ex.Name), Warning: warning}, nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, sessionOutput, error) {
	profileID, err := s.profileID(input.Profile)
	if err != nil {
		return nil, sessionOutput{}, err
	}

	var entries []store.EntryInput
	for _, e := range input.Entries {
		ex, err := s.store.ResolveExercise(e.Exercise)
		if err != nil {
			return nil, sessionOutput{}, err
		}
		sets := make([]models.Set, 0, len(e.Sets))
		for _, in := range e.Sets {
			sets = append(sets, models.Set{Weight: in.Weight, Reps: in.Reps, RPE: in.RPE})
		}
		if e.Shorthand != "" {
			parsed, err := metrics.ParseSets(e.Shorthand)
			if err != nil {
				return nil, sessionOutput{}, err
			}
			sets = append(sets, parsed...)
		}
		entries = append(entries, store.EntryInput{ExerciseID: ex.ID, ExerciseName: ex.Name, Sets: sets})
	}

	in := store.SessionInput{ProfileID: profileID, Entries: entries}
	if input.Template != "" {
		in, err = s.store.SessionFromTemplate(input.Template, entries)
		if err != nil {
			return nil, sessionOutput{}, err
		}
		in.ProfileID = profileID
	}
	in.Notes = input.Notes
	if input.Date != "" {
		day, err := metrics.ParseDate(input.Date, s.store.Now().Location())
		if err != nil {
			return nil, sessionOutput{}, err
		}
		in.Date = store.Noon(day)
	}

	sess, err := s.store.NewSession(in)
	if err != nil {
		return nil, sessionOutput{}, err
	}
	stored, err := s.store.AddSession(sess)
	warning, err := persistWarning(err)
	if err != nil {
		return nil, sessionOutput{}, fmt.Errorf("failed to log session: %w", err)
	}

	var sets int
	for _, e := range stored.Entries {
		sets += len(e.Sets)
	}
	return nil, sessionOutput{
		ID:          stored.ShortID(),
		Date:        metrics.FormatDate(stored.DateISO),
		Entries:     len(stored.Entries),
		Sets:        sets,
		TotalVolume: stored.TotalVolume,
		Message:     fmt.Sprintf("Logged session %s: %d exercises, %d sets, volume %.0f", stored.ShortID(), len(stored.Entries), sets, stored.TotalVolume),
		Warning:     warning,
	}, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, listSessionsOutput, error) {
	profileID, err := s.profileID(input.Profile)
	if err != nil {
		return nil, listSessionsOutput{}, err
	}

	sessions := s.store.ProfileSessions(profileID)
	days := input.Days
	if days == 0 && input.Limit == 0 {
		days = defaultListDays
	}
	if days > 0 {
		sessions = metrics.SessionsInWindow(sessions, metrics.LastNDays(s.store.Now(), days))
	}
	if input.Limit > 0 && len(sessions) > input.Limit {
		sessions = sessions[:input.Limit]
	}
	if sessions == nil {
		sessions = []models.Session{}
	}
	return nil, listSessionsOutput{Sessions: sessions}, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input deleteSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	sess, err := s.store.Session(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	warning, err := persistWarning(s.store.DeleteSession(sess.ID))
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete session: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted session %s from %s", sess.ShortID(), metrics.FormatDate(sess.DateISO)),
		Warning: warning,
	}, nil
}

func (s *Server) handlePersonalRecords(ctx context.Context, req *mcp.CallToolRequest, input recordsInput) (*mcp.CallToolResult, recordsOutput, error) {
	profileID, err := s.profileID(input.Profile)
	if err != nil {
		return nil, recordsOutput{}, err
	}

	settings := s.store.Settings()
	sessions := metrics.SortOldestFirst(s.store.ProfileSessions(profileID))
	records := metrics.BestPersonalRecords(sessions, settings.Formula())
	if input.Limit > 0 && len(records) > input.Limit {
		records = records[:input.Limit]
	}
	if records == nil {
		records = []metrics.PersonalRecord{}
	}
	return nil, recordsOutput{
		Formula: settings.Formula().Label(),
		Units:   string(settings.Units),
		Records: records,
	}, nil
}

func (s *Server) handleTrend(ctx context.Context, req *mcp.CallToolRequest, input trendInput) (*mcp.CallToolResult, trendOutput, error) {
	profileID, err := s.profileID(input.Profile)
	if err != nil {
		return nil, trendOutput{}, err
	}

	out := trendOutput{Formula: s.store.Settings().Formula().Label()}
	ex, err := s.store.ResolveExercise(input.Exercise)
	switch {
	case err == nil:
		out.ExerciseID, out.ExerciseName = ex.ID, ex.Name
	case store.IsNotFound(err):
		// deleted exercises still have history under their old id
		out.ExerciseID = input.Exercise
	default:
		return nil, trendOutput{}, err
	}

	out.Points = metrics.TrendSeries(s.store.ProfileSessions(profileID), out.ExerciseID, s.store.Settings().Formula())
	if out.Points == nil {
		out.Points = []metrics.TrendPoint{}
	}
	return nil, out, nil
}

func (s *Server) handleWindowVolume(ctx context.Context, req *mcp.CallToolRequest, input windowVolumeInput) (*mcp.CallToolResult, windowVolumeOutput, error) {
	profileID, err := s.profileID(input.Profile)
	if err != nil {
		return nil, windowVolumeOutput{}, err
	}
	window, err := s.window(input.Start, input.End, 7)
	if err != nil {
		return nil, windowVolumeOutput{}, err
	}

	sessions := s.store.ProfileSessions(profileID)
	return nil, windowVolumeOutput{
		Start:    window.StartDate(),
		End:      window.EndDate(),
		Sessions: len(metrics.SessionsInWindow(sessions, window)),
		Volume:   metrics.WindowVolume(sessions, window.Start, window.End),
		Units:    string(s.store.Settings().Units),
	}, nil
}

func (s *Server) handleExportRange(ctx context.Context, req *mcp.CallToolRequest, input exportRangeInput) (*mcp.CallToolResult, exportRangeOutput, error) {
	profileID, err := s.profileID(input.Profile)
	if err != nil {
		return nil, exportRangeOutput{}, err
	}
	window, err := s.window(input.Start, input.End, 30)
	if err != nil {
		return nil, exportRangeOutput{}, err
	}

	payload := metrics.ToExportPayload(s.store.Sessions(), s.store.Settings(), profileID, window, s.store.Now())
	format := strings.ToLower(input.Format)
	if format == "" {
		format = "json"
	}

	var content string
	switch format {
	case "json":
		data, err := payload.JSON()
		if err != nil {
			return nil, exportRangeOutput{}, err
		}
		content = string(data)
	case "yaml":
		data, err := payload.YAML()
		if err != nil {
			return nil, exportRangeOutput{}, err
		}
		content = string(data)
	case "csv":
		content, err = metrics.ToCSV(payload.Sessions, payload.E1RMFormula)
		if err != nil {
			return nil, exportRangeOutput{}, err
		}
	case "markdown":
		content = payload.Markdown()
	default:
		return nil, exportRangeOutput{}, fmt.Errorf("unknown format: %s", input.Format)
	}

	return nil, exportRangeOutput{Format: format, Sessions: len(payload.Sessions), Content: content}, nil
}

// window builds an inclusive day window; a blank end means today and a blank
// start means defaultDays days ending at end.
func (s *Server) window(start, end string, defaultDays int) (metrics.Window, error) {
	endDay := s.store.Now()
	if end != "" {
		d, err := metrics.ParseDate(end, endDay.Location())
		if err != nil {
			return metrics.Window{}, err
		}
		endDay = d
	}
	if start == "" {
		return metrics.LastNDays(endDay, defaultDays), nil
	}
	startDay, err := metrics.ParseDate(start, endDay.Location())
	if err != nil {
		return metrics.Window{}, err
	}
	if startDay.After(endDay) {
		return metrics.Window{}, fmt.Errorf("start %s is after end %s", metrics.FormatDate(startDay), metrics.FormatDate(endDay))
	}
	return metrics.NewWindow(startDay, endDay), nil
}
