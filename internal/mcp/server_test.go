// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Handlers are called directly against a memory-backed store.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lift/internal/storage"
	"github.com/harperreed/lift/internal/store"
)

var testNow = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

// setupTestServer creates a server over a freshly seeded in-memory store.
func setupTestServer(t *testing.T) (*Server, *storage.Memory) {
	t.Helper()

	mem := storage.NewMemory()
	n := 0
	st, err := store.Open(mem,
		store.WithClock(func() time.Time { return testNow }),
		store.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%04d", n)
		}),
	)
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}

	server, err := NewServer(st, "test")
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server, mem
}

func logLegPress(t *testing.T, s *Server, date, shorthand string) sessionOutput {
	t.Helper()
	_, out, err := s.handleLogSession(context.Background(), nil, logSessionInput{
		Date:    date,
		Entries: []entryInput{{Exercise: "Leg Press", Shorthand: shorthand}},
	})
	if err != nil {
		t.Fatalf("handleLogSession failed: %v", err)
	}
	return out
}

func TestNewServer(t *testing.T) {
	server, _ := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}

	if _, err := NewServer(nil, "test"); err == nil {
		t.Error("Expected error for nil store")
	}
}

func TestHandleListProfiles(t *testing.T) {
	server, _ := setupTestServer(t)

	_, out, err := server.handleListProfiles(context.Background(), nil, listProfilesInput{})
	if err != nil {
		t.Fatalf("handleListProfiles failed: %v", err)
	}
	if len(out.Profiles) != 1 {
		t.Fatalf("Expected 1 seeded profile, got %d", len(out.Profiles))
	}
	if out.Profiles[0].Name != "John" || !out.Profiles[0].Active {
		t.Errorf("Unexpected profile: %+v", out.Profiles[0])
	}
}

func TestHandleSetActiveProfile(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	jane, err := server.store.NewProfile("Jane")
	if err != nil {
		t.Fatalf("NewProfile failed: %v", err)
	}
	if _, err := server.store.UpsertProfile(jane); err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}

	_, out, err := server.handleSetActiveProfile(ctx, nil, setActiveProfileInput{Profile: "jane"})
	if err != nil {
		t.Fatalf("handleSetActiveProfile failed: %v", err)
	}
	if !strings.Contains(out.Message, "Jane") {
		t.Errorf("Message = %q", out.Message)
	}
	if p, _ := server.store.ActiveProfile(); p.ID != jane.ID {
		t.Errorf("Active profile = %s, want %s", p.ID, jane.ID)
	}

	if _, _, err := server.handleSetActiveProfile(ctx, nil, setActiveProfileInput{Profile: "nobody"}); err == nil {
		t.Error("Expected error for unknown profile")
	}
}

func TestHandleListExercises(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		filter    string
		wantCount int
		wantErr   bool
	}{
		{name: "default active", filter: "", wantCount: 31},
		{name: "all", filter: "all", wantCount: 31},
		{name: "inactive", filter: "INACTIVE", wantCount: 0},
		{name: "bogus", filter: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleListExercises(ctx, nil, listExercisesInput{Filter: tt.filter})
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("handleListExercises failed: %v", err)
			}
			if len(out.Exercises) != tt.wantCount {
				t.Errorf("Expected %d exercises, got %d", tt.wantCount, len(out.Exercises))
			}
		})
	}
}

func TestHandleAddExercise(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	_, out, err := server.handleAddExercise(ctx, nil, addExerciseInput{Name: "Barbell Bench Press", Equipment: "Barbell"})
	if err != nil {
		t.Fatalf("handleAddExercise failed: %v", err)
	}
	if out.Name != "Barbell Bench Press" || out.Warning != "" {
		t.Errorf("Unexpected output: %+v", out)
	}

	ex, err := server.store.ResolveExercise("barbell bench press")
	if err != nil {
		t.Fatalf("ResolveExercise failed: %v", err)
	}
	if ex.Category != "Other" || ex.Equipment != "Barbell" || !ex.IsActive {
		t.Errorf("Unexpected exercise: %+v", ex)
	}

	if _, _, err := server.handleAddExercise(ctx, nil, addExerciseInput{Name: "barbell bench press"}); err == nil {
		t.Error("Expected error for duplicate exercise")
	}
	if _, _, err := server.handleAddExercise(ctx, nil, addExerciseInput{Name: "  "}); err == nil {
		t.Error("Expected error for blank name")
	}
}

func TestHandleDeleteExerciseKeepsHistory(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	logLegPress(t, server, "", "200x5")

	_, out, err := server.handleDeleteExercise(ctx, nil, deleteExerciseInput{Exercise: "Leg Press"})
	if err != nil {
		t.Fatalf("handleDeleteExercise failed: %v", err)
	}
	if !strings.Contains(out.Message, "Leg Press") {
		t.Errorf("Message = %q", out.Message)
	}

	sessions := server.store.Sessions()
	if len(sessions) != 1 || sessions[0].Entries[0].ExerciseName != "Leg Press" {
		t.Errorf("Expected session history to survive, got %+v", sessions)
	}

	if _, _, err := server.handleDeleteExercise(ctx, nil, deleteExerciseInput{Exercise: "Leg Press"}); err == nil {
		t.Error("Expected error deleting a removed exercise")
	}
}

func TestHandleLogSession(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	rpe := 8.0
	_, out, err := server.handleLogSession(ctx, nil, logSessionInput{
		Date:  "2024-01-08",
		Notes: "  felt good ",
		Entries: []entryInput{
			{Exercise: "Leg Press", Sets: []setInput{{Weight: 200, Reps: 10}, {Weight: 0, Reps: 10}}},
			{Exercise: "Hamstring Curls", Shorthand: "80x12, 80x10@9"},
			{Exercise: "Leg Extensions", Sets: []setInput{{Weight: 90, Reps: 12, RPE: &rpe}}},
		},
	})
	if err != nil {
		t.Fatalf("handleLogSession failed: %v", err)
	}

	if out.Entries != 3 || out.Sets != 4 {
		t.Errorf("Expected 3 entries and 4 sets, got %d and %d", out.Entries, out.Sets)
	}
	// 2000 + 960 + 800 + 1080
	if out.TotalVolume != 4840 {
		t.Errorf("TotalVolume = %v, want 4840", out.TotalVolume)
	}
	if out.Date != "2024-01-08" {
		t.Errorf("Date = %q", out.Date)
	}

	sess, err := server.store.Session(out.ID)
	if err != nil {
		t.Fatalf("Session lookup failed: %v", err)
	}
	if sess.Notes != "felt good" {
		t.Errorf("Notes = %q", sess.Notes)
	}
	if sess.DateISO.Hour() != 12 {
		t.Errorf("Expected session at noon, got %v", sess.DateISO)
	}
}

func TestHandleLogSessionErrors(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     logSessionInput
		errSubstr string
	}{
		{
			name:      "no sets",
			input:     logSessionInput{Entries: []entryInput{{Exercise: "Leg Press"}}},
			errSubstr: "at least one set",
		},
		{
			name:      "unknown exercise",
			input:     logSessionInput{Entries: []entryInput{{Exercise: "Underwater Basket", Shorthand: "10x10"}}},
			errSubstr: "not found",
		},
		{
			name:      "bad shorthand",
			input:     logSessionInput{Entries: []entryInput{{Exercise: "Leg Press", Shorthand: "heavy"}}},
			errSubstr: "WEIGHTxREPS",
		},
		{
			name:      "bad date",
			input:     logSessionInput{Date: "yesterday", Entries: []entryInput{{Exercise: "Leg Press", Shorthand: "100x5"}}},
			errSubstr: "YYYY-MM-DD",
		},
		{
			name:      "unknown template",
			input:     logSessionInput{Template: "day9", Entries: []entryInput{{Exercise: "Leg Press", Shorthand: "100x5"}}},
			errSubstr: "template not found",
		},
		{
			name:      "unknown profile",
			input:     logSessionInput{Profile: "nobody", Entries: []entryInput{{Exercise: "Leg Press", Shorthand: "100x5"}}},
			errSubstr: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleLogSession(ctx, nil, tt.input)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("Expected error containing %q, got %q", tt.errSubstr, err.Error())
			}
		})
	}

	if len(server.store.Sessions()) != 0 {
		t.Error("Expected no sessions to be stored")
	}
}

func TestHandleLogSessionTemplateOrder(t *testing.T) {
	server, _ := setupTestServer(t)

	_, out, err := server.handleLogSession(context.Background(), nil, logSessionInput{
		Template: "day3_legs",
		Entries: []entryInput{
			{Exercise: "Face Pulls", Shorthand: "30x15"},
			{Exercise: "Hamstring Curls", Shorthand: "80x12"},
			{Exercise: "Leg Press", Shorthand: "200x10"},
		},
	})
	if err != nil {
		t.Fatalf("handleLogSession failed: %v", err)
	}

	sess, _ := server.store.Session(out.ID)
	if sess.DayType != "Day 3 – Legs" {
		t.Errorf("DayType = %q", sess.DayType)
	}
	var names []string
	for _, e := range sess.Entries {
		names = append(names, e.ExerciseName)
	}
	want := "Leg Press,Hamstring Curls,Face Pulls"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("Entry order = %s, want %s", got, want)
	}
}

func TestHandleLogSessionPersistenceWarning(t *testing.T) {
	server, mem := setupTestServer(t)
	mem.FailWrites(errors.New("disk full"))

	out := logLegPress(t, server, "", "100x5")
	if !strings.Contains(out.Warning, "disk full") {
		t.Errorf("Expected persistence warning, got %q", out.Warning)
	}
	if len(server.store.Sessions()) != 1 {
		t.Error("Expected session to stay in memory after failed save")
	}
}

func TestHandleListSessions(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	logLegPress(t, server, "2023-12-01", "100x5")
	logLegPress(t, server, "2024-01-05", "110x5")
	logLegPress(t, server, "2024-01-09", "120x5")

	_, out, err := server.handleListSessions(ctx, nil, listSessionsInput{})
	if err != nil {
		t.Fatalf("handleListSessions failed: %v", err)
	}
	if len(out.Sessions) != 2 {
		t.Fatalf("Expected 2 sessions in the last 14 days, got %d", len(out.Sessions))
	}
	if out.Sessions[0].TotalVolume != 600 {
		t.Errorf("Expected newest session first, got volume %v", out.Sessions[0].TotalVolume)
	}

	_, out, err = server.handleListSessions(ctx, nil, listSessionsInput{Limit: 10})
	if err != nil {
		t.Fatalf("handleListSessions failed: %v", err)
	}
	if len(out.Sessions) != 3 {
		t.Errorf("Expected 3 sessions with a limit and no day window, got %d", len(out.Sessions))
	}

	_, out, _ = server.handleListSessions(ctx, nil, listSessionsInput{Days: 60, Limit: 1})
	if len(out.Sessions) != 1 {
		t.Errorf("Expected limit 1, got %d", len(out.Sessions))
	}
}

func TestHandleDeleteSession(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	logged := logLegPress(t, server, "", "100x5")

	_, out, err := server.handleDeleteSession(ctx, nil, deleteSessionInput{ID: logged.ID})
	if err != nil {
		t.Fatalf("handleDeleteSession failed: %v", err)
	}
	if !strings.Contains(out.Message, "2024-01-10") {
		t.Errorf("Message = %q", out.Message)
	}
	if len(server.store.Sessions()) != 0 {
		t.Error("Expected session to be deleted")
	}

	if _, _, err := server.handleDeleteSession(ctx, nil, deleteSessionInput{ID: logged.ID}); err == nil {
		t.Error("Expected error for deleted session")
	}
}

func TestHandlePersonalRecords(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	logLegPress(t, server, "2024-01-02", "150x6")
	logLegPress(t, server, "2024-01-05", "150x6,140x8")
	_, _, err := server.handleLogSession(ctx, nil, logSessionInput{
		Entries: []entryInput{{Exercise: "Hamstring Curls", Shorthand: "60x10"}},
	})
	if err != nil {
		t.Fatalf("handleLogSession failed: %v", err)
	}

	_, out, err := server.handlePersonalRecords(ctx, nil, recordsInput{})
	if err != nil {
		t.Fatalf("handlePersonalRecords failed: %v", err)
	}
	if out.Formula != "Epley" || out.Units != "lb" {
		t.Errorf("Unexpected settings: %s %s", out.Formula, out.Units)
	}
	if len(out.Records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(out.Records))
	}

	best := out.Records[0]
	if best.ExerciseName != "Leg Press" || best.E1RM != 180 {
		t.Errorf("Unexpected top record: %+v", best)
	}
	// the tie with the later session keeps the earlier date
	if best.DateISO.Day() != 2 {
		t.Errorf("Expected record dated Jan 2, got %v", best.DateISO)
	}

	_, out, _ = server.handlePersonalRecords(ctx, nil, recordsInput{Limit: 1})
	if len(out.Records) != 1 {
		t.Errorf("Expected limit 1, got %d", len(out.Records))
	}
}

func TestHandleTrend(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	logLegPress(t, server, "2024-01-05", "120x5")
	logLegPress(t, server, "2024-01-02", "150x6,90x10")

	_, out, err := server.handleTrend(ctx, nil, trendInput{Exercise: "leg press"})
	if err != nil {
		t.Fatalf("handleTrend failed: %v", err)
	}
	if out.ExerciseName != "Leg Press" {
		t.Errorf("ExerciseName = %q", out.ExerciseName)
	}
	if len(out.Points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(out.Points))
	}
	if out.Points[0].Date != "2024-01-02" || out.Points[0].E1RM != 180 {
		t.Errorf("Unexpected first point: %+v", out.Points[0])
	}
	if out.Points[1].Date != "2024-01-05" || out.Points[1].E1RM != 140 {
		t.Errorf("Unexpected second point: %+v", out.Points[1])
	}

	_, out, err = server.handleTrend(ctx, nil, trendInput{Exercise: "Hamstring Curls"})
	if err != nil {
		t.Fatalf("handleTrend failed: %v", err)
	}
	if out.Points == nil || len(out.Points) != 0 {
		t.Errorf("Expected empty points, got %v", out.Points)
	}
}

func TestHandleWindowVolume(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	logLegPress(t, server, "2024-01-01", "100x10")
	logLegPress(t, server, "2024-01-04", "100x5")
	logLegPress(t, server, "2024-01-10", "100x3")

	tests := []struct {
		name         string
		input        windowVolumeInput
		wantSessions int
		wantVolume   float64
		wantErr      bool
	}{
		{name: "default last 7 days", input: windowVolumeInput{}, wantSessions: 2, wantVolume: 800},
		{name: "explicit inclusive", input: windowVolumeInput{Start: "2024-01-01", End: "2024-01-04"}, wantSessions: 2, wantVolume: 1500},
		{name: "single day", input: windowVolumeInput{Start: "2024-01-10", End: "2024-01-10"}, wantSessions: 1, wantVolume: 300},
		{name: "empty", input: windowVolumeInput{Start: "2023-06-01", End: "2023-06-30"}},
		{name: "reversed", input: windowVolumeInput{Start: "2024-01-10", End: "2024-01-01"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := server.handleWindowVolume(ctx, nil, tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("handleWindowVolume failed: %v", err)
			}
			if out.Sessions != tt.wantSessions || out.Volume != tt.wantVolume {
				t.Errorf("Got %d sessions / %v volume, want %d / %v", out.Sessions, out.Volume, tt.wantSessions, tt.wantVolume)
			}
		})
	}
}

func TestHandleExportRange(t *testing.T) {
	server, _ := setupTestServer(t)
	ctx := context.Background()

	logLegPress(t, server, "2024-01-04", "135x5@8")
	logLegPress(t, server, "2023-01-04", "95x5")

	tests := []struct {
		format   string
		contains []string
		missing  string
	}{
		{format: "", contains: []string{`"e1rmFormula": "epley"`, `"start": "2023-12-12"`}, missing: "2023-01-04"},
		{format: "yaml", contains: []string{"e1rm_formula: epley", "units: lb"}, missing: "2023-01-04"},
		{format: "CSV", contains: []string{"date,dayType,exercise", "2024-01-04,,Leg Press,1,135,5,8,158,"}, missing: "95"},
		{format: "markdown", contains: []string{"## 2024-01-04", "| Leg Press | 135x5@8 | 157.5 |"}, missing: "2023-01-04"},
	}

	for _, tt := range tests {
		t.Run("format "+tt.format, func(t *testing.T) {
			_, out, err := server.handleExportRange(ctx, nil, exportRangeInput{Format: tt.format})
			if err != nil {
				t.Fatalf("handleExportRange failed: %v", err)
			}
			if out.Sessions != 1 {
				t.Errorf("Expected 1 session, got %d", out.Sessions)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out.Content, want) {
					t.Errorf("Expected content to contain %q:\n%s", want, out.Content)
				}
			}
			if strings.Contains(out.Content, tt.missing) {
				t.Errorf("Expected content to exclude %q", tt.missing)
			}
		})
	}

	if _, _, err := server.handleExportRange(ctx, nil, exportRangeInput{Format: "xml"}); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestHandleDashboardResource(t *testing.T) {
	server, _ := setupTestServer(t)

	logLegPress(t, server, "2024-01-09", "150x6")

	result, err := server.handleDashboardResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleDashboardResource failed: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("Expected 1 content, got %d", len(result.Contents))
	}

	text := result.Contents[0].Text
	for _, want := range []string{`"profile": "John"`, `"workouts": 1`, `"volume": 900`, `"e1rm": 180`} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected dashboard to contain %s:\n%s", want, text)
		}
	}
}

func TestHandleRecentSessionsResource(t *testing.T) {
	server, _ := setupTestServer(t)

	result, err := server.handleRecentSessionsResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleRecentSessionsResource failed: %v", err)
	}
	if !strings.Contains(result.Contents[0].Text, `"sessions": []`) {
		t.Errorf("Expected empty sessions array, got %s", result.Contents[0].Text)
	}

	for i := 0; i < 12; i++ {
		logLegPress(t, server, "", fmt.Sprintf("%dx5", 100+i))
	}
	result, err = server.handleRecentSessionsResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleRecentSessionsResource failed: %v", err)
	}
	if got := strings.Count(result.Contents[0].Text, `"profileId"`); got != 10 {
		t.Errorf("Expected 10 sessions, got %d", got)
	}
}

func TestHandleExercisesResource(t *testing.T) {
	server, _ := setupTestServer(t)

	result, err := server.handleExercisesResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("handleExercisesResource failed: %v", err)
	}
	if result.Contents[0].URI != "lift://exercises" {
		t.Errorf("URI = %q", result.Contents[0].URI)
	}
	text := result.Contents[0].Text
	if !strings.Contains(text, "Leg Press") || !strings.Contains(text, "day6_rehab") {
		t.Errorf("Expected library and templates in resource:\n%s", text)
	}
}
