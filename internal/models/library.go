// ABOUTME: Starter exercise library and six-day split templates.
// ABOUTME: Seeded into new documents; templates label sessions with a day type.
package models

import "strings"

// LibraryExercise is a name/category/equipment triple used to seed the library.
type LibraryExercise struct {
	Name      string
	Category  string
	Equipment string
}

// StarterLibrary is the ordered exercise list written into a freshly seeded document.
var StarterLibrary = []LibraryExercise{
	// Day 1 - Push
	{"Flat DB Bench (neutral grip)", "Push", "Dumbbell"},
	{"Incline DB Bench (neutral grip)", "Push", "Dumbbell"},
	{"Cable Chest Press (low→mid angle)", "Push", "Cable"},
	{"DB Neutral-Grip High-Incline Press (~60°)", "Push", "Dumbbell"},
	{"Lateral Raises (strict, light)", "Shoulders", "Dumbbell"},
	{"Cable Rope Pushdowns", "Triceps", "Cable"},
	{"Overhead Rope Extensions", "Triceps", "Cable"},

	// Day 2 - Pull
	{"Lat Pulldown", "Pull", "Machine"},
	{"Seated Row (neutral grip)", "Pull", "Machine"},
	{"Chest Supported Row", "Pull", "Machine"},
	{"Incline DB Curls", "Biceps", "Dumbbell"},
	{"Hammer Curls", "Biceps", "Dumbbell"},

	// Day 3 - Legs
	{"Leg Press", "Legs", "Machine"},
	{"Goblet Squats", "Legs", "Dumbbell"},
	{"Split Squats", "Legs", "Dumbbell"},
	{"Leg Extensions", "Legs", "Machine"},
	{"Hamstring Curls", "Legs", "Machine"},

	// Day 4 - Push (light)
	{"Machine Chest Press", "Push", "Machine"},
	{"Decline DB Bench (neutral grip)", "Push", "Dumbbell"},
	{"Cable Y-Raise", "Shoulders", "Cable"},
	{"Lateral Raises (slow)", "Shoulders", "Dumbbell"},
	{"Skull Crushers (light)", "Triceps", "EZ Bar"},
	{"Rope Pushdowns", "Triceps", "Cable"},

	// Day 5 - Pull
	{"Pull-Ups (assisted if needed)", "Pull", "Bodyweight"},
	{"Machine Row", "Pull", "Machine"},
	{"Cable Curls", "Biceps", "Cable"},
	{"Reverse Curls", "Biceps", "EZ Bar"},

	// Day 6 - Rehab / chest light
	{"Scapular Plane DB Raise (pain-free)", "Rehab", "Dumbbell"},
	{"Face Pulls", "Rehab", "Cable"},
	{"Cable External Rotations", "Rehab", "Cable"},
	{"Cable Fly (very light)", "Push", "Cable"},
}

// DefaultProfileName is the name of the profile created when seeding.
const DefaultProfileName = "John"

// TemplateItem is one exercise slot of a day template.
type TemplateItem struct {
	Name string `json:"name" yaml:"name"`
	Sets int    `json:"sets" yaml:"sets"`
}

// DayTemplate is a named workout day of the split.
type DayTemplate struct {
	Key   string         `json:"key" yaml:"key"`
	Label string         `json:"label" yaml:"label"`
	Items []TemplateItem `json:"items" yaml:"items"`
}

// DayTemplates is the fixed six-day split.
var DayTemplates = []DayTemplate{
	{
		Key:   "day1_push",
		Label: "Day 1 – Push",
		Items: []TemplateItem{
			{"Flat DB Bench (neutral grip)", 3},
			{"Incline DB Bench (neutral grip)", 3},
			{"Cable Chest Press (low→mid angle)", 3},
			{"DB Neutral-Grip High-Incline Press (~60°)", 2},
			{"Lateral Raises (strict, light)", 3},
			{"Cable Rope Pushdowns", 3},
			{"Overhead Rope Extensions", 2},
		},
	},
	{
		Key:   "day2_pull",
		Label: "Day 2 – Pull",
		Items: []TemplateItem{
			{"Lat Pulldown", 3},
			{"Seated Row (neutral grip)", 3},
			{"Chest Supported Row", 3},
			{"Incline DB Curls", 3},
			{"Hammer Curls", 2},
		},
	},
	{
		Key:   "day3_legs",
		Label: "Day 3 – Legs",
		Items: []TemplateItem{
			{"Leg Press", 3},
			{"Goblet Squats", 3},
			{"Split Squats", 3},
			{"Leg Extensions", 2},
			{"Hamstring Curls", 2},
		},
	},
	{
		Key:   "day4_push_light",
		Label: "Day 4 – Push (light)",
		Items: []TemplateItem{
			{"Machine Chest Press", 3},
			{"Decline DB Bench (neutral grip)", 3},
			{"Cable Y-Raise", 2},
			{"Lateral Raises (slow)", 2},
			{"Skull Crushers (light)", 2},
			{"Rope Pushdowns", 2},
		},
	},
	{
		Key:   "day5_pull",
		Label: "Day 5 – Pull",
		Items: []TemplateItem{
			{"Pull-Ups (assisted if needed)", 3},
			{"Chest Supported Row", 3},
			{"Machine Row", 3},
			{"Cable Curls", 3},
			{"Reverse Curls", 2},
		},
	},
	{
		Key:   "day6_rehab",
		Label: "Day 6 – Rehab / chest light",
		Items: []TemplateItem{
			{"Scapular Plane DB Raise (pain-free)", 3},
			{"Face Pulls", 3},
			{"Cable External Rotations", 3},
			{"Cable Fly (very light)", 2},
		},
	},
}

// FindTemplate looks up a day template by key or label (case-insensitive).
func FindTemplate(ref string) (DayTemplate, bool) {
	ref = strings.TrimSpace(ref)
	for _, t := range DayTemplates {
		if strings.EqualFold(t.Key, ref) || strings.EqualFold(t.Label, ref) {
			return t, true
		}
	}
	return DayTemplate{}, false
}

// DayLabel returns the display label for a session's dayType. Sessions logged
// before labels were stored carry the template key instead.
func DayLabel(dayType string) string {
	if t, ok := FindTemplate(dayType); ok {
		return t.Label
	}
	return dayType
}
