// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, overwrite, cancel, and embedded content.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSkillPath(t *testing.T) {
	got := skillPath("/home/test")
	want := filepath.Join("/home/test", ".claude", "skills", "lift", "SKILL.md")
	if got != want {
		t.Errorf("skillPath = %q, want %q", got, want)
	}
}

func TestInstallSkillWritesEmbeddedContent(t *testing.T) {
	home := t.TempDir()
	skillSkipConfirm = true
	t.Cleanup(func() { skillSkipConfirm = false })

	if err := installSkill(home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	written, err := os.ReadFile(skillPath(home))
	if err != nil {
		t.Fatalf("Skill file not created: %v", err)
	}
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}
	if string(written) != string(content) {
		t.Error("Installed skill differs from embedded skill")
	}

	info, err := os.Stat(skillPath(home))
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected file mode 0600, got %o", info.Mode().Perm())
	}
}

func TestInstallSkillOverwrites(t *testing.T) {
	home := t.TempDir()
	path := skillPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte("old content"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	skillSkipConfirm = true
	t.Cleanup(func() { skillSkipConfirm = false })
	if err := installSkill(home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	written, _ := os.ReadFile(path)
	if string(written) == "old content" {
		t.Error("Expected existing skill to be overwritten")
	}
}

func TestInstallSkillCanceled(t *testing.T) {
	home := t.TempDir()
	stdin = strings.NewReader("n\n")
	t.Cleanup(func() { stdin = os.Stdin })

	if err := installSkill(home); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}
	if _, err := os.Stat(skillPath(home)); !os.IsNotExist(err) {
		t.Error("Expected no skill file after canceling")
	}
}

func TestEmbeddedSkillContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	text := string(content)
	if !strings.HasPrefix(text, "---\n") {
		t.Error("Expected skill to start with YAML frontmatter")
	}
	for _, marker := range []string{"name: lift", "description:", "lift log --entry", "lift stats prs"} {
		if !strings.Contains(text, marker) {
			t.Errorf("Expected skill to contain %q", marker)
		}
	}
}
