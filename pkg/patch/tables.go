package patch

import "fmt"

// Tables is the versioned rule storage. Rules are partitioned into three
// tiers: Skill rules keyed by (skill name, relative output path), Path rules
// keyed by relative output path alone (shared files like scripts/common.sh
// that appear in several skills), and Common rules that apply to every
// copied file. Rules within a tier apply in declared order.
type Tables struct {
	Skill  map[string]map[string][]Rule
	Path   map[string][]Rule
	Common []Rule
}

// scriptDirExpr resolves the directory of the running script so patched
// scripts can locate their sibling references/ directory at runtime.
const scriptDirExpr = `$(cd "$(dirname "${BASH_SOURCE[0]}")" && pwd)`

// DefaultTables returns the rule tables for the built-in speckit catalog.
// The generator emits content that refers to its own .config/ input tree
// and leaves $ARGUMENTS placeholders behind; these rules rewrite both so
// the packages are self-contained. dialect selects the script flavor the
// generator was asked for (the .config/scripts/<dialect>/ path segment).
func DefaultTables(dialect string) Tables {
	scriptsPrefix := fmt.Sprintf(".config/scripts/%s/", dialect)

	return Tables{
		Common: []Rule{
			{scriptsPrefix, "scripts/"},
			{".config/templates/", "references/"},
			{".config/memory/constitution.md", "specs/constitution.md"},
			{"compatibility: Requires spec-kit project structure with .config/ directory\n", ""},
			{"## User Input\n\n```text\n$ARGUMENTS\n```\n\nYou **MUST** consider the user input before proceeding (if not empty).\n\n", ""},
		},
		Skill: map[string]map[string][]Rule{
			"speckit-analyze": {
				"SKILL.md": {
					{"\n## Context\n\n$ARGUMENTS\n", ""},
				},
			},
			"speckit-clarify": {
				"SKILL.md": {
					{"\nContext for prioritization: $ARGUMENTS\n", ""},
				},
			},
			"speckit-tasks": {
				"SKILL.md": {
					{"\nContext for task generation: $ARGUMENTS\n", ""},
				},
			},
			"speckit-specify": {
				"SKILL.md": {
					{
						"The text the user typed after `/speckit.specify` in the triggering message **is** the feature description. Assume you always have it available in this conversation even if `$ARGUMENTS` appears literally below. Do not ask the user to repeat it unless they provided an empty command.",
						"The user's message that triggered this skill **is** the feature description. Do not ask the user to repeat it unless they provided no description.",
					},
					{
						scriptsPrefix + `create-new-feature.sh --json "$ARGUMENTS"`,
						scriptsPrefix + `create-new-feature.sh --json "<feature-description>"`,
					},
					{
						scriptsPrefix + `create-new-feature.sh --json "$ARGUMENTS" --json --number 5 --short-name "user-auth" "Add user authentication"`,
						scriptsPrefix + `create-new-feature.sh --json --number 5 --short-name "user-auth" "Add user authentication"`,
					},
					{
						scriptsPrefix + `create-new-feature.sh --json "$ARGUMENTS" -Json -Number 5 -ShortName "user-auth" "Add user authentication"`,
						scriptsPrefix + `create-new-feature.sh --json -Number 5 -ShortName "user-auth" "Add user authentication"`,
					},
				},
			},
			"speckit-checklist": {
				"SKILL.md": {
					{"already unambiguous in `$ARGUMENTS`", "already unambiguous in the user's input"},
					{"Combine `$ARGUMENTS` + clarifying answers", "Combine the user's input + clarifying answers"},
				},
			},
			// speckit-constitution points at templates that live in sibling
			// skills, so its rewrites must run before the common
			// .config/templates/ rule turns them into local references/.
			"speckit-constitution": {
				"SKILL.md": {
					{".config/templates/plan-template.md", "../speckit-plan/references/plan-template.md"},
					{".config/templates/spec-template.md", "../speckit-specify/references/spec-template.md"},
					{".config/templates/tasks-template.md", "../speckit-tasks/references/tasks-template.md"},
					{
						"   - Read each command file in `.config/templates/commands/*.md` (including this one) to verify no outdated references (agent-specific names like CLAUDE only) remain when generic guidance is required.",
						"   - Review all other speckit skill definitions (SKILL.md files in sibling speckit-* directories) to verify no outdated references (agent-specific names like CLAUDE only) remain when generic guidance is required.",
					},
				},
			},
		},
		Path: map[string][]Rule{
			"references/spec-template.md": {
				{`"$ARGUMENTS"`, `"<user description>"`},
			},
			"scripts/common.sh": {
				{
					"    else\n        # Fall back to script location for non-git repos\n        local script_dir=\"$(CDPATH=\"\" cd \"$(dirname \"${BASH_SOURCE[0]}\")\" && pwd)\"\n        (cd \"$script_dir/../../..\" && pwd)\n    fi",
					"    else\n        # Fall back to current directory for non-git repos\n        pwd\n    fi",
				},
			},
			"scripts/create-new-feature.sh": {
				{
					`if [ -d "$dir/.git" ] || [ -d "$dir/.config" ]; then`,
					`if [ -d "$dir/.git" ]; then`,
				},
				{
					`TEMPLATE="$REPO_ROOT/.config/templates/spec-template.md"`,
					`TEMPLATE="` + scriptDirExpr + `/../references/spec-template.md"`,
				},
			},
			"scripts/setup-plan.sh": {
				{
					`TEMPLATE="$REPO_ROOT/.config/templates/plan-template.md"`,
					`TEMPLATE="` + scriptDirExpr + `/../references/plan-template.md"`,
				},
			},
			"scripts/update-agent-context.sh": {
				{
					`TEMPLATE_FILE="$REPO_ROOT/.config/templates/agent-file-template.md"`,
					`TEMPLATE_FILE="` + scriptDirExpr + `/../references/agent-file-template.md"`,
				},
			},
		},
	}
}
