// Package generator composes the blueprint list into a single JavaScript
// artifact: blueprints are rendered in position order, %name% placeholders
// are substituted from instance overrides and global configuration, and the
// result is passed through a heuristic syntax check.
package generator

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"scriptweaver/assembly"
	"scriptweaver/globals"
)

var ErrEmptyAssembly = errors.New("assembly is empty, add snippets before generating")

// Result is one generated artifact with its heuristic warnings.
type Result struct {
	Script      string    `json:"script"`
	Warnings    []string  `json:"warnings"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// placeholderPattern matches a whole %name% token. Matching the full token
// rather than bare %key% substrings keeps one key from rewriting part of
// another's placeholder.
var placeholderPattern = regexp.MustCompile(`%([A-Za-z_][A-Za-z0-9_]*)%`)

// Compose renders blueprints in ascending position order, prefixed with a
// configuration header when vars is non-empty. Placeholders are resolved in
// a single pass from a combined mapping in which instance overrides shadow
// global values; unmatched placeholders stay verbatim and are reported as
// warnings. Returns ErrEmptyAssembly when there is nothing to render.
func Compose(blueprints []assembly.Blueprint, vars map[string]globals.Variable) (Result, error) {
	if len(blueprints) == 0 {
		return Result{}, ErrEmptyAssembly
	}

	ordered := make([]assembly.Blueprint, len(blueprints))
	copy(ordered, blueprints)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	var lines []string
	if len(vars) > 0 {
		lines = append(lines, "// Global configuration", configHeader(vars), "")
	}

	var warnings []string
	seen := map[string]bool{}
	for _, b := range ordered {
		code, unresolved := substitute(b.Code, b.Overrides, vars)
		lines = append(lines, fmt.Sprintf("// %s - %s", b.Name, b.Description), code, "")
		for _, name := range unresolved {
			w := fmt.Sprintf("Unresolved placeholder %%%s%%", name)
			if !seen[w] {
				seen[w] = true
				warnings = append(warnings, w)
			}
		}
	}

	script := strings.Join(lines, "\n")
	warnings = append(warnings, CheckSyntax(script)...)
	if warnings == nil {
		warnings = []string{}
	}

	return Result{
		Script:      script,
		Warnings:    warnings,
		GeneratedAt: time.Now(),
	}, nil
}

// substitute resolves %name% tokens in code. Overrides win over globals;
// names matching neither are left in place and returned as unresolved.
func substitute(code string, overrides map[string]string, vars map[string]globals.Variable) (string, []string) {
	var unresolved []string
	out := placeholderPattern.ReplaceAllStringFunc(code, func(token string) string {
		name := token[1 : len(token)-1]
		if v, ok := overrides[name]; ok {
			return v
		}
		if v, ok := vars[name]; ok {
			return v.Value
		}
		unresolved = append(unresolved, name)
		return token
	})
	return out, unresolved
}

// configHeader serializes the configuration table as a JS object literal.
// json marshals map keys in sorted order, so the header is deterministic.
func configHeader(vars map[string]globals.Variable) string {
	type slot struct {
		Name  string `json:"name"`
		Label string `json:"label"`
		Value string `json:"value"`
	}
	obj := make(map[string]slot, len(vars))
	for k, v := range vars {
		obj[k] = slot{Name: v.Name, Label: v.Label, Value: v.Value}
	}
	data, _ := json.MarshalIndent(obj, "", "  ")
	return "const GLOBAL_CONFIG = " + string(data) + ";"
}
