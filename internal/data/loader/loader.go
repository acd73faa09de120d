package loader

import (
	"fmt"
	"math"

	"github.com/bytedance/sonic"

	"github.com/mwynn/careerdeck/internal/core/model"
)

// Load parses the raw career document into a validated CareerViewModel.
//
// Load is a pure function: identical input bytes always yield a deep-equal
// view-model, with no caching or other observable side effects. A required
// field that is absent or of the wrong primitive kind fails with a
// *model.DataShapeError; required fields are never silently defaulted.
func Load(raw []byte) (*model.CareerViewModel, error) {
	var tree map[string]any
	if err := sonic.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("parsing career data: %w", err)
	}

	vm := &model.CareerViewModel{}

	summary, err := requireMap(tree, "", "summary")
	if err != nil {
		return nil, err
	}
	if vm.Summary, err = loadSummary(summary); err != nil {
		return nil, err
	}

	transformation, err := requireMap(tree, "", "transformation")
	if err != nil {
		return nil, err
	}
	before, err := requireMap(transformation, "transformation", "before")
	if err != nil {
		return nil, err
	}
	if vm.Before, err = loadTransformation(before, "transformation.before", false); err != nil {
		return nil, err
	}
	after, err := requireMap(transformation, "transformation", "after")
	if err != nil {
		return nil, err
	}
	if vm.After, err = loadTransformation(after, "transformation.after", true); err != nil {
		return nil, err
	}

	achievements, err := requireMap(tree, "", "technical_achievements")
	if err != nil {
		return nil, err
	}
	if vm.Achievements, err = loadAchievements(achievements); err != nil {
		return nil, err
	}

	vm.Metrics = DeriveMetrics(vm)

	return vm, nil
}

func loadSummary(m map[string]any) (model.Summary, error) {
	var s model.Summary
	var err error

	if s.CurrentRole, err = requireString(m, "summary", "current_role"); err != nil {
		return s, err
	}
	if s.Company, err = requireString(m, "summary", "company"); err != nil {
		return s, err
	}
	if s.Duration, err = requireString(m, "summary", "duration"); err != nil {
		return s, err
	}
	if s.Location, err = requireString(m, "summary", "location"); err != nil {
		return s, err
	}
	if s.PitchText, err = requireString(m, "summary", "pitch_text"); err != nil {
		return s, err
	}

	return s, nil
}

func loadTransformation(m map[string]any, path string, withPeaks bool) (model.TransformationState, error) {
	var ts model.TransformationState
	var err error

	if ts.ClusterCount, err = requireCount(m, path, "cluster_count"); err != nil {
		return ts, err
	}
	if ts.AccountCount, err = requireCount(m, path, "account_count"); err != nil {
		return ts, err
	}
	if ts.DeploymentMethod, err = requireString(m, path, "deployment_method"); err != nil {
		return ts, err
	}
	if ts.EnvironmentCreationTime, err = requireString(m, path, "environment_creation_time"); err != nil {
		return ts, err
	}

	if withPeaks {
		if ts.PeakClusters, err = requireCount(m, path, "peak_clusters"); err != nil {
			return ts, err
		}
		if ts.PeakAccounts, err = requireCount(m, path, "peak_accounts"); err != nil {
			return ts, err
		}
		// The source does not guarantee peak >= current >= before; values
		// are taken as given rather than clamped.
	}

	return ts, nil
}

func loadAchievements(m map[string]any) (model.TechnicalAchievements, error) {
	var ta model.TechnicalAchievements

	cli, err := requireMap(m, "technical_achievements", "b2b_cli")
	if err != nil {
		return ta, err
	}
	const cliPath = "technical_achievements.b2b_cli"
	if ta.B2BCLI.Description, err = requireString(cli, cliPath, "description"); err != nil {
		return ta, err
	}
	if ta.B2BCLI.LinesOfCode, err = requireCount(cli, cliPath, "lines_of_code"); err != nil {
		return ta, err
	}
	if ta.B2BCLI.Language, err = requireString(cli, cliPath, "language"); err != nil {
		return ta, err
	}
	if ta.B2BCLI.Framework, err = requireString(cli, cliPath, "framework"); err != nil {
		return ta, err
	}
	if ta.B2BCLI.KeyFeatures, err = requireStringList(cli, cliPath, "key_features"); err != nil {
		return ta, err
	}

	healing, err := requireMap(m, "technical_achievements", "self_healing_system")
	if err != nil {
		return ta, err
	}
	const healingPath = "technical_achievements.self_healing_system"
	if ta.SelfHealing.Name, err = requireString(healing, healingPath, "name"); err != nil {
		return ta, err
	}
	if ta.SelfHealing.TotalFixers, err = requireCount(healing, healingPath, "total_fixers"); err != nil {
		return ta, err
	}
	if ta.SelfHealing.Configuration, err = requireString(healing, healingPath, "configuration"); err != nil {
		return ta, err
	}

	return ta, nil
}

// fieldPath joins a parent path and a key into a dotted field reference.
func fieldPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func requireMap(m map[string]any, path, key string) (map[string]any, error) {
	v, ok := m[key]
	if !ok {
		return nil, model.NewDataShapeError(fieldPath(path, key), "is required")
	}
	sub, ok := v.(map[string]any)
	if !ok {
		return nil, model.NewDataShapeError(fieldPath(path, key), "must be an object")
	}
	return sub, nil
}

func requireString(m map[string]any, path, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", model.NewDataShapeError(fieldPath(path, key), "is required")
	}
	s, ok := v.(string)
	if !ok {
		return "", model.NewDataShapeError(fieldPath(path, key), "must be a string")
	}
	return s, nil
}

// requireCount extracts a non-negative integer. Counter fields feed the
// hero animation, whose behavior is undefined for negative or fractional
// input, so those are rejected at the boundary.
func requireCount(m map[string]any, path, key string) (int, error) {
	v, ok := m[key]
	if !ok {
		return 0, model.NewDataShapeError(fieldPath(path, key), "is required")
	}
	f, ok := v.(float64)
	if !ok {
		return 0, model.NewDataShapeError(fieldPath(path, key), "must be a number")
	}
	if f != math.Trunc(f) {
		return 0, model.NewDataShapeError(fieldPath(path, key), "must be an integer")
	}
	if f < 0 {
		return 0, model.NewDataShapeError(fieldPath(path, key), "must not be negative")
	}
	return int(f), nil
}

func requireStringList(m map[string]any, path, key string) ([]string, error) {
	v, ok := m[key]
	if !ok {
		return nil, model.NewDataShapeError(fieldPath(path, key), "is required")
	}
	items, ok := v.([]any)
	if !ok {
		return nil, model.NewDataShapeError(fieldPath(path, key), "must be a list of strings")
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, model.NewDataShapeError(fmt.Sprintf("%s[%d]", fieldPath(path, key), i), "must be a string")
		}
		out = append(out, s)
	}
	return out, nil
}
