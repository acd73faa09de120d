package model

// Summary holds the headline facts shown in the hero section.
type Summary struct {
	CurrentRole string
	Company     string
	Duration    string
	Location    string
	PitchText   string
}

// TransformationState describes the platform at a point in time.
// PeakClusters/PeakAccounts are only populated on the "after" state.
type TransformationState struct {
	ClusterCount            int
	AccountCount            int
	DeploymentMethod        string
	EnvironmentCreationTime string
	PeakClusters            int
	PeakAccounts            int
}

// CLIAchievement describes the B2B command line tool.
type CLIAchievement struct {
	Description string
	LinesOfCode int
	Language    string
	Framework   string
	KeyFeatures []string
}

// SelfHealingSystem describes the automated remediation system.
type SelfHealingSystem struct {
	Name          string
	TotalFixers   int
	Configuration string
}

// TechnicalAchievements groups the engineering highlights.
type TechnicalAchievements struct {
	B2BCLI      CLIAchievement
	SelfHealing SelfHealingSystem
}

// MetricEntry is a single label/value pair inside a metric category.
type MetricEntry struct {
	Label string
	Value string
}

// MetricCategory is an ordered group of metric entries ("Scale",
// "Efficiency", "Innovation").
type MetricCategory struct {
	Name    string
	Entries []MetricEntry
}

// CareerViewModel is the validated, strongly-typed projection of the raw
// career document. It is built once at startup and never mutated.
type CareerViewModel struct {
	Summary      Summary
	Before       TransformationState
	After        TransformationState
	Achievements TechnicalAchievements
	Metrics      []MetricCategory
}

// HeroTargets returns the counter targets animated in the hero section,
// in display order: peak clusters, peak accounts, lines of code.
func (vm *CareerViewModel) HeroTargets() []int {
	return []int{
		vm.After.PeakClusters,
		vm.After.PeakAccounts,
		vm.Achievements.B2BCLI.LinesOfCode,
	}
}
