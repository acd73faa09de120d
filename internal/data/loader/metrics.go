package loader

import (
	"fmt"

	"github.com/mwynn/careerdeck/internal/core/model"
	"github.com/mwynn/careerdeck/internal/util"
)

// Metric category names, in display order.
const (
	CategoryScale      = "Scale"
	CategoryEfficiency = "Efficiency"
	CategoryInnovation = "Innovation"
)

// DeriveMetrics computes the ordered metric categories from a validated
// view-model. The derivation is pure; entry order within a category is
// fixed and load-bearing for display.
func DeriveMetrics(vm *model.CareerViewModel) []model.MetricCategory {
	scale := model.MetricCategory{
		Name: CategoryScale,
		Entries: []model.MetricEntry{
			{Label: "Peak Clusters", Value: util.FormatStatValue(vm.After.PeakClusters)},
			{Label: "Peak Accounts", Value: util.FormatStatValue(vm.After.PeakAccounts)},
			{Label: "Clusters Managed", Value: util.FormatStatValue(vm.After.ClusterCount)},
			{Label: "Accounts Managed", Value: util.FormatStatValue(vm.After.AccountCount)},
		},
	}

	efficiency := model.MetricCategory{
		Name: CategoryEfficiency,
		Entries: []model.MetricEntry{
			{
				Label: "Environment Creation",
				Value: fmt.Sprintf("%s to %s", vm.Before.EnvironmentCreationTime, vm.After.EnvironmentCreationTime),
			},
			{
				Label: "Deployment Method",
				Value: fmt.Sprintf("%s to %s", vm.Before.DeploymentMethod, vm.After.DeploymentMethod),
			},
			{
				Label: "Cluster Growth",
				Value: fmt.Sprintf("%s to %s", util.FormatStatValue(vm.Before.ClusterCount), util.FormatStatValue(vm.After.ClusterCount)),
			},
		},
	}

	innovation := model.MetricCategory{
		Name: CategoryInnovation,
		Entries: []model.MetricEntry{
			{Label: "CLI Lines of Code", Value: util.FormatStatValue(vm.Achievements.B2BCLI.LinesOfCode)},
			{
				Label: "CLI Stack",
				Value: fmt.Sprintf("%s / %s", vm.Achievements.B2BCLI.Language, vm.Achievements.B2BCLI.Framework),
			},
			{Label: "Self-Healing Fixers", Value: util.FormatStatValue(vm.Achievements.SelfHealing.TotalFixers)},
			{Label: "CLI Key Features", Value: util.FormatStatValue(len(vm.Achievements.B2BCLI.KeyFeatures))},
		},
	}

	return []model.MetricCategory{scale, efficiency, innovation}
}
