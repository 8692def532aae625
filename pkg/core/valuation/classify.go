package valuation

import (
	"magicslate/pkg/core/assumption"
	"magicslate/pkg/models"
)

// Classify buckets a title by financial performance. Rules are evaluated in
// order and the first match wins:
//
//  1. Tentpole: big budget and big value
//  2. Underperformer: failed to recoup its investment
//  3. Niche Gem: low cost, high efficiency
//  4. Workhorse: solid mid-range returns at real budget
//  5. Acceptable: positive but unremarkable
//  6. Marginal: everything else
func Classify(totalValue, totalCost, roi, costPerHour float64, th assumption.Thresholds) models.Classification {
	if totalCost >= th.TentpoleMinBudget && totalValue >= th.TentpoleMinValue {
		return models.ClassTentpole
	}

	if roi <= th.UnderperformerMaxROI {
		return models.ClassUnderperformer
	}

	if totalCost <= th.NicheMaxBudget && roi >= th.NicheMinROI && costPerHour <= th.NicheMaxCostPerHour {
		return models.ClassNicheGem
	}

	if roi >= th.WorkhorseMinROI && roi <= th.WorkhorseMaxROI && totalCost >= th.WorkhorseMinBudget {
		return models.ClassWorkhorse
	}

	if roi > th.AcceptableMinROI {
		return models.ClassAcceptable
	}

	return models.ClassMarginal
}
