// Package production holds the fixed pipeline registry shared by the lot
// resolver and the stage-entry use cases.
package production

import (
	"github.com/shopspring/decimal"

	"github.com/CoderMasters4/Dhruval-Erp-sub009/internal/domain/entity"
)

// Stage is one registered step of the pipeline. Output extracts the
// good-output meters a stage hands to its successor; adding a stage is a
// one-line registration in Pipeline, not a new branch in the resolver.
type Stage struct {
	Module entity.Module
	Output func(e *entity.StageEntry) decimal.Decimal
}

func processed(e *entity.StageEntry) decimal.Decimal { return e.ProcessedMeter }

// Pipeline is the fixed processing order. A lot flows front to back; each
// stage consumes the previous stage's output.
var Pipeline = []Stage{
	{Module: entity.ModuleBleaching, Output: processed},
	{Module: entity.ModuleLongation, Output: processed},
	{Module: entity.ModulePrinting, Output: processed},
	{Module: entity.ModuleHazer, Output: processed},
	{Module: entity.ModuleSilicate, Output: processed},
	{Module: entity.ModuleCuring, Output: processed},
	{Module: entity.ModuleWashing, Output: processed},
	{Module: entity.ModuleFinishing, Output: processed},
	{Module: entity.ModuleFolding, Output: processed},
	{Module: entity.ModulePacking, Output: processed},
}

// StageOf returns the registered stage for a module, or false when the
// module is not part of the pipeline.
func StageOf(m entity.Module) (Stage, bool) {
	for _, s := range Pipeline {
		if s.Module == m {
			return s, true
		}
	}
	return Stage{}, false
}

// Previous returns the stage immediately upstream of target. ok is false for
// the first stage (no upstream: operators enter input manually).
func Previous(target entity.Module) (Stage, bool) {
	for i, s := range Pipeline {
		if s.Module == target {
			if i == 0 {
				return Stage{}, false
			}
			return Pipeline[i-1], true
		}
	}
	return Stage{}, false
}

// IsValid reports whether m is a registered pipeline module.
func IsValid(m entity.Module) bool {
	_, ok := StageOf(m)
	return ok
}
