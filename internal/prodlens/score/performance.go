package score

import (
	"strings"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

var buildOptimizers = []string{"webpack", "rollup", "vite", "next"}

// maxTopLevelBlocks is the number of top-level block entries above which a
// component tree is assumed to fan out into many API calls. It counts map
// entries, not characters.
const maxTopLevelBlocks = 100

// scorePerformance grades build and runtime performance signals.
//
// Scoring (baseline 78):
//   - No known build optimizer in dependencies: -15
//   - blocks mention components and hold more than 100 top-level entries: -10
//   - "sync" appears in dependencies: -5
func scorePerformance(cfg appconfig.AppConfig) schema.CategoryScore {
	t := newTally(78)
	deps := appconfig.LowerText(cfg.Dependencies)

	if !appconfig.ContainsAny(deps, buildOptimizers...) {
		t.deduct(15,
			"No build optimization tools detected",
			"Use Webpack, Vite, or similar build optimizers")
	}

	if strings.Contains(appconfig.LowerText(cfg.Blocks), "components") && len(cfg.Blocks) > maxTopLevelBlocks {
		t.deduct(10,
			"High number of potential API calls",
			"Implement request batching and pagination")
	}

	if strings.Contains(deps, "sync") {
		t.deduct(5, "Potential synchronous operations detected", "")
	}

	return t.result()
}
