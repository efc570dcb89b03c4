package score

import (
	"unicode/utf8"

	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

var testFrameworks = []string{"jest", "pytest", "mocha", "jasmine"}

// minBlocksText is the text length below which the block tree is considered
// too thin to target with UI tests.
const minBlocksText = 50

// scoreTestability grades how easily the app can be tested.
//
// Scoring (baseline 72):
//   - No known test framework in dependencies: -20
//   - metadata.complexity is "high": -10
//   - blocks missing or rendering to fewer than 50 characters: -8
func scoreTestability(cfg appconfig.AppConfig) schema.CategoryScore {
	t := newTally(72)
	deps := appconfig.LowerText(cfg.Dependencies)

	if !appconfig.ContainsAny(deps, testFrameworks...) {
		t.deduct(20,
			"No testing framework detected",
			"Add Jest, Pytest, or similar testing framework")
	}

	if cfg.Complexity() == "high" {
		t.deduct(10,
			"High complexity may reduce testability",
			"Break down components for improved test coverage")
	}

	if len(cfg.Blocks) == 0 || utf8.RuneCountInString(appconfig.Text(cfg.Blocks)) < minBlocksText {
		t.deduct(8, "Minimal component structure for testing", "")
	}

	return t.result()
}
