package score

import (
	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

// scoreMaintainability grades modularity and documentation.
//
// Scoring (baseline 75):
//   - fewer than 3 entries in blocks.components: -15
//   - description missing or shorter than 20 characters: -10
//   - fewer than 3 dependencies: -5
func scoreMaintainability(cfg appconfig.AppConfig) schema.CategoryScore {
	t := newTally(75)

	if cfg.Components() < 3 {
		t.deduct(15,
			"Weak modular structure",
			"Break down into smaller, reusable components")
	}

	if cfg.DescriptionLength() < 20 {
		t.deduct(10,
			"Insufficient documentation",
			"Add comprehensive documentation and comments")
	}

	if len(cfg.Dependencies) < 3 {
		t.deduct(5, "Limited dependency usage", "")
	}

	return t.result()
}
