package score

import (
	"github.com/build-flow-labs/prodlens/appconfig"
	"github.com/build-flow-labs/prodlens/schema"
)

// highUserCount is the estimated user count above which an app is expected
// to need horizontal scaling.
const highUserCount = 10000

// scoreScalability grades how well the app is prepared to grow.
//
// Scoring (baseline 75):
//   - No async or queue library in dependencies: -15
//   - No redis or cache library in dependencies: -10
//   - metadata.estimatedUsers above 10000: -20
func scoreScalability(cfg appconfig.AppConfig) schema.CategoryScore {
	t := newTally(75)
	deps := appconfig.LowerText(cfg.Dependencies)

	if !appconfig.ContainsAny(deps, "async", "queue") {
		t.deduct(15,
			"No async/queue libraries detected",
			"Consider implementing async patterns for long-running operations")
	}

	if !appconfig.ContainsAny(deps, "redis", "cache") {
		t.deduct(10,
			"No caching mechanism detected",
			"Implement caching layer for improved performance at scale")
	}

	if users, ok := cfg.EstimatedUsers(); ok && users > highUserCount {
		t.deduct(20,
			"Application targets high user count without scalability patterns",
			"Implement load balancing and horizontal scaling strategies")
	}

	return t.result()
}
