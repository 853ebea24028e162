package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-dispersion/optics/core"
)

func ExampleApplyEvalOptions() {
	cfg := core.ApplyEvalOptions(
		core.WithLenient(),
		core.WithWorkers(4),
	)

	fmt.Printf("mode=%s workers=%d splineOrder=%d\n", cfg.Mode, cfg.Workers, cfg.SplineOrder)

	// Output:
	// mode=lenient workers=4 splineOrder=2
}
