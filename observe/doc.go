// Package observe records cache events of memoized functions as
// OpenTelemetry metrics.
//
//	meter := otel.Meter("selectors")
//	obs, err := observe.NewMetrics(meter, "byCategory")
//	if err != nil {
//	    return err
//	}
//	fn := pure.Memoize(byCategory, pure.WithName("byCategory"), pure.WithObserver(obs))
package observe
