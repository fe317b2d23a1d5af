package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrCache    = "cache"
	AttrResult   = "result"
	AttrDataset  = "dataset"
)

// DefaultServiceName is used when telemetry is configured without a service name.
const DefaultServiceName = "kbo-fan-service"
