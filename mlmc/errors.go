package mlmc

import "fmt"

// InvalidParameterError reports a distribution or constructor parameter set
// the component cannot accept. Raised at construction, never per draw.
type InvalidParameterError struct {
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("mlmc: invalid parameters: %s", e.Reason)
}

// SampleRequestError reports a non-positive sample count request.
type SampleRequestError struct {
	Requested int
}

func (e *SampleRequestError) Error() string {
	return fmt.Sprintf("mlmc: requested %d samples, need at least 1", e.Requested)
}

// InsufficientPilotSamplesError reports a pilot size too small to form the
// n-1 denominator of the sample variance.
type InsufficientPilotSamplesError struct {
	PilotSize int
}

func (e *InsufficientPilotSamplesError) Error() string {
	return fmt.Sprintf("mlmc: pilot size %d cannot estimate variance, need at least 2", e.PilotSize)
}

// InvalidCostError reports a non-positive per-level cost.
type InvalidCostError struct {
	Level int
	Cost  float64
}

func (e *InvalidCostError) Error() string {
	return fmt.Sprintf("mlmc: level %d has non-positive cost %v", e.Level, e.Cost)
}

// InvalidPrecisionError reports a non-positive target precision epsilon.
type InvalidPrecisionError struct {
	Epsilon float64
}

func (e *InvalidPrecisionError) Error() string {
	return fmt.Sprintf("mlmc: target precision epsilon %v must be positive", e.Epsilon)
}

// EmptyLevelOutputError reports a level that was allocated samples but
// produced no realized outputs, an allocation/execution mismatch.
type EmptyLevelOutputError struct {
	Level     int
	Allocated int
}

func (e *EmptyLevelOutputError) Error() string {
	return fmt.Sprintf("mlmc: level %d was allocated %d samples but has no outputs", e.Level, e.Allocated)
}
