package responses

import "os-project/internal/core"

type SafetyResponse struct {
	Result        string            `json:"result"`
	Safe          bool              `json:"safe"`
	ResourceTypes []string          `json:"resource_types,omitempty"`
	Sequence      []string          `json:"sequence"`
	Steps         []core.SafetyStep `json:"steps"`
}

type RequestResponse struct {
	Result        string                      `json:"result"`
	Granted       bool                        `json:"granted"`
	ResourceTypes []string                    `json:"resource_types,omitempty"`
	Warnings      []string                    `json:"warnings"`
	Sequence      []string                    `json:"sequence"`
	Steps         []core.SafetyStep           `json:"steps"`
	Available     core.ResourceVector         `json:"available"`
	Processes     []core.ProcessResourceState `json:"processes"`
}

// NewSafetyResponse labels vectors with resourceTypes when given.
func NewSafetyResponse(output core.SafetyOutput, resourceTypes []string) SafetyResponse {
	result := "UNSAFE"
	if output.Safe {
		result = "SAFE"
	}
	return SafetyResponse{
		Result:        result,
		Safe:          output.Safe,
		ResourceTypes: resourceTypes,
		Sequence:      output.Sequence,
		Steps:         output.Trace,
	}
}

func NewRequestResponse(output core.RequestOutput, resourceTypes []string) RequestResponse {
	response := RequestResponse{
		Granted:       output.Granted,
		ResourceTypes: resourceTypes,
		Warnings:      output.Warnings,
		Sequence:      []string{},
		Steps:         []core.SafetyStep{},
		Available:     output.State.Available,
		Processes:     output.State.Processes,
	}
	if response.Warnings == nil {
		response.Warnings = []string{}
	}
	switch {
	case output.Safety == nil:
		response.Result = "INVALID REQUEST"
	case output.Granted:
		response.Result = "REQUEST GRANTED - SAFE STATE"
		response.Sequence = output.Safety.Sequence
		response.Steps = output.Safety.Trace
	default:
		response.Result = "REQUEST DENIED - UNSAFE STATE"
	}
	return response
}
