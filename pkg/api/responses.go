package api

import "github.com/codeready-toolchain/pythmata/pkg/bpmn"

// ValidationIssueResponse is one collected validation error.
type ValidationIssueResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ElementID string `json:"element_id,omitempty"`
}

// ValidateDefinitionResponse is the full non-throwing validation result.
type ValidateDefinitionResponse struct {
	Valid  bool                      `json:"valid"`
	Errors []ValidationIssueResponse `json:"errors"`
}

func toValidationResponse(result *bpmn.ValidationResult) ValidateDefinitionResponse {
	out := ValidateDefinitionResponse{Valid: result.Valid, Errors: []ValidationIssueResponse{}}
	for _, issue := range result.Errors {
		out.Errors = append(out.Errors, ValidationIssueResponse{
			Code:      string(issue.Code),
			Message:   issue.Message,
			ElementID: issue.ElementID,
		})
	}
	return out
}
